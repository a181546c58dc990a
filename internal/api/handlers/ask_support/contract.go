package ask_support

import (
	"context"

	"github.com/m04kA/SST-VisitService/internal/domain"
)

// SupportAssistant ответ ассистента, ошибки уже заменены текстом-заглушкой
type SupportAssistant interface {
	Ask(ctx context.Context, question string) string
}

// FlagChecker эффективное значение флага настроек
type FlagChecker interface {
	IsEffective(key domain.FlagKey) bool
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}
