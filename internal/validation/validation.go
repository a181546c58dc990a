package validation

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SST-VisitService/internal/domain"
	"github.com/m04kA/SST-VisitService/pkg/types"
)

// New создает валидатор с зарегистрированными правилами сервиса:
//
//	hhmm    - время в формате HH:MM
//	ymd     - дата в формате YYYY-MM-DD
//	notblank - строка не пустая после обрезки пробелов
func New() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("hhmm", isTimeString)
	_ = v.RegisterValidation("ymd", isDate)
	_ = v.RegisterValidation("notblank", notBlank)
	return v
}

func isTimeString(fl validator.FieldLevel) bool {
	return types.TimeString(fl.Field().String()).Validate() == nil
}

func isDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(domain.DateFormat, fl.Field().String())
	return err == nil
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// Describe превращает ошибки валидатора в короткое описание для клиента
func Describe(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			parts = append(parts, fe.Field()+": "+fe.Tag()+"="+fe.Param())
		} else {
			parts = append(parts, fe.Field()+": "+fe.Tag())
		}
	}
	return strings.Join(parts, "; ")
}
