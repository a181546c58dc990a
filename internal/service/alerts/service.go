package alerts

import (
	"sync"
	"time"

	"github.com/m04kA/SST-VisitService/internal/domain"
	"github.com/m04kA/SST-VisitService/pkg/clock"
)

// toastSlot единственное активное уведомление пользователя и таймер его истечения
type toastSlot struct {
	current    *Toast
	timer      *clock.Timer
	generation uint64
}

// Service журнал событий для администраторов и всплывающие уведомления.
// У каждого пользователя не больше одного активного уведомления:
// новое заменяет старое и отменяет его таймер.
type Service struct {
	clock  clock.Clock
	ttl    time.Duration
	logger Logger

	mu     sync.Mutex
	alerts []Alert // новые первыми
	toasts map[string]*toastSlot
}

// NewService создает сервис уведомлений. ttl <= 0 заменяется на 4 секунды.
func NewService(clk clock.Clock, ttl time.Duration, logger Logger) *Service {
	if ttl <= 0 {
		ttl = domain.DefaultToastTTL
	}
	return &Service{
		clock:  clk,
		ttl:    ttl,
		logger: logger,
		toasts: make(map[string]*toastSlot),
	}
}

// PublishAdminAlert добавляет запись в начало журнала
func (s *Service) PublishAdminAlert(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.alerts = append([]Alert{{Message: message, CreatedAt: s.clock.Now()}}, s.alerts...)
	s.logger.Info("AdminAlert: %s", message)
}

// Alerts возвращает журнал (только для администратора)
func (s *Service) Alerts(actor *domain.User) ([]Alert, error) {
	if actor == nil || actor.Role != domain.RoleAdmin {
		return nil, ErrAccessDenied
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Alert, len(s.alerts))
	copy(out, s.alerts)
	return out, nil
}

// ClearAlerts очищает журнал (только для администратора)
func (s *Service) ClearAlerts(actor *domain.User) error {
	if actor == nil || actor.Role != domain.RoleAdmin {
		return ErrAccessDenied
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.alerts = nil
	s.logger.Info("ClearAlerts: cleared by user=%s", actor.ID)
	return nil
}

// Success показывает пользователю уведомление об успехе
func (s *Service) Success(userID, message string) {
	s.show(userID, ToastSuccess, message)
}

// Failure показывает пользователю уведомление об ошибке
func (s *Service) Failure(userID, message string) {
	s.show(userID, ToastError, message)
}

func (s *Service) show(userID string, kind ToastKind, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	slot, ok := s.toasts[userID]
	if !ok {
		slot = &toastSlot{}
		s.toasts[userID] = slot
	}

	if slot.timer != nil {
		slot.timer.Stop()
	}

	now := s.clock.Now()
	slot.generation++
	generation := slot.generation
	slot.current = &Toast{
		Message:   message,
		Kind:      kind,
		ShownAt:   now,
		ExpiresAt: now.Add(s.ttl),
	}
	slot.timer = s.clock.AfterFunc(s.ttl, func() {
		s.expire(userID, generation)
	})
}

// expire снимает уведомление, только если его не заменили
func (s *Service) expire(userID string, generation uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	slot, ok := s.toasts[userID]
	if !ok || slot.generation != generation {
		return
	}
	delete(s.toasts, userID)
}

// CurrentToast возвращает активное уведомление пользователя
func (s *Service) CurrentToast(userID string) (Toast, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	slot, ok := s.toasts[userID]
	if !ok || slot.current == nil {
		return Toast{}, false
	}
	return *slot.current, true
}

// Dismiss закрывает уведомление пользователя досрочно
func (s *Service) Dismiss(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if slot, ok := s.toasts[userID]; ok {
		if slot.timer != nil {
			slot.timer.Stop()
		}
		delete(s.toasts, userID)
	}
}

// Close отменяет все таймеры и снимает уведомления
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for userID, slot := range s.toasts {
		if slot.timer != nil {
			slot.timer.Stop()
		}
		delete(s.toasts, userID)
	}
}
