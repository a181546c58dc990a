package entity

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SST-VisitService/internal/domain"
	"github.com/m04kA/SST-VisitService/pkg/types"
)

// ListAppointments возвращает все визиты, новые первыми
func (s *Store) ListAppointments(ctx context.Context) []*domain.Appointment {
	unlock := s.readLock(ctx)
	defer unlock()

	out := make([]*domain.Appointment, 0, len(s.appointments))
	for _, a := range s.appointments {
		out = append(out, a.Clone())
	}
	return out
}

// GetAppointment возвращает визит по ID
func (s *Store) GetAppointment(ctx context.Context, id string) (*domain.Appointment, error) {
	unlock := s.readLock(ctx)
	defer unlock()

	idx := s.appointmentIndex(id)
	if idx < 0 {
		return nil, ErrAppointmentNotFound
	}
	return s.appointments[idx].Clone(), nil
}

// ActiveAppointmentsOn возвращает активные визиты на дату
func (s *Store) ActiveAppointmentsOn(ctx context.Context, date time.Time) []*domain.Appointment {
	unlock := s.readLock(ctx)
	defer unlock()

	var out []*domain.Appointment
	for _, a := range s.appointments {
		if a.IsActive() && domain.SameDay(a.Date, date) {
			out = append(out, a.Clone())
		}
	}
	return out
}

// ActiveAppointmentsBetween возвращает активные визиты с датой в [from, to)
func (s *Store) ActiveAppointmentsBetween(ctx context.Context, from, to time.Time) []*domain.Appointment {
	unlock := s.readLock(ctx)
	defer unlock()

	from = domain.NormalizeDate(from)
	to = domain.NormalizeDate(to)

	var out []*domain.Appointment
	for _, a := range s.appointments {
		d := domain.NormalizeDate(a.Date)
		if a.IsActive() && !d.Before(from) && d.Before(to) {
			out = append(out, a.Clone())
		}
	}
	return out
}

// InsertAppointment добавляет визит в начало списка.
// ID назначается хранилищем, если не задан.
// Возвращает ErrSlotConflict, если слот занят активным визитом.
func (s *Store) InsertAppointment(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	unlock := s.writeLock(ctx)
	defer unlock()

	record := a.Clone()
	record.Date = domain.NormalizeDate(record.Date)

	if record.ID == "" {
		record.ID = s.newID()
	} else if s.appointmentIndex(record.ID) >= 0 {
		return nil, fmt.Errorf("%w: appointment %s", ErrDuplicateID, record.ID)
	}

	if record.IsActive() && s.slotTaken(record.Date, record.Time, "") {
		return nil, fmt.Errorf("%w: %s %s", ErrSlotConflict, record.DateString(), record.Time)
	}

	s.appointments = append([]*domain.Appointment{record}, s.appointments...)
	return record.Clone(), nil
}

// UpdateAppointmentStatus меняет статус визита.
// Правила переходов здесь не проверяются, только занятость слота при возврате в активное состояние.
func (s *Store) UpdateAppointmentStatus(ctx context.Context, id string, status domain.AppointmentStatus) (*domain.Appointment, error) {
	unlock := s.writeLock(ctx)
	defer unlock()

	idx := s.appointmentIndex(id)
	if idx < 0 {
		return nil, ErrAppointmentNotFound
	}

	current := s.appointments[idx]
	if !current.IsActive() && status != domain.StatusCancelled {
		if s.slotTaken(current.Date, current.Time, current.ID) {
			return nil, fmt.Errorf("%w: %s %s", ErrSlotConflict, current.DateString(), current.Time)
		}
	}

	current.Status = status
	return current.Clone(), nil
}

// DeleteAppointment удаляет визит и освобождает слот
func (s *Store) DeleteAppointment(ctx context.Context, id string) error {
	unlock := s.writeLock(ctx)
	defer unlock()

	idx := s.appointmentIndex(id)
	if idx < 0 {
		return ErrAppointmentNotFound
	}

	s.appointments = append(s.appointments[:idx], s.appointments[idx+1:]...)
	return nil
}

func (s *Store) appointmentIndex(id string) int {
	for i, a := range s.appointments {
		if a.ID == id {
			return i
		}
	}
	return -1
}

// slotTaken проверяет, занят ли слот активным визитом, кроме exceptID
func (s *Store) slotTaken(date time.Time, slot types.TimeString, exceptID string) bool {
	for _, a := range s.appointments {
		if a.ID != exceptID && a.Occupies(date, slot) {
			return true
		}
	}
	return false
}
