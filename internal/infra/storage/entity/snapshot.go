package entity

import (
	"fmt"

	"github.com/m04kA/SST-VisitService/internal/domain"
)

type slotKey struct {
	date string
	time string
}

// Validate проверяет снимок на инварианты хранилища:
// уникальные идентификаторы и не больше одного активного визита на (дата, время).
func (s Snapshot) Validate() error {
	userIDs := make(map[string]struct{}, len(s.Users))
	for _, u := range s.Users {
		if _, dup := userIDs[u.ID]; dup {
			return fmt.Errorf("%w: user %s", ErrDuplicateID, u.ID)
		}
		userIDs[u.ID] = struct{}{}
	}

	companyIDs := make(map[string]struct{}, len(s.Companies))
	for _, c := range s.Companies {
		if _, dup := companyIDs[c.ID]; dup {
			return fmt.Errorf("%w: company %s", ErrDuplicateID, c.ID)
		}
		companyIDs[c.ID] = struct{}{}
	}

	appointmentIDs := make(map[string]struct{}, len(s.Appointments))
	occupied := make(map[slotKey]string, len(s.Appointments))
	for _, a := range s.Appointments {
		if _, dup := appointmentIDs[a.ID]; dup {
			return fmt.Errorf("%w: appointment %s", ErrDuplicateID, a.ID)
		}
		appointmentIDs[a.ID] = struct{}{}

		if !a.IsActive() {
			continue
		}
		key := slotKey{date: domain.NormalizeDate(a.Date).Format(domain.DateFormat), time: string(a.Time)}
		if other, taken := occupied[key]; taken {
			return fmt.Errorf("%w: %s %s held by %s and %s", ErrSlotConflict, key.date, key.time, other, a.ID)
		}
		occupied[key] = a.ID
	}

	return nil
}
