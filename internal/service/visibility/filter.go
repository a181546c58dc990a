package visibility

import "github.com/m04kA/SST-VisitService/internal/domain"

// CanSee reports whether the actor may see the appointment:
// admins see everything, technicians their assignments, organizations their own requests.
func CanSee(actor *domain.User, a *domain.Appointment) bool {
	if actor == nil || a == nil {
		return false
	}
	switch actor.Role {
	case domain.RoleAdmin:
		return true
	case domain.RoleTechnician:
		return a.TechnicianID == actor.ID
	case domain.RoleOrganization:
		return a.CompanyID == actor.ID
	default:
		return false
	}
}

// FilterAppointments returns the subset of all visible to the actor, preserving order
func FilterAppointments(all []*domain.Appointment, actor *domain.User) []*domain.Appointment {
	out := make([]*domain.Appointment, 0, len(all))
	for _, a := range all {
		if CanSee(actor, a) {
			out = append(out, a)
		}
	}
	return out
}

// FilterCompanies returns the companies visible to the actor.
// Non-admins only see companies referenced by their visible appointments.
func FilterCompanies(companies []*domain.Company, visible []*domain.Appointment, actor *domain.User) []*domain.Company {
	if actor != nil && actor.Role == domain.RoleAdmin {
		out := make([]*domain.Company, len(companies))
		copy(out, companies)
		return out
	}

	ids := make(map[string]bool, len(visible))
	for _, a := range visible {
		ids[a.CompanyID] = true
	}
	if actor != nil && actor.Role == domain.RoleOrganization {
		ids[actor.ID] = true
	}

	out := make([]*domain.Company, 0)
	for _, c := range companies {
		if ids[c.ID] {
			out = append(out, c)
		}
	}
	return out
}
