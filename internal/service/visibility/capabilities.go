package visibility

import "github.com/m04kA/SST-VisitService/internal/domain"

// Capabilities what a role is allowed to do
type Capabilities struct {
	CanSeeAllAppointments  bool `json:"canSeeAllAppointments"`
	CanRequestVisits       bool `json:"canRequestVisits"`
	CanChangeStatus        bool `json:"canChangeStatus"`
	CanDeleteOwnVisits     bool `json:"canDeleteOwnVisits"`
	CanDeleteAnyVisit      bool `json:"canDeleteAnyVisit"`
	CanEditCompanies       bool `json:"canEditCompanies"`
	CanSeeAllCompanies     bool `json:"canSeeAllCompanies"`
	CanManageSettings      bool `json:"canManageSettings"`
	CanReadAdminAlerts     bool `json:"canReadAdminAlerts"`
	CanUseSupportAssistant bool `json:"canUseSupportAssistant"`
}

var capabilities = map[domain.Role]Capabilities{
	domain.RoleAdmin: {
		CanSeeAllAppointments:  true,
		CanChangeStatus:        true,
		CanDeleteAnyVisit:      true,
		CanEditCompanies:       true,
		CanSeeAllCompanies:     true,
		CanManageSettings:      true,
		CanReadAdminAlerts:     true,
		CanUseSupportAssistant: true,
	},
	domain.RoleTechnician: {
		CanChangeStatus:        true,
		CanUseSupportAssistant: true,
	},
	domain.RoleOrganization: {
		CanRequestVisits:       true,
		CanDeleteOwnVisits:     true,
		CanUseSupportAssistant: true,
	},
}

// CapabilitiesFor returns the capability set of a role. Unknown roles get nothing.
func CapabilitiesFor(role domain.Role) Capabilities {
	return capabilities[role]
}
