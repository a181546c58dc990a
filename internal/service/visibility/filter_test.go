package visibility

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SST-VisitService/internal/domain"
)

var (
	admin  = &domain.User{ID: "admin_1", Role: domain.RoleAdmin}
	tech1  = &domain.User{ID: "tech_1", Role: domain.RoleTechnician}
	tech2  = &domain.User{ID: "tech_2", Role: domain.RoleTechnician}
	org1   = &domain.User{ID: "comp_1", Role: domain.RoleOrganization}
	org3   = &domain.User{ID: "comp_3", Role: domain.RoleOrganization}
	ghost  = &domain.User{ID: "x", Role: domain.Role("GUEST")}
	actors = []*domain.User{admin, tech1, tech2, org1, org3, ghost}
)

func appointments() []*domain.Appointment {
	return []*domain.Appointment{
		{ID: "3", CompanyID: "comp_1", TechnicianID: "tech_2", Status: domain.StatusPending},
		{ID: "2", CompanyID: "comp_2", TechnicianID: "tech_2", Status: domain.StatusConfirmed},
		{ID: "1", CompanyID: "comp_1", TechnicianID: "tech_1", Status: domain.StatusCompleted},
	}
}

func ids(list []*domain.Appointment) []string {
	out := make([]string, 0, len(list))
	for _, a := range list {
		out = append(out, a.ID)
	}
	return out
}

func TestFilterAppointments_ByRole(t *testing.T) {
	all := appointments()

	assert.Equal(t, []string{"3", "2", "1"}, ids(FilterAppointments(all, admin)))
	assert.Equal(t, []string{"1"}, ids(FilterAppointments(all, tech1)))
	assert.Equal(t, []string{"3", "2"}, ids(FilterAppointments(all, tech2)))
	assert.Equal(t, []string{"3", "1"}, ids(FilterAppointments(all, org1)))
	assert.Empty(t, FilterAppointments(all, org3))
	assert.Empty(t, FilterAppointments(all, ghost))
	assert.Empty(t, FilterAppointments(all, nil))
}

func TestFilterAppointments_SubsetOfAll(t *testing.T) {
	all := appointments()
	for _, actor := range actors {
		filtered := FilterAppointments(all, actor)
		assert.Subset(t, ids(all), ids(filtered), "actor %s", actor.ID)
	}
}

func TestFilterCompanies(t *testing.T) {
	companies := []*domain.Company{{ID: "comp_1"}, {ID: "comp_2"}, {ID: "comp_3"}}
	all := appointments()

	assert.Len(t, FilterCompanies(companies, FilterAppointments(all, admin), admin), 3)

	techCompanies := FilterCompanies(companies, FilterAppointments(all, tech2), tech2)
	assert.Len(t, techCompanies, 2)

	orgCompanies := FilterCompanies(companies, FilterAppointments(all, org3), org3)
	if assert.Len(t, orgCompanies, 1) {
		assert.Equal(t, "comp_3", orgCompanies[0].ID)
	}
}

func TestComputeStats_UsesFilteredSet(t *testing.T) {
	companies := []*domain.Company{{ID: "comp_1"}, {ID: "comp_2"}}
	all := appointments()

	adminStats := ComputeStats(FilterAppointments(all, admin), FilterCompanies(companies, all, admin))
	assert.Equal(t, Stats{Pending: 1, Confirmed: 1, Completed: 1, Total: 3, CompaniesVisited: 2, ActiveCompanies: 2}, adminStats)

	visible := FilterAppointments(all, tech1)
	techStats := ComputeStats(visible, FilterCompanies(companies, visible, tech1))
	assert.Equal(t, Stats{Completed: 1, Total: 1, CompaniesVisited: 1, ActiveCompanies: 1}, techStats)
}

func TestCapabilitiesFor(t *testing.T) {
	assert.True(t, CapabilitiesFor(domain.RoleAdmin).CanEditCompanies)
	assert.False(t, CapabilitiesFor(domain.RoleTechnician).CanEditCompanies)
	assert.True(t, CapabilitiesFor(domain.RoleOrganization).CanRequestVisits)
	assert.False(t, CapabilitiesFor(domain.RoleOrganization).CanSeeAllAppointments)
	assert.Equal(t, Capabilities{}, CapabilitiesFor("GUEST"))
}
