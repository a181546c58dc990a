package visibility

import "github.com/m04kA/SST-VisitService/internal/domain"

// Stats dashboard counters. Always computed from an already filtered set.
type Stats struct {
	Pending          int `json:"pending"`
	Confirmed        int `json:"confirmed"`
	Completed        int `json:"completed"`
	Cancelled        int `json:"cancelled"`
	Total            int `json:"total"`
	CompaniesVisited int `json:"companiesVisited"`
	ActiveCompanies  int `json:"activeCompanies"`
}

// ComputeStats counts statuses and distinct companies of the filtered appointments.
// visibleCompanies is the actor's filtered company list.
func ComputeStats(filtered []*domain.Appointment, visibleCompanies []*domain.Company) Stats {
	stats := Stats{Total: len(filtered)}
	visited := make(map[string]bool)

	for _, a := range filtered {
		switch a.Status {
		case domain.StatusPending:
			stats.Pending++
		case domain.StatusConfirmed:
			stats.Confirmed++
		case domain.StatusCompleted:
			stats.Completed++
		case domain.StatusCancelled:
			stats.Cancelled++
		}
		visited[a.CompanyID] = true
	}

	stats.CompaniesVisited = len(visited)
	stats.ActiveCompanies = len(visibleCompanies)
	return stats
}
