package domain

import "strings"

// Company represents a client company served by technical visits
type Company struct {
	ID           string
	Name         string
	TaxID        string
	ContactEmail string
	Phone        string
	Address      string
}

// Matches reports whether the company name contains the query (case-insensitive)
// or the tax id contains it verbatim
func (c *Company) Matches(query string) bool {
	q := strings.TrimSpace(query)
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.Name), strings.ToLower(q)) ||
		strings.Contains(c.TaxID, q)
}

// Clone returns a copy
func (c *Company) Clone() *Company {
	cp := *c
	return &cp
}
