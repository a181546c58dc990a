package domain

import (
	"fmt"
	"strings"
)

// Role of an actor
type Role string

const (
	RoleAdmin        Role = "ADMIN"
	RoleTechnician   Role = "TECHNICIAN"
	RoleOrganization Role = "ORGANIZATION"
)

// Valid returns true for known roles
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleTechnician, RoleOrganization:
		return true
	}
	return false
}

// ParseRole parses a role name (case-insensitive)
func ParseRole(s string) (Role, error) {
	role := Role(strings.ToUpper(strings.TrimSpace(s)))
	if !role.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
	return role, nil
}

// User represents an actor of the system. Role is immutable after creation.
type User struct {
	ID                 string
	Name               string
	Email              string
	Role               Role
	RegistrationNumber *string // technicians only
	OrganizationName   *string // organizations only
	Avatar             *string
	PasswordHash       string
}

// Public returns a copy without the password hash
func (u *User) Public() *User {
	c := u.Clone()
	c.PasswordHash = ""
	return c
}

// DisplayOrganization returns the organization name, falling back to the display name
func (u *User) DisplayOrganization() string {
	if u.OrganizationName != nil && strings.TrimSpace(*u.OrganizationName) != "" {
		return *u.OrganizationName
	}
	return u.Name
}

// Clone returns a deep copy
func (u *User) Clone() *User {
	c := *u
	c.RegistrationNumber = cloneString(u.RegistrationNumber)
	c.OrganizationName = cloneString(u.OrganizationName)
	c.Avatar = cloneString(u.Avatar)
	return &c
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
