package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompanyMatches(t *testing.T) {
	c := &Company{Name: "Tech Solutions Ltda", TaxID: "12.345.678/0001-90"}

	assert.True(t, c.Matches("tech"))
	assert.True(t, c.Matches("SOLUTIONS"))
	assert.True(t, c.Matches("345.678"))
	assert.True(t, c.Matches(""))
	assert.False(t, c.Matches("Metalúrgica"))
}

func TestUserDisplayOrganization(t *testing.T) {
	org := "Tech Solutions Ltda"
	withOrg := &User{Name: "João", OrganizationName: &org}
	withoutOrg := &User{Name: "João"}

	assert.Equal(t, "Tech Solutions Ltda", withOrg.DisplayOrganization())
	assert.Equal(t, "João", withoutOrg.DisplayOrganization())
	assert.Empty(t, (&User{Name: "x", PasswordHash: "h"}).Public().PasswordHash)
}
