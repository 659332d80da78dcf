package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleOrdering(t *testing.T) {
	assert.True(t, RoleAdmin.AtLeast(RoleManager))
	assert.True(t, RoleAdmin.AtLeast(RoleStaff))
	assert.True(t, RoleManager.AtLeast(RoleStaff))
	assert.False(t, RoleStaff.AtLeast(RoleManager))
	assert.False(t, RoleManager.AtLeast(RoleAdmin))

	// Every role satisfies itself.
	for _, role := range []Role{RoleStaff, RoleManager, RoleAdmin} {
		assert.True(t, role.AtLeast(role))
	}
}

func TestUnknownRole(t *testing.T) {
	unknown := Role("superuser")
	assert.False(t, unknown.Valid())
	assert.False(t, unknown.AtLeast(RoleStaff))
	// An unknown role never passes a guard, not even against itself.
	assert.False(t, unknown.AtLeast(unknown))
}
