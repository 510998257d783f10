package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScreenForRole(t *testing.T) {
	assert.Equal(t, ScreenResident, ScreenForRole(RoleResident))
	assert.Equal(t, ScreenFrontDesk, ScreenForRole(RoleFrontDesk))
	assert.Equal(t, ScreenAdmin, ScreenForRole(RoleAdmin))
	assert.Equal(t, ScreenAdmin, ScreenForRole(RoleSuperAdmin))
	assert.Equal(t, ScreenAuth, ScreenForRole(Role("unknown")))
}

func TestRolesFromStrings_FiltersInvalid(t *testing.T) {
	roles := RolesFromStrings([]string{"resident", "burglar", "admin"})
	assert.Equal(t, Roles{RoleResident, RoleAdmin}, roles)
}

func TestRole_IsStaff(t *testing.T) {
	assert.False(t, RoleResident.IsStaff())
	assert.True(t, RoleFrontDesk.IsStaff())
	assert.True(t, RoleAdmin.IsStaff())
	assert.True(t, RoleSuperAdmin.IsStaff())
}

func TestBuildUnitLabel(t *testing.T) {
	assert.Equal(t, "Bloco A - 101", BuildUnitLabel("A", 101))
	assert.Equal(t, "Unidade 12", BuildUnitLabel("", 12))
}
