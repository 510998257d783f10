// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the access level of a profile in the condominium system.
type Role string

const (
	// RoleResident indicates a resident of a unit.
	RoleResident Role = "resident"
	// RoleFrontDesk indicates front-desk (concierge) staff.
	RoleFrontDesk Role = "front_desk"
	// RoleAdmin indicates a building administrator.
	RoleAdmin Role = "admin"
	// RoleSuperAdmin indicates a system-wide administrator.
	RoleSuperAdmin Role = "super_admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleResident, RoleFrontDesk, RoleAdmin, RoleSuperAdmin:
		return true
	default:
		return false
	}
}

// IsStaff reports whether the role belongs to condominium staff rather than a resident.
func (r Role) IsStaff() bool {
	switch r {
	case RoleFrontDesk, RoleAdmin, RoleSuperAdmin:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}

// Screen identifies which client screen a signed-in profile should see.
type Screen string

const (
	// ScreenAuth is the sign-in screen for unauthenticated visitors.
	ScreenAuth Screen = "auth"
	// ScreenResident shows delivery history and notifications for the resident's units.
	ScreenResident Screen = "resident"
	// ScreenFrontDesk shows delivery register, pickup and search for concierge staff.
	ScreenFrontDesk Screen = "front_desk"
	// ScreenAdmin shows unit, staff and resident management.
	ScreenAdmin Screen = "admin"
)

// ScreenForRole maps a profile role to the screen the client should render.
// Unknown or invalid roles fall back to the sign-in screen.
func ScreenForRole(role Role) Screen {
	switch role {
	case RoleResident:
		return ScreenResident
	case RoleFrontDesk:
		return ScreenFrontDesk
	case RoleAdmin, RoleSuperAdmin:
		return ScreenAdmin
	default:
		return ScreenAuth
	}
}
