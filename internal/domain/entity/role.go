// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleDonor indicates a blood donor.
	RoleDonor Role = "donor"
	// RoleHospital indicates a hospital account that posts blood requests.
	RoleHospital Role = "hospital"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleDonor, RoleHospital:
		return true
	default:
		return false
	}
}
