// Package entity contains the core business objects of the project.
package entity

// Role represents the coarse permission class of a user.
type Role string

const (
	// RoleUser indicates a regular interactive user.
	RoleUser Role = "user"
	// RoleAdmin indicates an administrator with full management access.
	RoleAdmin Role = "admin"
	// RoleTech indicates a service-account class with its own token lifetimes
	// and fine-grained resource capabilities.
	RoleTech Role = "tech"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleTech:
		return true
	default:
		return false
	}
}
