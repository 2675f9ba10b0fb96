// Package entity contains the core business objects of the project.
package entity

import (
	"slices"

	"github.com/google/uuid"
)

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleUser indicates a regular customer role.
	RoleUser Role = "user"
	// RoleStaff indicates an administrator with elevated privileges.
	RoleStaff Role = "staff"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleStaff:
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

// Principal is the caller identity attached to a request.
// A nil *Principal stands for an anonymous caller.
type Principal struct {
	UserID uuid.UUID
	Roles  Roles
}

// IsAuthenticated reports whether the principal identifies a user.
func (p *Principal) IsAuthenticated() bool {
	return p != nil && p.UserID != uuid.Nil
}

// IsStaff reports whether the principal carries the staff role.
func (p *Principal) IsStaff() bool {
	return p.IsAuthenticated() && p.Roles.Contains(RoleStaff)
}

// Owns reports whether the principal is the given owner.
func (p *Principal) Owns(ownerID uuid.UUID) bool {
	return p.IsAuthenticated() && p.UserID == ownerID
}
