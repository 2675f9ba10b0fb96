package entity

import (
	"time"

	"github.com/google/uuid"
)

// Gender of a user profile.
type Gender string

const (
	GenderUnspecified Gender = ""
	GenderMale        Gender = "male"
	GenderFemale      Gender = "female"
)

// IsValid checks if the gender is one of the known values.
func (g Gender) IsValid() bool {
	switch g {
	case GenderUnspecified, GenderMale, GenderFemale:
		return true
	default:
		return false
	}
}

// User is an account identified by its email. Staff users are administrators.
type User struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	MiddleName   string     `json:"middle_name"`
	Phone        *string    `json:"phone"`
	Gender       Gender     `json:"gender"`
	Birthday     *time.Time `json:"birthday"`
	Address      string     `json:"address"`
	Avatar       string     `json:"avatar"`
	IsStaff      bool       `json:"is_staff"`
	IsActive     bool       `json:"is_active"`
	DateJoined   time.Time  `json:"date_joined"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Roles derives the authorization roles of the user.
func (u *User) Roles() Roles {
	if u.IsStaff {
		return Roles{RoleUser, RoleStaff}
	}

	return Roles{RoleUser}
}

// Principal returns the request identity for this user.
func (u *User) Principal() *Principal {
	return &Principal{UserID: u.ID, Roles: u.Roles()}
}
