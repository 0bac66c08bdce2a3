package domain

import (
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UserRole is the role of a fleet user
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

// IsValid returns true if the role is one of the known values
func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleUser
}

// Profile is a fleet user. Rows are provisioned by the identity provider,
// the service only reads and edits them.
type Profile struct {
	ID        uuid.UUID
	Email     string
	FullName  *string
	Role      UserRole
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProfileUpdate holds the fields to change; nil fields are left untouched
type ProfileUpdate struct {
	Email    *string
	FullName *string
	Role     *UserRole
}

// IsEmpty returns true if nothing is to be changed
func (u ProfileUpdate) IsEmpty() bool {
	return u.Email == nil && u.FullName == nil && u.Role == nil
}

// NormalizeEmail trims and lower-cases an address, returning false if it is not valid
func NormalizeEmail(raw string) (string, bool) {
	email := strings.ToLower(strings.TrimSpace(raw))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", false
	}
	return email, true
}
