package types

import (
	"errors"
	"time"
)

// Role controls what a user account may do at the API layer.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleUser    Role = "user"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleUser:
		return true
	}
	return false
}

// User is an account that can own orders. PasswordHash holds a bcrypt hash
// and is never serialized to API responses.
type User struct {
	ID           int64
	Username     string
	Email        string
	Role         Role
	PasswordHash string
	DateJoined   time.Time
}

// Validate checks account field constraints.
func (u *User) Validate() error {
	if u.Username == "" {
		return errors.New("username cannot be empty")
	}

	if !u.Role.Valid() {
		return errors.New("unknown role: " + string(u.Role))
	}

	return nil
}
