package domain

import (
	"errors"
	"time"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email address already registered")

	// Authentication failures. Handlers must never surface which one
	// occurred; the distinction exists for server-side logs only.
	ErrUnknownUser = errors.New("no user with that email address")
	ErrBadPassword = errors.New("password mismatch")

	// ErrNotOwner means the acting user is not the owner of the resource
	// being mutated.
	ErrNotOwner = errors.New("not the resource owner")
)

type User struct {
	ID           int64
	FirstName    string
	LastName     string
	EmailAddress string
	PasswordHash string // bcrypt digest, never the plaintext
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
