package identity

import "errors"

var (
	// ErrEmailTaken is returned when a signup email is already registered.
	ErrEmailTaken = errors.New("email already exists")

	// ErrInvalidCredentials is returned on any login failure, whether the
	// email is unknown or the password is wrong. Callers get no hint which.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotFound is returned when a patient or doctor does not exist.
	ErrNotFound = errors.New("not found")
)
