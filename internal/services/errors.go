package services

import "errors"

// Sentinel errors surfaced to the handler layer, which maps them to HTTP
// status codes.
var (
	// ErrEmailTaken is returned when a registration targets an email that
	// already has an account.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials covers both unknown-email and wrong-password
	// login failures. Callers must not distinguish the two.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound is returned when a well-formed user id matches no
	// account.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidUserID is returned when a user id is not a valid UUID.
	ErrInvalidUserID = errors.New("invalid user id")
)
