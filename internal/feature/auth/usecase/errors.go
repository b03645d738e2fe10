// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrInvalidCredentials is returned when the email is unknown or the password does not match.
	// Both cases share this error so callers cannot tell them apart.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrMissingCredentials is returned when email or password is blank.
	ErrMissingCredentials = errors.New("missing email or password")
)
