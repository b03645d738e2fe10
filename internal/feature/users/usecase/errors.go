// Package usecase implements the business logic for the users feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when no user matches the given ID or email.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when the email is already taken by another user.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrMissingFields is returned when a required field is absent or blank.
	ErrMissingFields = errors.New("missing required fields")

	// ErrInvalidEmail is returned when an email fails the format or domain check.
	ErrInvalidEmail = errors.New("email domain not allowed or invalid email format")
)
