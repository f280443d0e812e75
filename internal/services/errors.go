package services

import "errors"

// Service-level error taxonomy. Handlers translate these to HTTP statuses;
// storage-specific detail never crosses this boundary.
var (
	// ErrUserAlreadyExists signals a signup for a taken username.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrUnauthorized signals a login for an unknown user or any token
	// verification failure. Deliberately undifferentiated.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidUsername signals a rejected blank username. Only reachable
	// when the empty-username guard is enabled in configuration.
	ErrInvalidUsername = errors.New("invalid username")

	// ErrDatabase signals a repository-layer failure.
	ErrDatabase = errors.New("database error")

	// ErrInternal signals a server-side fault such as token signing failure.
	ErrInternal = errors.New("internal error")
)
