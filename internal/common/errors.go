// Package common defines sentinel errors shared across the service layers.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal           = errors.New("internal error")
	ErrorUnauthorized       = errors.New("unauthorized")
	ErrorInvalidCredentials = errors.New("invalid username or password")

	// Token errors. Missing, invalid and expired are distinct failure
	// kinds and must stay distinguishable at the HTTP boundary.
	ErrMissingToken = errors.New("missing token")
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
