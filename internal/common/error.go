// Package common defines shared sentinel errors used across authkeeper layers.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound    = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal = errors.New("internal error")

	// ErrInvalidCredentials is returned for both an unknown email and a wrong
	// password, so callers cannot tell which check failed.
	ErrInvalidCredentials = errors.New("Email or password incorrect!")

	// Infrastructure faults surfaced by the login flow.
	ErrPersistenceFailure = errors.New("refresh token persistence failed")
	ErrSigningFailure     = errors.New("token signing failed")

	// Token verification errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
