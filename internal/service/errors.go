package service

import "errors"

var (
	// ErrInvalidDestroyToken is returned when an explicit deletion request
	// carries a token that does not match the note's destroy token. The
	// comparison is constant-time; the error never says which part differed.
	ErrInvalidDestroyToken = errors.New("invalid destroy token")

	// ErrNoAuthenticatedUser is returned by account-scoped operations when
	// the request context carries no authenticated identity.
	ErrNoAuthenticatedUser = errors.New("no authenticated user")

	// ErrVersionIsNotSpecified is returned when the application version is
	// missing from the build configuration.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
