package service

import "errors"

// Sentinel errors of the client-side note flows.
var (
	// ErrPasswordTooShort rejects protection passwords under 6 characters
	// before any key derivation happens.
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")

	// ErrMissingFragmentKey is returned when reading an unprotected note
	// from a link that carries no key fragment. Without the fragment the
	// ciphertext is permanently opaque; the server cannot help.
	ErrMissingFragmentKey = errors.New("share link carries no decryption key")

	// ErrMissingPassword is returned when a password-protected note is read
	// without supplying a password.
	ErrMissingPassword = errors.New("note is password protected, a password is required")

	// ErrRateLimited is returned when the server refuses a note creation
	// because the client address exceeded its window.
	ErrRateLimited = errors.New("server rate limit reached, try again later")
)
