// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// VaultNote server handlers and the client-side error mapping.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API:
// the client maps response bodies back to business errors by exact match.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgNoteNotFound is returned when the requested note id does not exist.
	MsgNoteNotFound = "note was not found"

	// MsgNoteExpired is returned when a note's lifetime has passed.
	// Identical in shape to MsgNoteConsumed so an HTTP observer learns
	// nothing beyond "gone".
	MsgNoteExpired = "note has expired"

	// MsgNoteConsumed is returned when a note's read counter is exhausted.
	MsgNoteConsumed = "note has been consumed"

	// MsgInvalidDestroyToken is returned when a destroy request carries a
	// token that does not match the note's destroy token.
	MsgInvalidDestroyToken = "invalid destroy token"

	// MsgTooManyRequests is returned when the hashed client address exceeds
	// the note-creation rate limit.
	MsgTooManyRequests = "too many requests"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
