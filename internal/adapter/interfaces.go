// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the VaultNote server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrGone] for 410, [ErrForbidden] for 403).
package adapter

import (
	"context"

	"github.com/MKhiriev/vaultnote/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the VaultNote
// server. Implementations are responsible for serialisation, optional bearer
// token management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent requests. Notes never require authentication; the token
	// only attributes created notes to an account.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// CreateNote uploads a sealed note and returns the server-assigned id
	// together with the destroy token. The destroy token is disclosed in
	// this response only.
	CreateNote(ctx context.Context, req models.CreateNoteRequest) (models.CreateNoteResponse, error)

	// GetNote performs the consuming read of a note. Each successful call
	// burns one read on the server; a note that is expired or already
	// consumed yields a wrapped [ErrGone].
	GetNote(ctx context.Context, id string) (models.NoteResponse, error)

	// DeleteNote destroys a note ahead of schedule. req.Token must carry
	// the destroy token; a mismatch yields a wrapped [ErrForbidden].
	DeleteNote(ctx context.Context, req models.DeleteNoteRequest) error

	// Stats fetches the aggregate note counters from the server.
	Stats(ctx context.Context) (models.StatsResponse, error)

	// ServerVersion returns the server build version string.
	ServerVersion(ctx context.Context) (string, error)
}
