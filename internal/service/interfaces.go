package service

import (
	"context"

	"github.com/MKhiriev/vaultnote/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// NoteService is the server-side business surface over encrypted notes.
// It orchestrates retention, destroy-token checks and metadata-at-rest
// encryption; the note body stays opaque end to end.
type NoteService interface {
	// CreateNote persists a new note and returns its id together with the
	// destroy token. The token is disclosed here and never again.
	CreateNote(ctx context.Context, req models.CreateNoteRequest) (models.CreateNoteResponse, error)

	// ReadNote consumes one read of the note and returns the decryption
	// bundle. Terminal notes are destroyed before the response leaves.
	// Unreadable notes surface the store sentinels unchanged.
	ReadNote(ctx context.Context, id string) (models.NoteResponse, error)

	// DestroyNote deletes a note when the supplied destroy token matches.
	DestroyNote(ctx context.Context, req models.DeleteNoteRequest) error

	// ListUserNotes returns the calling account's notes, newest first. The
	// caller identity comes from the request context; anonymous callers get
	// [ErrNoAuthenticatedUser].
	ListUserNotes(ctx context.Context) ([]models.NoteListItem, error)

	// Stats aggregates note counts for the admin surface.
	Stats(ctx context.Context) (models.StatsResponse, error)

	// CleanupExpired and CleanupViewExhausted run the retention sweeps and
	// report how many rows each reclaimed.
	CleanupExpired(ctx context.Context) (int64, error)
	CleanupViewExhausted(ctx context.Context) (int64, error)
}

// RateLimiter answers whether a request from the given client address may
// proceed. Implementations see raw addresses but persist only hashes.
type RateLimiter interface {
	Allow(ctx context.Context, ip string) (bool, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// NoteServiceWrapper defines middleware composition for NoteService.
// Implementations wrap an existing NoteService to add behavior such as
// logging or validating.
type NoteServiceWrapper interface {
	Wrap(NoteService) NoteService // returns a decorated NoteService applying additional behavior
}
