package store

import (
	"context"
	"time"

	"github.com/MKhiriev/vaultnote/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// NoteRepository is the server-side persistence surface for encrypted notes.
// Implementations never interpret ciphertext; every method deals in opaque
// blobs plus retention metadata.
type NoteRepository interface {
	// CreateNote persists a new note and returns it with the
	// database-assigned creation timestamp filled in.
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)

	// ConsumeNote atomically checks the note's retention state and, if the
	// note is readable, decrements its remaining-read counter and increments
	// its view counter in the same statement. On success the full note row
	// (counters post-decrement) is returned. Otherwise one of
	// [ErrNoteNotFound], [ErrNoteExpired] or [ErrNoteConsumed] is returned.
	ConsumeNote(ctx context.Context, id string) (models.Note, error)

	// GetNote fetches a note row without touching its counters. Used by the
	// destroy path to verify the token before deleting.
	GetNote(ctx context.Context, id string) (models.Note, error)

	// DeleteNote physically removes a note row. Removing an absent row
	// returns [ErrNoteNotFound].
	DeleteNote(ctx context.Context, id string) error

	// DeleteExpired removes every note whose time bound has passed or whose
	// consumption was recorded, returning the number of reclaimed rows.
	DeleteExpired(ctx context.Context) (int64, error)

	// DeleteViewExhausted removes notes whose view counter reached the
	// advisory max-views cap, returning the number of reclaimed rows.
	DeleteViewExhausted(ctx context.Context) (int64, error)

	// ListByUser returns the notes pinned to an authenticated account,
	// newest first. Content and key columns are never selected.
	ListByUser(ctx context.Context, userID int64) ([]models.Note, error)

	// Stats aggregates note counts and approximate storage usage.
	Stats(ctx context.Context) (models.StatsResponse, error)
}

// RateLimitRepository tracks request counts per hashed client IP inside a
// fixed window. Raw IP addresses never reach this layer.
type RateLimitRepository interface {
	// IncrementAndGet bumps the counter for hashedIP, resetting it first if
	// the stored window started longer than window ago, and returns the
	// counter value after the increment.
	IncrementAndGet(ctx context.Context, hashedIP string, window time.Duration) (int, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying. See [PostgresErrorClassifier] for the PostgreSQL implementation.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
