package store

import (
	"context"

	"github.com/MKhiriev/vaultnote/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// NoteLedger is the client-side record of notes this machine has created.
// It backs the "list what I sent" and "burn without the server link" flows.
type NoteLedger interface {
	// Record stores a freshly created note's share URL and destroy token,
	// returning the entry with its assigned row id.
	Record(ctx context.Context, note models.SentNote) (models.SentNote, error)

	// List returns all ledger entries, newest first.
	List(ctx context.Context) ([]models.SentNote, error)

	// Find looks up the entry for a note id. Returns [ErrSentNoteNotFound]
	// when this machine has no record of the note.
	Find(ctx context.Context, noteID string) (models.SentNote, error)

	// Forget removes the entry for a note id, typically after the note has
	// been burned or reported gone by the server.
	Forget(ctx context.Context, noteID string) error
}
