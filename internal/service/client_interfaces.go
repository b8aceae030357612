package service

import (
	"context"

	"github.com/MKhiriev/vaultnote/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// CreateNoteParams collects everything the client needs to seal and publish
// a note. Content and Password never leave the process; only their
// ciphertexts do.
type CreateNoteParams struct {
	// Content is the plaintext note body.
	Content string

	// Password, when non-empty, switches to the key-wrap flow: the share
	// link carries no fragment and the recipient must know the password.
	Password string

	// Optional metadata, transmitted in the clear and encrypted at rest by
	// the server under its own key.
	Title       *string
	AuthorName  *string
	AuthorEmail *string
	Category    *string

	// Retention settings, all optional.
	MaxReads           *int
	MaxViews           *int
	Duration           *int
	DeleteAfterReading bool
}

// ReadNoteResult is a decrypted note as presented to the client user.
type ReadNoteResult struct {
	// Content is the recovered plaintext.
	Content string

	// Note carries the metadata the server returned; Ciphertext inside it
	// is already spent and of no further use.
	Note models.NoteResponse
}

// ClientNoteService implements the client half of the zero-knowledge
// protocol: all content cryptography happens here, the server only ever
// sees ciphertext.
type ClientNoteService interface {
	// CreateNote encrypts params.Content locally, uploads the sealed note
	// and returns the share link plus the ledger record (which holds the
	// destroy token).
	CreateNote(ctx context.Context, params CreateNoteParams) (models.ShareLink, models.SentNote, error)

	// ReadNote fetches and decrypts a note. target is a full share link or
	// a bare note id; password is required for protected notes. One call
	// consumes one read on the server.
	ReadNote(ctx context.Context, target, password string) (ReadNoteResult, error)

	// BurnNote destroys a note early. token may be empty when the note is
	// in the local ledger; the recorded destroy token is used then. The
	// ledger entry is forgotten on success.
	BurnNote(ctx context.Context, noteID, token string) error

	// ListSent returns the local ledger of created notes, newest first.
	ListSent(ctx context.Context) ([]models.SentNote, error)

	// Stats fetches the server's aggregate note counters.
	Stats(ctx context.Context) (models.StatsResponse, error)

	// ServerVersion reports the server build version.
	ServerVersion(ctx context.Context) (string, error)
}
