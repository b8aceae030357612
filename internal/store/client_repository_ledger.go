package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/vaultnote/internal/logger"
	"github.com/MKhiriev/vaultnote/models"
)

// ErrSentNoteNotFound is returned when the local ledger holds no entry for
// the requested note id.
var ErrSentNoteNotFound = errors.New("sent note not found in ledger")

// noteLedger is the SQLite-backed implementation of [NoteLedger].
type noteLedger struct {
	*DB
	logger *logger.Logger
}

// NewNoteLedger constructs a [NoteLedger] backed by the provided local
// database connection and logger.
func NewNoteLedger(db *DB, logger *logger.Logger) NoteLedger {
	return &noteLedger{
		DB:     db,
		logger: logger,
	}
}

// Record stores a ledger entry for a freshly created note.
func (l *noteLedger) Record(ctx context.Context, note models.SentNote) (models.SentNote, error) {
	log := logger.FromContext(ctx)

	if note.CreatedAt.IsZero() {
		note.CreatedAt = time.Now()
	}

	result, err := l.DB.ExecContext(ctx, recordSentNote,
		note.NoteID,
		note.URL,
		note.DestroyToken,
		note.CreatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "noteLedger.Record").
			Str("note_id", note.NoteID).
			Msg("failed to insert ledger entry")
		return models.SentNote{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	note.ID, err = result.LastInsertId()
	if err != nil {
		log.Err(err).
			Str("func", "noteLedger.Record").
			Str("note_id", note.NoteID).
			Msg("failed to get inserted row id")
		return models.SentNote{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return note, nil
}

// List returns all ledger entries, newest first.
func (l *noteLedger) List(ctx context.Context) ([]models.SentNote, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, listSentNotes)
	if err != nil {
		log.Err(err).
			Str("func", "noteLedger.List").
			Msg("failed to query ledger entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.SentNote, 0, 16)

	for rows.Next() {
		var note models.SentNote

		scanErr := rows.Scan(
			&note.ID,
			&note.NoteID,
			&note.URL,
			&note.DestroyToken,
			&note.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "noteLedger.List").
				Msg("failed to scan ledger entry")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "noteLedger.List").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, rowsErr)
	}

	return notes, nil
}

// Find looks up the ledger entry for a note id.
func (l *noteLedger) Find(ctx context.Context, noteID string) (models.SentNote, error) {
	log := logger.FromContext(ctx)

	var note models.SentNote
	row := l.DB.QueryRowContext(ctx, findSentNote, noteID)

	err := row.Scan(
		&note.ID,
		&note.NoteID,
		&note.URL,
		&note.DestroyToken,
		&note.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SentNote{}, ErrSentNoteNotFound
		}

		log.Err(err).
			Str("func", "noteLedger.Find").
			Str("note_id", noteID).
			Msg("failed to scan ledger entry")
		return models.SentNote{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return note, nil
}

// Forget removes the ledger entry for a note id.
func (l *noteLedger) Forget(ctx context.Context, noteID string) error {
	log := logger.FromContext(ctx)

	result, err := l.DB.ExecContext(ctx, forgetSentNote, noteID)
	if err != nil {
		log.Err(err).
			Str("func", "noteLedger.Forget").
			Str("note_id", noteID).
			Msg("failed to delete ledger entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrSentNoteNotFound
	}

	return nil
}
