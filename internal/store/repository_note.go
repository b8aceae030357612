package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/vaultnote/internal/logger"
	"github.com/MKhiriev/vaultnote/models"
	"github.com/jackc/pgerrcode"
)

// noteRepository is the PostgreSQL-backed implementation of [NoteRepository].
// It executes all note operations directly against the "notes" table using
// the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via [logger.FromContext]
// so that all database interactions are traced with structured fields. Note
// ciphertext and keys are never logged, only identifiers and counters.
type noteRepository struct {
	*DB
	logger *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	return &noteRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateNote persists a note row and fills in the database-assigned creation
// timestamp. The caller supplies the id and destroy token; an id collision
// (practically unreachable with UUIDv7) surfaces as [ErrNoteIDCollision] so
// the service can retry with a fresh id.
func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, createNote,
		note.ID,
		note.Ciphertext,
		note.IV,
		note.IsProtected,
		note.EncryptedKey,
		note.KeyIV,
		note.Salt,
		note.TitleEncrypted,
		note.AuthorNameEncrypted,
		note.AuthorEmailEncrypted,
		note.CategoryEncrypted,
		note.Images,
		note.RemainingReads,
		note.MaxViews,
		note.DeleteAfterReading,
		note.ExpiresAt,
		note.DestroyToken,
		note.UserID,
	)

	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "noteRepository.CreateNote").
			Str("note_id", note.ID).
			Msg("failed to execute insert")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Note{}, ErrNoteIDCollision
		default:
			return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err := row.Scan(&note.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Error().
				Str("func", "noteRepository.CreateNote").
				Str("note_id", note.ID).
				Msg("insert affected no rows")
			return models.Note{}, ErrNoteNotSaved
		}
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Note{}, ErrNoteIDCollision
		}

		log.Err(err).
			Str("func", "noteRepository.CreateNote").
			Str("note_id", note.ID).
			Msg("failed to scan created note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return note, nil
}

// ConsumeNote runs the single-statement check-and-decrement and classifies
// the outcome. On success the returned note carries the content and the
// post-update counters from the same statement that performed the decrement,
// so a concurrent delete can never strand a committed read without its
// content.
func (r *noteRepository) ConsumeNote(ctx context.Context, id string) (models.Note, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, consumeNote, id)

	// The consumed.* targets must tolerate NULL because the LEFT JOIN leaves
	// them empty when the UPDATE skipped the row; consumedID is set iff the
	// decrement fired. The trailing columns pin the note's pre-update
	// retention state for classification.
	var (
		note models.Note

		consumedID   sql.NullString
		ciphertext   sql.NullString
		iv           sql.NullString
		isProtected  sql.NullBool
		viewCount    sql.NullInt64
		deleteAfter  sql.NullBool
		destroyToken sql.NullString
		createdAt    sql.NullTime

		pinnedExpiresAt      *time.Time
		pinnedConsumedAt     *time.Time
		pinnedRemainingReads *int
	)

	err := row.Scan(
		&consumedID,
		&ciphertext,
		&iv,
		&isProtected,
		&note.EncryptedKey,
		&note.KeyIV,
		&note.Salt,
		&note.TitleEncrypted,
		&note.AuthorNameEncrypted,
		&note.AuthorEmailEncrypted,
		&note.CategoryEncrypted,
		&note.Images,
		&note.RemainingReads,
		&viewCount,
		&note.MaxViews,
		&deleteAfter,
		&note.ExpiresAt,
		&note.ConsumedAt,
		&destroyToken,
		&note.UserID,
		&createdAt,
		&pinnedExpiresAt,
		&pinnedConsumedAt,
		&pinnedRemainingReads,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}

		log.Err(err).
			Str("func", "noteRepository.ConsumeNote").
			Str("note_id", id).
			Msg("failed to execute consume query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if !consumedID.Valid {
		err := classifyUnreadable(pinnedExpiresAt, pinnedConsumedAt, pinnedRemainingReads)
		log.Debug().
			Str("func", "noteRepository.ConsumeNote").
			Str("note_id", id).
			Str("reason", err.Error()).
			Msg("note is not readable")
		return models.Note{}, err
	}

	note.ID = consumedID.String
	note.Ciphertext = ciphertext.String
	note.IV = iv.String
	note.IsProtected = isProtected.Bool
	note.ViewCount = int(viewCount.Int64)
	note.DeleteAfterReading = deleteAfter.Bool
	note.DestroyToken = destroyToken.String
	note.CreatedAt = createdAt.Time

	return note, nil
}

// classifyUnreadable maps the pinned retention state of an existing but
// unreadable note to a domain sentinel via [models.RetentionOf].
func classifyUnreadable(expiresAt, consumedAt *time.Time, remainingReads *int) error {
	if consumedAt != nil {
		return ErrNoteConsumed
	}

	policy := models.RetentionOf(models.Note{
		ExpiresAt:      expiresAt,
		RemainingReads: remainingReads,
	})
	switch {
	case policy.Expired(time.Now()):
		return ErrNoteExpired
	case policy.Exhausted():
		return ErrNoteConsumed
	default:
		// The pinned state looked readable but the update still skipped the
		// row: a concurrent read consumed it between snapshots.
		return ErrNoteConsumed
	}
}

// GetNote fetches a note row without touching its counters.
func (r *noteRepository) GetNote(ctx context.Context, id string) (models.Note, error) {
	log := logger.FromContext(ctx)

	var note models.Note
	row := r.DB.QueryRowContext(ctx, getNote, id)

	err := row.Scan(
		&note.ID,
		&note.Ciphertext,
		&note.IV,
		&note.IsProtected,
		&note.EncryptedKey,
		&note.KeyIV,
		&note.Salt,
		&note.TitleEncrypted,
		&note.AuthorNameEncrypted,
		&note.AuthorEmailEncrypted,
		&note.CategoryEncrypted,
		&note.Images,
		&note.RemainingReads,
		&note.ViewCount,
		&note.MaxViews,
		&note.DeleteAfterReading,
		&note.ExpiresAt,
		&note.ConsumedAt,
		&note.DestroyToken,
		&note.UserID,
		&note.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}

		log.Err(err).
			Str("func", "noteRepository.GetNote").
			Str("note_id", id).
			Msg("failed to scan note row")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return note, nil
}

// DeleteNote physically removes a note row.
func (r *noteRepository) DeleteNote(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteNote, id)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.DeleteNote").
			Str("note_id", id).
			Msg("failed to execute delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.DeleteNote").
			Str("note_id", id).
			Msg("failed to get affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

// DeleteExpired reclaims notes whose time bound has passed, plus consumed
// rows that outlived the immediate delete on the read path.
func (r *noteRepository) DeleteExpired(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteExpiredQuery(time.Now())
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.DeleteExpired").
			Msg("failed to build sweep query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.DeleteExpired").
			Msg("failed to execute sweep")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected > 0 {
		log.Info().
			Str("func", "noteRepository.DeleteExpired").
			Int64("reclaimed", affected).
			Msg("expired notes reclaimed")
	}

	return affected, nil
}

// DeleteViewExhausted reclaims notes whose view counter reached the advisory
// max-views cap.
func (r *noteRepository) DeleteViewExhausted(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteViewExhaustedQuery()
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.DeleteViewExhausted").
			Msg("failed to build sweep query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.DeleteViewExhausted").
			Msg("failed to execute sweep")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected > 0 {
		log.Info().
			Str("func", "noteRepository.DeleteViewExhausted").
			Int64("reclaimed", affected).
			Msg("view-exhausted notes reclaimed")
	}

	return affected, nil
}

// ListByUser returns the notes pinned to an account, newest first. Only the
// listing columns are scanned; ciphertext and the destroy token stay out of
// this path entirely.
func (r *noteRepository) ListByUser(ctx context.Context, userID int64) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListByUserQuery(userID)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.ListByUser").
			Msg("failed to build listing query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.ListByUser").
			Msg("failed to execute listing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var notes []models.Note
	for rows.Next() {
		var note models.Note
		if err = rows.Scan(
			&note.ID,
			&note.IsProtected,
			&note.TitleEncrypted,
			&note.CategoryEncrypted,
			&note.RemainingReads,
			&note.ViewCount,
			&note.MaxViews,
			&note.DeleteAfterReading,
			&note.ExpiresAt,
			&note.CreatedAt,
		); err != nil {
			log.Err(err).
				Str("func", "noteRepository.ListByUser").
				Msg("failed to scan listing row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		notes = append(notes, note)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return notes, nil
}

// Stats aggregates note counts and approximate storage usage.
func (r *noteRepository) Stats(ctx context.Context) (models.StatsResponse, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildStatsQuery(time.Now())
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.Stats").
			Msg("failed to build stats query")
		return models.StatsResponse{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var stats models.StatsResponse
	row := r.DB.QueryRowContext(ctx, query, args...)

	scanErr := row.Scan(
		&stats.TotalNotes,
		&stats.ActiveNotes,
		&stats.ExpiredNotes,
		&stats.ProtectedNotes,
		&stats.StorageBytes,
	)
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "noteRepository.Stats").
			Msg("failed to scan stats row")
		return models.StatsResponse{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return stats, nil
}
