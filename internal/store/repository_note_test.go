package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/vaultnote/internal/logger"
	"github.com/MKhiriev/vaultnote/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:                 db,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}
}

func newTestNoteRepo(t *testing.T, db *sql.DB) NoteRepository {
	t.Helper()
	return NewNoteRepository(newDBFromSQL(db), logger.Nop())
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

var noteColumns = []string{
	"id", "ciphertext", "iv", "is_protected", "encrypted_key", "key_iv",
	"salt", "title_encrypted", "author_name_encrypted",
	"author_email_encrypted", "category_encrypted", "images",
	"remaining_reads", "view_count", "max_views", "delete_after_reading",
	"expires_at", "consumed_at", "destroy_token", "user_id", "created_at",
}

// consumeColumns mirrors the consume statement's result: the full post-update
// note row (NULL when the decrement skipped) plus the pinned pre-update
// retention state.
var consumeColumns = append(append([]string{}, noteColumns...),
	"pinned_expires_at", "pinned_consumed_at", "pinned_remaining_reads")

// unreadableConsumeRow builds a consume result row whose decrement did not
// fire: every note column is NULL, only the pinned state carries values.
func unreadableConsumeRow(expiresAt, consumedAt, remainingReads driver.Value) []driver.Value {
	row := make([]driver.Value, len(noteColumns))
	return append(row, expiresAt, consumedAt, remainingReads)
}

func sampleNote(id string) models.Note {
	return models.Note{
		ID:           id,
		Ciphertext:   "Y2lwaGVydGV4dA==",
		IV:           "aXYtMTIzNDU2Nzg5MGFi",
		DestroyToken: "f3a9c2e15b7d4086a1c5e9f20d384b6c",
		CreatedAt:    time.Now().Truncate(time.Millisecond),
	}
}

func noteToRow(n models.Note) []driver.Value {
	return []driver.Value{
		n.ID, n.Ciphertext, n.IV, n.IsProtected, n.EncryptedKey, n.KeyIV,
		n.Salt, n.TitleEncrypted, n.AuthorNameEncrypted,
		n.AuthorEmailEncrypted, n.CategoryEncrypted, n.Images,
		n.RemainingReads, n.ViewCount, n.MaxViews, n.DeleteAfterReading,
		n.ExpiresAt, n.ConsumedAt, n.DestroyToken, n.UserID, n.CreatedAt,
	}
}

func TestCreateNote(t *testing.T) {
	now := time.Now().Truncate(time.Millisecond)
	note := sampleNote("0191a2b3-c4d5-7000-8000-0123456789ab")

	createArgs := []driver.Value{
		note.ID, note.Ciphertext, note.IV, note.IsProtected,
		note.EncryptedKey, note.KeyIV, note.Salt,
		note.TitleEncrypted, note.AuthorNameEncrypted,
		note.AuthorEmailEncrypted, note.CategoryEncrypted, note.Images,
		note.RemainingReads, note.MaxViews, note.DeleteAfterReading,
		note.ExpiresAt, note.DestroyToken, note.UserID,
	}

	t.Run("success: note persisted with DB timestamp", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestNoteRepo(t, db)

		mock.ExpectQuery(regexp.QuoteMeta(createNote)).
			WithArgs(createArgs...).
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))

		saved, err := repo.CreateNote(testContext(), note)
		require.NoError(t, err)
		assert.Equal(t, note.ID, saved.ID)
		assert.Equal(t, now, saved.CreatedAt)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: id collision maps to sentinel", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestNoteRepo(t, db)

		mock.ExpectQuery(regexp.QuoteMeta(createNote)).
			WithArgs(createArgs...).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

		_, err := repo.CreateNote(testContext(), note)
		require.ErrorIs(t, err, ErrNoteIDCollision)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: driver failure is wrapped", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestNoteRepo(t, db)

		mock.ExpectQuery(regexp.QuoteMeta(createNote)).
			WithArgs(createArgs...).
			WillReturnError(errors.New("connection reset"))

		_, err := repo.CreateNote(testContext(), note)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection reset")

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestConsumeNote(t *testing.T) {
	const noteID = "0191a2b3-c4d5-7000-8000-0123456789ab"

	past := time.Now().Add(-time.Hour)
	consumedAt := time.Now().Add(-time.Minute)
	zero := 0

	tests := []struct {
		name    string
		row     []driver.Value // nil means empty result set
		wantErr error
	}{
		{
			name:    "error: unknown id",
			row:     nil,
			wantErr: ErrNoteNotFound,
		},
		{
			name:    "error: already consumed",
			row:     unreadableConsumeRow(nil, consumedAt, &zero),
			wantErr: ErrNoteConsumed,
		},
		{
			name:    "error: time bound passed",
			row:     unreadableConsumeRow(past, nil, nil),
			wantErr: ErrNoteExpired,
		},
		{
			name:    "error: read allowance exhausted",
			row:     unreadableConsumeRow(nil, nil, &zero),
			wantErr: ErrNoteConsumed,
		},
		{
			name: "error: lost race with concurrent read",
			// Pinned state looks readable, yet the update skipped the row.
			row:     unreadableConsumeRow(nil, nil, nil),
			wantErr: ErrNoteConsumed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := newTestNoteRepo(t, db)

			rows := sqlmock.NewRows(consumeColumns)
			if tt.row != nil {
				rows.AddRow(tt.row...)
			}
			mock.ExpectQuery(regexp.QuoteMeta(consumeNote)).
				WithArgs(noteID).
				WillReturnRows(rows)

			_, err := repo.ConsumeNote(testContext(), noteID)
			require.ErrorIs(t, err, tt.wantErr)

			require.NoError(t, mock.ExpectationsWereMet())
		})
	}

	t.Run("success: content returned with the decrement", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestNoteRepo(t, db)

		note := sampleNote(noteID)
		remainingAfter := 2
		note.RemainingReads = &remainingAfter
		note.ViewCount = 1

		three := 3
		row := append(noteToRow(note), nil, nil, &three)
		mock.ExpectQuery(regexp.QuoteMeta(consumeNote)).
			WithArgs(noteID).
			WillReturnRows(sqlmock.NewRows(consumeColumns).AddRow(row...))

		got, err := repo.ConsumeNote(testContext(), noteID)
		require.NoError(t, err)
		assert.Equal(t, noteID, got.ID)
		assert.Equal(t, note.Ciphertext, got.Ciphertext)
		assert.Equal(t, note.IV, got.IV)
		require.NotNil(t, got.RemainingReads)
		assert.Equal(t, 2, *got.RemainingReads)
		assert.Equal(t, 1, got.ViewCount)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success: final read survives a concurrent delete", func(t *testing.T) {
		// A reader whose decrement committed must receive the content even
		// when the row vanishes immediately afterwards (the other reader's
		// post-read delete, or the retention sweep reclaiming consumed
		// rows). The content arrives with the decrement itself, so no
		// follow-up query exists for the delete to race with: the single
		// registered expectation below is the only round trip.
		db, mock := newTestDB(t)
		repo := newTestNoteRepo(t, db)

		note := sampleNote(noteID)
		lastRead := 0
		note.RemainingReads = &lastRead
		note.ViewCount = 1
		stamped := time.Now().Truncate(time.Millisecond)
		note.ConsumedAt = &stamped

		one := 1
		row := append(noteToRow(note), nil, nil, &one)
		mock.ExpectQuery(regexp.QuoteMeta(consumeNote)).
			WithArgs(noteID).
			WillReturnRows(sqlmock.NewRows(consumeColumns).AddRow(row...))

		got, err := repo.ConsumeNote(testContext(), noteID)
		require.NoError(t, err)
		assert.Equal(t, note.Ciphertext, got.Ciphertext)
		require.NotNil(t, got.ConsumedAt)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: query failure is wrapped", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestNoteRepo(t, db)

		mock.ExpectQuery(regexp.QuoteMeta(consumeNote)).
			WithArgs(noteID).
			WillReturnError(errors.New("connection reset"))

		_, err := repo.ConsumeNote(testContext(), noteID)
		require.ErrorIs(t, err, ErrExecutingQuery)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetNote(t *testing.T) {
	const noteID = "0191a2b3-c4d5-7000-8000-0123456789ab"

	t.Run("success: full row scanned", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestNoteRepo(t, db)

		note := sampleNote(noteID)
		encKey := "d2thclfh5aA=="
		keyIV := "a2V5aXYtMTIzNDU2"
		salt := "c2FsdC0xMjM0NTY="
		note.IsProtected = true
		note.EncryptedKey = &encKey
		note.KeyIV = &keyIV
		note.Salt = &salt

		mock.ExpectQuery(regexp.QuoteMeta(getNote)).
			WithArgs(noteID).
			WillReturnRows(sqlmock.NewRows(noteColumns).AddRow(noteToRow(note)...))

		got, err := repo.GetNote(testContext(), noteID)
		require.NoError(t, err)
		assert.Equal(t, note.Ciphertext, got.Ciphertext)
		assert.True(t, got.IsProtected)
		require.NotNil(t, got.EncryptedKey)
		assert.Equal(t, encKey, *got.EncryptedKey)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: unknown id", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestNoteRepo(t, db)

		mock.ExpectQuery(regexp.QuoteMeta(getNote)).
			WithArgs(noteID).
			WillReturnRows(sqlmock.NewRows(noteColumns))

		_, err := repo.GetNote(testContext(), noteID)
		require.ErrorIs(t, err, ErrNoteNotFound)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeleteNote(t *testing.T) {
	const noteID = "0191a2b3-c4d5-7000-8000-0123456789ab"

	tests := []struct {
		name     string
		result   driver.Result
		execErr  error
		wantErr  error
		wantWrap string
	}{
		{
			name:   "success: row removed",
			result: sqlmock.NewResult(0, 1),
		},
		{
			name:    "error: nothing to remove",
			result:  sqlmock.NewResult(0, 0),
			wantErr: ErrNoteNotFound,
		},
		{
			name:     "error: driver failure is wrapped",
			execErr:  errors.New("connection reset"),
			wantErr:  ErrExecutingStatement,
			wantWrap: "connection reset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := newTestNoteRepo(t, db)

			exp := mock.ExpectExec(regexp.QuoteMeta(deleteNote)).WithArgs(noteID)
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(tt.result)
			}

			err := repo.DeleteNote(testContext(), noteID)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				if tt.wantWrap != "" {
					assert.Contains(t, err.Error(), tt.wantWrap)
				}
			} else {
				require.NoError(t, err)
			}

			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDeleteExpired(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestNoteRepo(t, db)

	mock.ExpectExec("DELETE FROM notes").
		WillReturnResult(sqlmock.NewResult(0, 7))

	reclaimed, err := repo.DeleteExpired(testContext())
	require.NoError(t, err)
	assert.Equal(t, int64(7), reclaimed)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteViewExhausted(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestNoteRepo(t, db)

	mock.ExpectExec("DELETE FROM notes").
		WillReturnResult(sqlmock.NewResult(0, 2))

	reclaimed, err := repo.DeleteViewExhausted(testContext())
	require.NoError(t, err)
	assert.Equal(t, int64(2), reclaimed)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStats(t *testing.T) {
	t.Run("success: aggregates scanned", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestNoteRepo(t, db)

		statsColumns := []string{
			"total_notes", "active_notes", "expired_notes",
			"protected_notes", "storage_bytes",
		}
		mock.ExpectQuery("SELECT COUNT").
			WillReturnRows(sqlmock.NewRows(statsColumns).
				AddRow(int64(10), int64(6), int64(3), int64(4), int64(123456)))

		stats, err := repo.Stats(testContext())
		require.NoError(t, err)
		assert.Equal(t, int64(10), stats.TotalNotes)
		assert.Equal(t, int64(6), stats.ActiveNotes)
		assert.Equal(t, int64(3), stats.ExpiredNotes)
		assert.Equal(t, int64(4), stats.ProtectedNotes)
		assert.Equal(t, int64(123456), stats.StorageBytes)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: query failure is wrapped", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestNoteRepo(t, db)

		mock.ExpectQuery("SELECT COUNT").
			WillReturnError(errors.New("connection reset"))

		_, err := repo.Stats(testContext())
		require.ErrorIs(t, err, ErrScanningRow)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListByUser(t *testing.T) {
	listColumns := []string{
		"id", "is_protected", "title_encrypted", "category_encrypted",
		"remaining_reads", "view_count", "max_views",
		"delete_after_reading", "expires_at", "created_at",
	}

	t.Run("success: rows scanned newest first", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestNoteRepo(t, db)

		title := "enc-title"
		reads := 3
		created := time.Now().Truncate(time.Millisecond)
		mock.ExpectQuery("SELECT id, is_protected").
			WithArgs(int64(42)).
			WillReturnRows(sqlmock.NewRows(listColumns).
				AddRow("note-2", true, nil, nil, nil, 0, nil, false, nil, created).
				AddRow("note-1", false, &title, nil, &reads, 1, nil, false, nil, created.Add(-time.Hour)))

		notes, err := repo.ListByUser(testContext(), 42)
		require.NoError(t, err)
		require.Len(t, notes, 2)
		assert.Equal(t, "note-2", notes[0].ID)
		assert.True(t, notes[0].IsProtected)
		assert.Equal(t, "note-1", notes[1].ID)
		require.NotNil(t, notes[1].TitleEncrypted)
		assert.Equal(t, "enc-title", *notes[1].TitleEncrypted)
		require.NotNil(t, notes[1].RemainingReads)
		assert.Equal(t, 3, *notes[1].RemainingReads)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success: no notes is an empty list", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestNoteRepo(t, db)

		mock.ExpectQuery("SELECT id, is_protected").
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows(listColumns))

		notes, err := repo.ListByUser(testContext(), 7)
		require.NoError(t, err)
		assert.Empty(t, notes)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: query failure wrapped", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestNoteRepo(t, db)

		mock.ExpectQuery("SELECT id, is_protected").
			WithArgs(int64(7)).
			WillReturnError(errors.New("connection reset"))

		_, err := repo.ListByUser(testContext(), 7)
		require.ErrorIs(t, err, ErrExecutingQuery)
	})
}
