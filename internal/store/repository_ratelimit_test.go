package store

import (
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/vaultnote/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncrementAndGet(t *testing.T) {
	const hashedIP = "9f86d081884c7d659a2feaa0c55ad015"
	window := time.Minute

	t.Run("success: counter incremented inside window", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewRateLimitRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta(rateLimitUpsert)).
			WithArgs(hashedIP, window.Seconds()).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

		count, err := repo.IncrementAndGet(testContext(), hashedIP, window)
		require.NoError(t, err)
		assert.Equal(t, 5, count)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success: stale window restarts at one", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewRateLimitRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta(rateLimitUpsert)).
			WithArgs(hashedIP, window.Seconds()).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		count, err := repo.IncrementAndGet(testContext(), hashedIP, window)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: driver failure is wrapped", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewRateLimitRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta(rateLimitUpsert)).
			WithArgs(hashedIP, window.Seconds()).
			WillReturnError(errors.New("connection reset"))

		_, err := repo.IncrementAndGet(testContext(), hashedIP, window)
		require.ErrorIs(t, err, ErrExecutingStatement)
		assert.Contains(t, err.Error(), "connection reset")

		require.NoError(t, mock.ExpectationsWereMet())
	})
}
