package store

import (
	"context"

	"github.com/MKhiriev/vaultnote/internal/config"
	"github.com/MKhiriev/vaultnote/internal/logger"
)

// Storages bundles the server-side repositories behind one constructor.
type Storages struct {
	NoteRepository      NoteRepository
	RateLimitRepository RateLimitRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies pending migrations and wires
// the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		return nil, err
	}

	return &Storages{
		NoteRepository:      NewNoteRepository(db, log),
		RateLimitRepository: NewRateLimitRepository(db, log),
		db:                  db,
	}, nil
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
