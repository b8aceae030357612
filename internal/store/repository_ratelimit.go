package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/vaultnote/internal/logger"
)

// rateLimitRepository is the PostgreSQL-backed implementation of
// [RateLimitRepository]. Counters are keyed by hashed IP only; the raw
// address never reaches this layer.
type rateLimitRepository struct {
	*DB
	logger *logger.Logger
}

// NewRateLimitRepository constructs a [RateLimitRepository] backed by the
// provided database connection and logger.
func NewRateLimitRepository(db *DB, logger *logger.Logger) RateLimitRepository {
	return &rateLimitRepository{
		DB:     db,
		logger: logger,
	}
}

// IncrementAndGet bumps the counter for hashedIP inside the current window
// and returns the post-increment value. A window older than the configured
// duration is restarted at 1. The whole operation is a single upsert, so
// concurrent requests from the same address serialize on the row.
func (r *rateLimitRepository) IncrementAndGet(ctx context.Context, hashedIP string, window time.Duration) (int, error) {
	log := logger.FromContext(ctx)

	var count int
	row := r.DB.QueryRowContext(ctx, rateLimitUpsert, hashedIP, window.Seconds())

	if err := row.Scan(&count); err != nil {
		log.Err(err).
			Str("func", "rateLimitRepository.IncrementAndGet").
			Str("hashed_ip", hashedIP).
			Msg("failed to upsert rate limit counter")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return count, nil
}
