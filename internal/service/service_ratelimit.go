package service

import (
	"context"

	"github.com/MKhiriev/vaultnote/internal/config"
	"github.com/MKhiriev/vaultnote/internal/logger"
	"github.com/MKhiriev/vaultnote/internal/store"
	"github.com/MKhiriev/vaultnote/internal/utils"
)

// rateLimiter implements [RateLimiter] with a fixed window per hashed client
// address. The raw address is hashed here, at the boundary; everything below
// this point sees only the salted HMAC prefix.
type rateLimiter struct {
	counters store.RateLimitRepository
	cfg      config.RateLimit

	logger *logger.Logger
}

func NewRateLimiter(counters store.RateLimitRepository, cfg config.RateLimit, logger *logger.Logger) RateLimiter {
	return &rateLimiter{
		counters: counters,
		cfg:      cfg,
		logger:   logger,
	}
}

// Allow counts this request against ip's window and reports whether it fits
// the configured budget.
func (r *rateLimiter) Allow(ctx context.Context, ip string) (bool, error) {
	log := logger.FromContext(ctx)

	hashed := utils.HashIP(ip)

	count, err := r.counters.IncrementAndGet(ctx, hashed, r.cfg.Window)
	if err != nil {
		return false, err
	}

	if count > r.cfg.Requests {
		log.Warn().
			Str("func", "rateLimiter.Allow").
			Str("hashed_ip", hashed).
			Int("count", count).
			Int("limit", r.cfg.Requests).
			Msg("rate limit exceeded")
		return false, nil
	}

	return true, nil
}
