// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/vaultnote/internal/logger"
	"github.com/MKhiriev/vaultnote/internal/service"
)

// defaultCleanupInterval is used when the deployment does not set one.
const defaultCleanupInterval = time.Hour

// cleanupWorker periodically reclaims rows the lazy read-path checks have
// not touched: expired notes nobody asked for again, consumed leftovers and
// notes whose advisory view cap ran out. The sweep is the enforcement point
// for max_views; reads only count them.
type cleanupWorker struct {
	ctx      context.Context
	notes    service.NoteService
	interval time.Duration

	logger *logger.Logger
}

func newCleanupWorker(ctx context.Context, notes service.NoteService, interval time.Duration, logger *logger.Logger) *cleanupWorker {
	if interval <= 0 {
		interval = defaultCleanupInterval
	}

	return &cleanupWorker{
		ctx:      ctx,
		notes:    notes,
		interval: interval,
		logger:   logger,
	}
}

// Run starts the sweep loop in its own goroutine and returns immediately.
// The loop stops when the worker's context is cancelled.
func (c *cleanupWorker) Run() {
	go func() {
		c.logger.Info().
			Str("func", "cleanupWorker.Run").
			Dur("interval", c.interval).
			Msg("retention sweep started")

		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()

		// one pass right away so a restart does not defer reclamation
		c.sweep()

		for {
			select {
			case <-c.ctx.Done():
				c.logger.Info().Str("func", "cleanupWorker.Run").Msg("retention sweep stopped")
				return
			case <-ticker.C:
				c.sweep()
			}
		}
	}()
}

func (c *cleanupWorker) sweep() {
	expired, err := c.notes.CleanupExpired(c.ctx)
	if err != nil {
		c.logger.Err(err).Str("func", "cleanupWorker.sweep").Msg("error deleting expired notes")
	}

	exhausted, err := c.notes.CleanupViewExhausted(c.ctx)
	if err != nil {
		c.logger.Err(err).Str("func", "cleanupWorker.sweep").Msg("error deleting view-exhausted notes")
	}

	if expired > 0 || exhausted > 0 {
		c.logger.Info().
			Str("func", "cleanupWorker.sweep").
			Int64("expired", expired).
			Int64("view_exhausted", exhausted).
			Msg("retention sweep reclaimed notes")
	}
}
