// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/vaultnote/internal/adapter"
	"github.com/MKhiriev/vaultnote/internal/app"
	"github.com/MKhiriev/vaultnote/internal/store"
)

// mapAdapterError translates the adapter's transport error into a business
// error. The two 410 variants are told apart by the response body, which the
// server words via the shared app constants.
func (c *clientNoteService) mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrNotFound):
		return store.ErrNoteNotFound

	case errors.Is(err, adapter.ErrGone):
		if msg == app.MsgNoteExpired {
			return store.ErrNoteExpired
		}
		return store.ErrNoteConsumed

	case errors.Is(err, adapter.ErrForbidden):
		return ErrInvalidDestroyToken

	case errors.Is(err, adapter.ErrTooManyRequests):
		return ErrRateLimited
	}

	return err
}

// extractBody extracts the body from a message of the form "note is gone: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
