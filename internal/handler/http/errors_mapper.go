package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/vaultnote/internal/service"
	"github.com/MKhiriev/vaultnote/internal/store"
	"github.com/MKhiriev/vaultnote/internal/validators"
)

var errorStatusMap = map[error]int{
	// retention verdicts: gone notes answer 410, unknown ids 404
	store.ErrNoteNotFound: http.StatusNotFound,
	store.ErrNoteExpired:  http.StatusGone,
	store.ErrNoteConsumed: http.StatusGone,

	service.ErrInvalidDestroyToken: http.StatusForbidden,
	service.ErrNoAuthenticatedUser: http.StatusUnauthorized,

	// payload-size rejections
	validators.ErrPayloadTooLarge:   http.StatusRequestEntityTooLarge,
	validators.ErrTooManyImages:     http.StatusRequestEntityTooLarge,
	validators.ErrImageTooLarge:     http.StatusRequestEntityTooLarge,
	validators.ErrImagesTotalTooBig: http.StatusRequestEntityTooLarge,

	// malformed or spam-shaped requests
	validators.ErrContentValidation: http.StatusBadRequest,
	validators.ErrEmptyCiphertext:   http.StatusBadRequest,
	validators.ErrInvalidCiphertext: http.StatusBadRequest,
	validators.ErrInvalidIV:         http.StatusBadRequest,
	validators.ErrTooManyLines:      http.StatusBadRequest,
	validators.ErrLineTooLong:       http.StatusBadRequest,
	validators.ErrRepetitiveContent: http.StatusBadRequest,
	validators.ErrInvalidCategory:   http.StatusBadRequest,
	validators.ErrInvalidEmail:      http.StatusBadRequest,
	validators.ErrTitleTooLong:      http.StatusBadRequest,
	validators.ErrAuthorNameTooLong: http.StatusBadRequest,
	validators.ErrInvalidMaxReads:   http.StatusBadRequest,
	validators.ErrInvalidMaxViews:   http.StatusBadRequest,
	validators.ErrInvalidDuration:   http.StatusBadRequest,
	validators.ErrInconsistentWrap:  http.StatusBadRequest,
	validators.ErrWrapFieldTooLong:  http.StatusBadRequest,
	validators.ErrEmptyNoteID:       http.StatusBadRequest,

	store.ErrNoteNotSaved:       http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
}

// mapError resolves err to its HTTP status plus a safe public message: the
// matched sentinel's text, never the wrapped driver detail. Unrecognised
// errors collapse to a plain 500.
func mapError(err error) (int, string) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			if status >= http.StatusInternalServerError {
				return status, http.StatusText(status)
			}
			return status, target.Error()
		}
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}
