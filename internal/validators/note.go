// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"

	"github.com/MKhiriev/vaultnote/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate or internal validation methods
// to restrict validation to a subset of fields (field-level scoping).
const (
	// FieldCiphertext targets the Base64 encrypted note body.
	FieldCiphertext = "ciphertext"

	// FieldIV targets the Base64 AES-GCM initialization vector.
	FieldIV = "iv"

	// FieldProtection targets the password key-wrap bundle
	// (isProtected, encryptedKey, keyIv, salt) as a cross-field group.
	FieldProtection = "protection"

	// FieldImages targets the list of encrypted image attachments.
	FieldImages = "images"

	// FieldTitle targets the optional plaintext title.
	FieldTitle = "title"

	// FieldAuthorName targets the optional author display name.
	FieldAuthorName = "author_name"

	// FieldAuthorEmail targets the optional author contact email.
	FieldAuthorEmail = "author_email"

	// FieldCategory targets the optional note category label.
	FieldCategory = "category"

	// FieldMaxReads targets the authoritative consumption counter.
	FieldMaxReads = "max_reads"

	// FieldMaxViews targets the advisory display counter.
	FieldMaxViews = "max_views"

	// FieldDuration targets the note lifetime in minutes.
	FieldDuration = "duration"

	// FieldNoteID targets the note identifier of a deletion request.
	FieldNoteID = "note_id"
)

// Size and shape limits enforced by NoteValidator. Ciphertext and image
// limits bound what a single anonymous request may persist; content-shape
// limits bound what a client may encrypt in the first place.
const (
	MaxCiphertextChars = 100_000
	MinIVChars         = 16
	MaxIVChars         = 32

	MaxEncryptedKeyChars = 200
	MaxWrapFieldChars    = 50

	MaxImages           = 3
	MaxImageBytes       = 10 << 20
	MaxImagesTotalBytes = 30 << 20

	MaxTitleChars      = 200
	MaxAuthorNameChars = 100

	MaxReadsLimit      = 1_000
	MaxViewsLimit      = 10_000
	MaxDurationMinutes = 43_200 // 30 days

	MaxContentLines = 1_000
	MaxLineChars    = 10_000

	// Repetition guard: content longer than repetitionMinLines lines
	// must keep at least repetitionMinUniqueRatio of them distinct.
	repetitionMinLines       = 50
	repetitionMinUniqueRatio = 0.3
)

// emailPattern is deliberately loose: one @, non-empty local and domain
// parts, a dot in the domain. Anything stricter rejects real addresses.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// NoteValidator implements the Validator interface for note-related
// domain models: CreateNoteRequest and DeleteNoteRequest.
//
// It supports both value and pointer receivers for every model type
// and allows optional field-level scoping via variadic field name arguments.
//
// Plaintext content-shape checks (line count, line length, repetition)
// cannot run on the server, which only ever sees ciphertext; clients call
// ValidateContent before encrypting.
type NoteValidator struct {
}

// NewNoteValidator constructs a new NoteValidator
// and returns it as the Validator interface.
func NewNoteValidator() Validator {
	return &NoteValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.CreateNoteRequest / *models.CreateNoteRequest
//   - models.DeleteNoteRequest / *models.DeleteNoteRequest
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// every field of the request is validated.
func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateNoteRequest:
		return v.validateCreateNoteRequest(ctx, value, fields...)
	case *models.CreateNoteRequest:
		return v.validateCreateNoteRequest(ctx, *value, fields...)

	case models.DeleteNoteRequest:
		return v.validateDeleteNoteRequest(ctx, value, fields...)
	case *models.DeleteNoteRequest:
		return v.validateDeleteNoteRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateCreateNoteRequest validates a CreateNoteRequest.
//
// Default validated fields (when none specified): Ciphertext, IV,
// Protection, Images, Title, AuthorName, AuthorEmail, Category,
// MaxReads, MaxViews, Duration.
//
// Returns the first encountered validation error or nil.
func (v *NoteValidator) validateCreateNoteRequest(_ context.Context, request models.CreateNoteRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{
			FieldCiphertext, FieldIV, FieldProtection, FieldImages,
			FieldTitle, FieldAuthorName, FieldAuthorEmail, FieldCategory,
			FieldMaxReads, FieldMaxViews, FieldDuration,
		}
	}

	for _, f := range fields {
		switch f {
		case FieldCiphertext:
			if request.Ciphertext == "" {
				return ErrEmptyCiphertext
			}
			if len(request.Ciphertext) > MaxCiphertextChars {
				return fmt.Errorf("%w: ciphertext exceeds %d characters", ErrPayloadTooLarge, MaxCiphertextChars)
			}
			if !isBase64(request.Ciphertext) {
				return ErrInvalidCiphertext
			}
		case FieldIV:
			if len(request.IV) < MinIVChars || len(request.IV) > MaxIVChars {
				return ErrInvalidIV
			}
			if !isBase64(request.IV) {
				return ErrInvalidIV
			}
		case FieldProtection:
			if err := v.validateProtection(request); err != nil {
				return err
			}
		case FieldImages:
			if err := v.validateImages(request.Images); err != nil {
				return err
			}
		case FieldTitle:
			if request.Title != nil && len(*request.Title) > MaxTitleChars {
				return ErrTitleTooLong
			}
		case FieldAuthorName:
			if request.AuthorName != nil && len(*request.AuthorName) > MaxAuthorNameChars {
				return ErrAuthorNameTooLong
			}
		case FieldAuthorEmail:
			if request.AuthorEmail != nil && *request.AuthorEmail != "" && !emailPattern.MatchString(*request.AuthorEmail) {
				return ErrInvalidEmail
			}
		case FieldCategory:
			if request.Category != nil && !models.Category(*request.Category).Valid() {
				return ErrInvalidCategory
			}
		case FieldMaxReads:
			if request.MaxReads != nil && (*request.MaxReads < 1 || *request.MaxReads > MaxReadsLimit) {
				return ErrInvalidMaxReads
			}
		case FieldMaxViews:
			if request.MaxViews != nil && (*request.MaxViews < 1 || *request.MaxViews > MaxViewsLimit) {
				return ErrInvalidMaxViews
			}
		case FieldDuration:
			if request.Duration != nil && (*request.Duration < 1 || *request.Duration > MaxDurationMinutes) {
				return ErrInvalidDuration
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateProtection enforces the all-or-nothing rule for the password
// key-wrap bundle: IsProtected is true exactly when encryptedKey, keyIv
// and salt are all present and non-empty.
func (v *NoteValidator) validateProtection(request models.CreateNoteRequest) error {
	present := func(s *string) bool { return s != nil && *s != "" }

	hasKey := present(request.EncryptedKey)
	hasKeyIV := present(request.KeyIV)
	hasSalt := present(request.Salt)

	if request.IsProtected {
		if !hasKey || !hasKeyIV || !hasSalt {
			return ErrInconsistentWrap
		}
		if len(*request.EncryptedKey) > MaxEncryptedKeyChars {
			return ErrWrapFieldTooLong
		}
		if len(*request.KeyIV) > MaxWrapFieldChars || len(*request.Salt) > MaxWrapFieldChars {
			return ErrWrapFieldTooLong
		}
		if !isBase64(*request.EncryptedKey) || !isBase64(*request.KeyIV) || !isBase64(*request.Salt) {
			return ErrInconsistentWrap
		}
		return nil
	}

	if hasKey || hasKeyIV || hasSalt {
		return ErrInconsistentWrap
	}
	return nil
}

// validateImages enforces the attachment limits: at most MaxImages
// entries, each at most MaxImageBytes decoded, MaxImagesTotalBytes
// combined. The declared Size is cross-checked against the Base64 blob
// so a client cannot understate an attachment.
func (v *NoteValidator) validateImages(images []models.NoteImage) error {
	if len(images) > MaxImages {
		return ErrTooManyImages
	}

	var total int64
	for i, img := range images {
		size := img.Size
		if decoded := int64(base64.StdEncoding.DecodedLen(len(img.Data))); decoded > size {
			size = decoded
		}
		if size > MaxImageBytes {
			return fmt.Errorf("%w: image %d", ErrImageTooLarge, i)
		}
		total += size
	}
	if total > MaxImagesTotalBytes {
		return ErrImagesTotalTooBig
	}

	return nil
}

// validateDeleteNoteRequest validates a DeleteNoteRequest.
//
// Default validated fields: NoteID. The destroy token itself is not
// shape-checked here; token comparison is the service's concern.
func (v *NoteValidator) validateDeleteNoteRequest(_ context.Context, request models.DeleteNoteRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNoteID}
	}

	for _, f := range fields {
		switch f {
		case FieldNoteID:
			if request.ID == "" {
				return ErrEmptyNoteID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// ValidateContent checks the shape of plaintext note content before
// encryption: at most MaxContentLines lines, no line longer than
// MaxLineChars characters, and no heavily repetitive bodies (more than
// repetitionMinLines lines of which fewer than 30% are distinct).
//
// This runs client-side only. Once the content is encrypted the server
// has no way to apply these rules, which is the point.
func ValidateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}

	lines := strings.Split(content, "\n")
	if len(lines) > MaxContentLines {
		return fmt.Errorf("%w: %d lines (limit %d)", ErrTooManyLines, len(lines), MaxContentLines)
	}

	unique := make(map[string]struct{}, len(lines))
	for i, line := range lines {
		if len(line) > MaxLineChars {
			return fmt.Errorf("%w: line %d", ErrLineTooLong, i+1)
		}
		unique[strings.TrimSpace(line)] = struct{}{}
	}

	if len(lines) > repetitionMinLines {
		if ratio := float64(len(unique)) / float64(len(lines)); ratio < repetitionMinUniqueRatio {
			return ErrRepetitiveContent
		}
	}

	return nil
}

// isBase64 reports whether s decodes as standard Base64.
func isBase64(s string) bool {
	_, err := base64.StdEncoding.DecodeString(s)
	return err == nil
}
