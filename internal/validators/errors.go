package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrPayloadTooLarge kinds: rejected before anything touches storage.
	ErrPayloadTooLarge   = errors.New("payload too large")
	ErrTooManyImages     = errors.New("too many images")
	ErrImageTooLarge     = errors.New("image too large")
	ErrImagesTotalTooBig = errors.New("images total size too large")

	// ErrContentValidation kinds: spam-shaped or malformed content.
	ErrContentValidation = errors.New("content validation failed")
	ErrEmptyContent      = errors.New("note content is required")
	ErrEmptyCiphertext   = errors.New("ciphertext is required")
	ErrInvalidCiphertext = errors.New("ciphertext is not valid base64")
	ErrInvalidIV         = errors.New("invalid iv")
	ErrTooManyLines      = errors.New("too many lines")
	ErrLineTooLong       = errors.New("line too long")
	ErrRepetitiveContent = errors.New("too much repetitive content")
	ErrInvalidCategory   = errors.New("invalid category")
	ErrInvalidEmail      = errors.New("invalid author email")
	ErrTitleTooLong      = errors.New("title too long")
	ErrAuthorNameTooLong = errors.New("author name too long")
	ErrInvalidMaxReads   = errors.New("invalid max reads")
	ErrInvalidMaxViews   = errors.New("invalid max views")
	ErrInvalidDuration   = errors.New("invalid duration")
	ErrInconsistentWrap  = errors.New("inconsistent password-protection fields")
	ErrWrapFieldTooLong  = errors.New("password-protection field too long")
	ErrEmptyNoteID       = errors.New("note id is required")
)
