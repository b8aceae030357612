package models

import "time"

// Note is the sole persistent entity of the note core. The server stores only
// ciphertext and metadata encrypted with a server-held key; no combination of
// columns is sufficient to recover the note body without the fragment-carried
// key or the viewer's password.
//
// A Note is immutable after creation except for its consumption counters
// (ViewCount, RemainingReads, ConsumedAt) and its existence: once any terminal
// retention condition is satisfied the row is physically deleted.
type Note struct {
	// ID is the server-generated opaque identifier (UUIDv7) used as the
	// lookup key and embedded in share URLs.
	ID string `json:"id"`

	// Ciphertext is the authenticated-encrypted note body, Base64 encoded.
	// Opaque to the server.
	Ciphertext string `json:"ciphertext"`

	// IV is the Base64-encoded initialization vector used to encrypt
	// Ciphertext. A fresh IV is generated client-side per note.
	IV string `json:"iv"`

	// IsProtected reports whether a password-based key wrap is in effect.
	// True iff EncryptedKey, KeyIV and Salt are all present.
	IsProtected bool `json:"isProtected"`

	// EncryptedKey is the content key in its exported string form, encrypted
	// with the password-derived key. Present only for protected notes.
	EncryptedKey *string `json:"encryptedKey,omitempty"`

	// KeyIV is the Base64 IV used when wrapping the content key.
	KeyIV *string `json:"keyIv,omitempty"`

	// Salt is the Base64 per-note random salt fed to the password KDF.
	Salt *string `json:"salt,omitempty"`

	// TitleEncrypted, AuthorNameEncrypted, AuthorEmailEncrypted and
	// CategoryEncrypted hold the metadata fields encrypted at rest with the
	// server-held metadata key. Readable by the operator, not part of the
	// zero-knowledge content guarantee.
	TitleEncrypted       *string `json:"-"`
	AuthorNameEncrypted  *string `json:"-"`
	AuthorEmailEncrypted *string `json:"-"`
	CategoryEncrypted    *string `json:"-"`

	// Images is a JSON-encoded array of encrypted image attachments,
	// opaque blobs like Ciphertext.
	Images *string `json:"-"`

	// RemainingReads counts down on each successful read; the note is
	// destroyed when it reaches zero. Nil means unlimited by count.
	RemainingReads *int `json:"remainingReads,omitempty"`

	// ViewCount monotonically increases on every successful read.
	ViewCount int `json:"viewCount"`

	// MaxViews, when set, caps total views. Enforced by the background
	// sweep; RemainingReads is the authoritative consumption counter.
	MaxViews *int `json:"maxViews,omitempty"`

	// DeleteAfterReading destroys the note after the first successful read
	// regardless of the remaining-read counter.
	DeleteAfterReading bool `json:"deleteAfterReading"`

	// ExpiresAt invalidates the note once passed, independent of read
	// counts. Nil means no time bound.
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`

	// ConsumedAt records the instant RemainingReads reached zero.
	ConsumedAt *time.Time `json:"-"`

	// DestroyToken is a random high-entropy secret returned only at
	// creation time; it authorizes explicit out-of-band deletion.
	DestroyToken string `json:"-"`

	// UserID optionally associates the note with an authenticated account.
	UserID *int64 `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
}
