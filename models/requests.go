package models

// NoteImage is a single encrypted image attachment carried alongside the
// note body. Data is an opaque Base64 blob encrypted client-side with the
// same content key as the note text.
type NoteImage struct {
	// Name is the original file name, capped at 255 characters.
	Name string `json:"name"`

	// Data is the Base64-encoded encrypted image content.
	Data string `json:"data"`

	// Size is the decoded size in bytes, capped at 10 MiB per image.
	Size int64 `json:"size"`
}

// CreateNoteRequest is the JSON payload accepted by POST /api/notes.
// All binary fields cross the boundary as Base64 text. The raw content key
// is never part of this payload; for unprotected notes it travels only in
// the share-link fragment.
type CreateNoteRequest struct {
	Ciphertext string `json:"ciphertext"`
	IV         string `json:"iv"`

	// IsProtected, EncryptedKey, KeyIV and Salt together describe the
	// password key-wrap bundle. Either all three optional fields are
	// present (IsProtected true) or none.
	IsProtected  bool    `json:"isProtected,omitempty"`
	EncryptedKey *string `json:"encryptedKey,omitempty"`
	KeyIV        *string `json:"keyIv,omitempty"`
	Salt         *string `json:"salt,omitempty"`

	Title       *string `json:"title,omitempty"`
	AuthorName  *string `json:"authorName,omitempty"`
	AuthorEmail *string `json:"authorEmail,omitempty"`
	Category    *string `json:"category,omitempty"`

	// MaxReads sets the authoritative consumption counter (≤ 1000).
	MaxReads *int `json:"maxReads,omitempty"`

	// MaxViews is the advisory display cap (≤ 10000).
	MaxViews *int `json:"maxViews,omitempty"`

	// Duration is the lifetime in minutes (≤ 43200, i.e. 30 days).
	Duration *int `json:"duration,omitempty"`

	DeleteAfterReading bool `json:"deleteAfterReading,omitempty"`

	// Images carries up to 3 encrypted attachments.
	Images []NoteImage `json:"images,omitempty"`
}

// DeleteNoteRequest identifies a note for explicit owner-initiated deletion.
// Token, when non-empty, must match the note's destroy token exactly.
type DeleteNoteRequest struct {
	ID    string `json:"id"`
	Token string `json:"token,omitempty"`
}
