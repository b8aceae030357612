package models

import "time"

// CreateNoteResponse is returned by POST /api/notes. The destroy token is
// disclosed exactly once, here; it is never readable again.
type CreateNoteResponse struct {
	ID           string `json:"id"`
	DestroyToken string `json:"destroyToken"`
}

// NoteResponse is the read-time bundle handed to the client for local
// decryption. Ciphertext stays opaque; metadata fields arrive decrypted
// because they are encrypted with the server-held key, not the content key.
type NoteResponse struct {
	Title      *string `json:"title,omitempty"`
	Ciphertext string  `json:"ciphertext"`
	IV         string  `json:"iv"`

	// RemainingReadsPreview is the post-decrement counter value, nil for
	// notes without a read bound.
	RemainingReadsPreview *int `json:"remainingReadsPreview,omitempty"`

	IsProtected  bool    `json:"isProtected"`
	EncryptedKey *string `json:"encryptedKey,omitempty"`
	KeyIV        *string `json:"keyIv,omitempty"`
	Salt         *string `json:"salt,omitempty"`

	Images []NoteImage `json:"images,omitempty"`

	AuthorName  string  `json:"authorName"`
	AuthorEmail string  `json:"authorEmail"`
	Category    *string `json:"category,omitempty"`

	CreatedAt time.Time  `json:"createdAt"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`

	ViewCount          int  `json:"viewCount"`
	MaxViews           *int `json:"maxViews,omitempty"`
	DeleteAfterReading bool `json:"deleteAfterReading"`
}

// NoteListItem is one row of an authenticated author's note listing. Only
// retention state and server-decryptable metadata; no ciphertext, no key
// material, no destroy token.
type NoteListItem struct {
	ID          string  `json:"id"`
	Title       *string `json:"title,omitempty"`
	Category    *string `json:"category,omitempty"`
	IsProtected bool    `json:"isProtected"`

	RemainingReads     *int `json:"remainingReads,omitempty"`
	ViewCount          int  `json:"viewCount"`
	MaxViews           *int `json:"maxViews,omitempty"`
	DeleteAfterReading bool `json:"deleteAfterReading"`

	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// StatsResponse summarizes the note table for the admin surface. Counts
// only; never note content.
type StatsResponse struct {
	TotalNotes     int64 `json:"totalNotes"`
	ActiveNotes    int64 `json:"activeNotes"`
	ExpiredNotes   int64 `json:"expiredNotes"`
	ProtectedNotes int64 `json:"protectedNotes"`

	// StorageBytes is the approximate size of stored ciphertext and images.
	StorageBytes int64 `json:"storageBytes"`
}
