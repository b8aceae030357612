package models

import "time"

// SentNote is a local ledger record of a note this client created. It holds
// the pieces needed to revisit or burn the note later: the share URL (with
// the key fragment for unprotected notes) and the destroy token the server
// handed back exactly once.
//
// The ledger lives on the sender's own machine, so storing the fragment here
// does not weaken the zero-knowledge property.
type SentNote struct {
	ID           int64     `json:"id"`
	NoteID       string    `json:"note_id"`
	URL          string    `json:"url"`
	DestroyToken string    `json:"destroy_token"`
	CreatedAt    time.Time `json:"created_at"`
}
