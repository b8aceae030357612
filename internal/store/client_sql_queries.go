// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	createSentNotesTable = `
		CREATE TABLE IF NOT EXISTS sent_notes (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			note_id       TEXT NOT NULL UNIQUE,
			url           TEXT NOT NULL,
			destroy_token TEXT NOT NULL,
			created_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);`

	recordSentNote = `
		INSERT INTO sent_notes (
			note_id,
			url,
			destroy_token,
			created_at
		) VALUES ($1, $2, $3, $4);`

	listSentNotes = `
		SELECT
			id,
			note_id,
			url,
			destroy_token,
			created_at
		FROM sent_notes
		ORDER BY created_at DESC, id DESC;`

	findSentNote = `
		SELECT
			id,
			note_id,
			url,
			destroy_token,
			created_at
		FROM sent_notes
		WHERE note_id = $1;`

	forgetSentNote = `
		DELETE FROM sent_notes
		WHERE note_id = $1;`
)
