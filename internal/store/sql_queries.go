// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	createNote = `INSERT INTO notes (
			id,
			ciphertext,
			iv,
			is_protected,
			encrypted_key,
			key_iv,
			salt,
			title_encrypted,
			author_name_encrypted,
			author_email_encrypted,
			category_encrypted,
			images,
			remaining_reads,
			max_views,
			delete_after_reading,
			expires_at,
			destroy_token,
			user_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING created_at;`

	getNote = `SELECT
			id,
			ciphertext,
			iv,
			is_protected,
			encrypted_key,
			key_iv,
			salt,
			title_encrypted,
			author_name_encrypted,
			author_email_encrypted,
			category_encrypted,
			images,
			remaining_reads,
			view_count,
			max_views,
			delete_after_reading,
			expires_at,
			consumed_at,
			destroy_token,
			user_id,
			created_at
		FROM notes
		WHERE id = $1;`

	// consumeNote performs the retention check, the counter updates and the
	// content read in one statement. The target_note CTE pins the row's
	// pre-update state; the consumed CTE updates it only when every retention
	// guard passes and returns the full post-update row, so the content
	// travels with the decrement that paid for it and no concurrent delete
	// can land between the two. The final LEFT JOIN always yields a row when
	// the note exists, so the caller can tell "not found" from "found but not
	// readable" and classify the latter from the pinned state.
	consumeNote = `WITH target_note AS (
			SELECT id, expires_at, consumed_at, remaining_reads
			FROM notes
			WHERE id = $1
		), consumed AS (
			UPDATE notes
			SET remaining_reads = remaining_reads - 1,
				view_count      = view_count + 1,
				consumed_at     = CASE
					WHEN delete_after_reading OR remaining_reads = 1 THEN now()
					ELSE consumed_at
				END
			WHERE id = (SELECT id FROM target_note)
				AND consumed_at IS NULL
				AND (expires_at IS NULL OR expires_at > now())
				AND (remaining_reads IS NULL OR remaining_reads > 0)
			RETURNING id,
				ciphertext,
				iv,
				is_protected,
				encrypted_key,
				key_iv,
				salt,
				title_encrypted,
				author_name_encrypted,
				author_email_encrypted,
				category_encrypted,
				images,
				remaining_reads,
				view_count,
				max_views,
				delete_after_reading,
				expires_at,
				consumed_at,
				destroy_token,
				user_id,
				created_at
		)
		SELECT
			consumed.id,
			consumed.ciphertext,
			consumed.iv,
			consumed.is_protected,
			consumed.encrypted_key,
			consumed.key_iv,
			consumed.salt,
			consumed.title_encrypted,
			consumed.author_name_encrypted,
			consumed.author_email_encrypted,
			consumed.category_encrypted,
			consumed.images,
			consumed.remaining_reads,
			consumed.view_count,
			consumed.max_views,
			consumed.delete_after_reading,
			consumed.expires_at,
			consumed.consumed_at,
			consumed.destroy_token,
			consumed.user_id,
			consumed.created_at,
			target_note.expires_at,
			target_note.consumed_at,
			target_note.remaining_reads
		FROM target_note
		LEFT JOIN consumed ON true;`

	deleteNote = `DELETE FROM notes
		WHERE id = $1;`

	// rateLimitUpsert bumps the per-IP counter or restarts the window when
	// the stored one is older than $2 seconds, all in a single statement so
	// concurrent requests cannot double-reset.
	rateLimitUpsert = `INSERT INTO rate_limits (hashed_ip, window_start, count)
		VALUES ($1, now(), 1)
		ON CONFLICT (hashed_ip) DO UPDATE SET
			count = CASE
				WHEN rate_limits.window_start > now() - make_interval(secs => $2) THEN rate_limits.count + 1
				ELSE 1
			END,
			window_start = CASE
				WHEN rate_limits.window_start > now() - make_interval(secs => $2) THEN rate_limits.window_start
				ELSE now()
			END
		RETURNING count;`
)

// psql builds queries with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildDeleteExpiredQuery builds the sweep statement reclaiming notes whose
// time bound has passed, plus consumed rows that outlived the immediate
// delete on the read path.
func buildDeleteExpiredQuery(now time.Time) (string, []any, error) {
	return psql.Delete("notes").
		Where(sq.Or{
			sq.Expr("expires_at IS NOT NULL AND expires_at <= ?", now),
			sq.Expr("consumed_at IS NOT NULL"),
		}).
		ToSql()
}

// buildDeleteViewExhaustedQuery builds the sweep statement reclaiming notes
// whose view counter reached the advisory max-views cap.
func buildDeleteViewExhaustedQuery() (string, []any, error) {
	return psql.Delete("notes").
		Where(sq.Expr("max_views IS NOT NULL AND view_count >= max_views")).
		ToSql()
}

// buildListByUserQuery builds the owner-listing statement. Content and key
// columns are deliberately absent: a listing never needs them.
func buildListByUserQuery(userID int64) (string, []any, error) {
	return psql.Select(
		"id",
		"is_protected",
		"title_encrypted",
		"category_encrypted",
		"remaining_reads",
		"view_count",
		"max_views",
		"delete_after_reading",
		"expires_at",
		"created_at",
	).
		From("notes").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
}

// buildStatsQuery builds the aggregate used by the stats endpoint. Storage
// is approximated by the character length of ciphertext and image payloads.
func buildStatsQuery(now time.Time) (string, []any, error) {
	return psql.Select("COUNT(*) AS total_notes").
		Column(sq.Expr("COUNT(*) FILTER (WHERE consumed_at IS NULL AND (expires_at IS NULL OR expires_at > ?)) AS active_notes", now)).
		Column(sq.Expr("COUNT(*) FILTER (WHERE expires_at IS NOT NULL AND expires_at <= ?) AS expired_notes", now)).
		Column("COUNT(*) FILTER (WHERE is_protected) AS protected_notes").
		Column("COALESCE(SUM(LENGTH(ciphertext) + COALESCE(LENGTH(images), 0)), 0) AS storage_bytes").
		From("notes").
		ToSql()
}
