package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_consumeNote_SQLContainsParts(t *testing.T) {
	// The consume statement must pin the pre-update state, decrement and
	// return the content in the same round trip; these are the load-bearing
	// fragments.
	parts := []string{
		"WITH target_note AS",
		"consumed AS",
		"UPDATE notes",
		"remaining_reads = remaining_reads - 1",
		"view_count      = view_count + 1",
		"consumed_at IS NULL",
		"expires_at IS NULL OR expires_at > now()",
		"remaining_reads IS NULL OR remaining_reads > 0",
		"RETURNING id",
		"LEFT JOIN consumed ON true",
	}

	for _, part := range parts {
		assert.True(t, strings.Contains(consumeNote, part),
			"consume query should contain %q", part)
	}
}

func Test_consumeNote_ReturnsContentWithDecrement(t *testing.T) {
	// The update's RETURNING list must carry the content columns so a
	// successful consume never needs a follow-up read that a concurrent
	// delete could invalidate.
	for _, col := range []string{"ciphertext", "iv", "encrypted_key", "key_iv", "salt"} {
		assert.Contains(t, consumeNote, "consumed."+col)
	}
}

func Test_consumeNote_SingleReadDominatesCounter(t *testing.T) {
	// delete_after_reading terminates the note on the first read even when a
	// larger read allowance is present.
	assert.Contains(t, consumeNote, "WHEN delete_after_reading OR remaining_reads = 1 THEN now()")
}

func Test_rateLimitUpsert_SQLContainsParts(t *testing.T) {
	parts := []string{
		"INSERT INTO rate_limits",
		"ON CONFLICT (hashed_ip) DO UPDATE",
		"make_interval(secs => $2)",
		"RETURNING count",
	}

	for _, part := range parts {
		assert.True(t, strings.Contains(rateLimitUpsert, part),
			"rate limit upsert should contain %q", part)
	}
}

func Test_buildDeleteExpiredQuery(t *testing.T) {
	now := time.Now()

	query, args, err := buildDeleteExpiredQuery(now)
	require.NoError(t, err)

	assert.Contains(t, query, "DELETE FROM notes")
	assert.Contains(t, query, "expires_at IS NOT NULL AND expires_at <= $1")
	assert.Contains(t, query, "consumed_at IS NOT NULL")

	require.Len(t, args, 1)
	assert.Equal(t, now, args[0])
}

func Test_buildDeleteViewExhaustedQuery(t *testing.T) {
	query, args, err := buildDeleteViewExhaustedQuery()
	require.NoError(t, err)

	assert.Contains(t, query, "DELETE FROM notes")
	assert.Contains(t, query, "max_views IS NOT NULL AND view_count >= max_views")
	assert.Empty(t, args)
}

func Test_buildStatsQuery(t *testing.T) {
	now := time.Now()

	query, args, err := buildStatsQuery(now)
	require.NoError(t, err)

	// Check that all aggregate columns are present.
	expectedColumns := []string{
		"total_notes", "active_notes", "expired_notes",
		"protected_notes", "storage_bytes",
	}
	for _, col := range expectedColumns {
		assert.True(t, strings.Contains(query, col),
			"stats query should contain column %q", col)
	}

	assert.Contains(t, query, "FROM notes")

	// Check placeholder format ($1, $2 for PostgreSQL).
	assert.Contains(t, query, "$1")
	assert.Contains(t, query, "$2")

	// Both placeholders carry the same instant.
	require.Len(t, args, 2)
	assert.Equal(t, now, args[0])
	assert.Equal(t, now, args[1])
}

func Test_buildStatsQuery_NeverTouchesContent(t *testing.T) {
	query, _, err := buildStatsQuery(time.Now())
	require.NoError(t, err)

	// Stats aggregate lengths only; selecting ciphertext or key material
	// into the admin surface would be a defect.
	assert.NotContains(t, query, "SELECT ciphertext")
	assert.NotContains(t, query, "encrypted_key")
	assert.NotContains(t, query, "destroy_token")
}

func Test_buildListByUserQuery(t *testing.T) {
	query, args, err := buildListByUserQuery(42)
	require.NoError(t, err)

	assert.Contains(t, query, "FROM notes")
	assert.Contains(t, query, "user_id = $1")
	assert.Contains(t, query, "ORDER BY created_at DESC")
	assert.Equal(t, []any{int64(42)}, args)

	// a listing never carries content or secrets
	assert.NotContains(t, query, "ciphertext")
	assert.NotContains(t, query, "encrypted_key")
	assert.NotContains(t, query, "destroy_token")
}
