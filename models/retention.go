package models

import "time"

// RetentionKind enumerates the destruction triggers a note can carry.
type RetentionKind int

const (
	// RetentionUnlimited means the note has no read-count bound.
	// It may still expire by time.
	RetentionUnlimited RetentionKind = iota

	// RetentionMaxReads destroys the note once N successful reads occurred.
	RetentionMaxReads

	// RetentionSingleRead destroys the note unconditionally after the first
	// successful read (deleteAfterReading).
	RetentionSingleRead
)

// RetentionPolicy is the explicit model of a note's destruction rules,
// replacing scattered nullable-field checks. A note is destroyed on the
// first satisfied condition: time expiry or read exhaustion.
//
// MaxViews is deliberately absent: it is an advisory display cap preserved
// on the wire and reclaimed by the background sweep, not a consumption gate.
type RetentionPolicy struct {
	Kind RetentionKind

	// Reads is the allowed read count for RetentionMaxReads, otherwise zero.
	Reads int

	// ExpiresAt is the optional time bound, combinable with any Kind.
	ExpiresAt *time.Time
}

// RetentionOf derives the policy from a persisted note record.
// DeleteAfterReading dominates the read counter: a note carrying both is a
// single-read note. Reads always holds the reads still allowed, so the same
// derivation classifies a record before and after a consumption.
func RetentionOf(n Note) RetentionPolicy {
	p := RetentionPolicy{Kind: RetentionUnlimited, ExpiresAt: n.ExpiresAt}

	switch {
	case n.DeleteAfterReading:
		p.Kind = RetentionSingleRead
		p.Reads = 1 - n.ViewCount
	case n.RemainingReads != nil:
		p.Kind = RetentionMaxReads
		p.Reads = *n.RemainingReads
	}

	return p
}

// Expired reports whether the time bound is satisfied at the given instant.
// The bound itself is the first unreadable instant, matching the storage
// guard "expires_at > now".
func (p RetentionPolicy) Expired(now time.Time) bool {
	return p.ExpiresAt != nil && !p.ExpiresAt.After(now)
}

// Exhausted reports whether the read bound is satisfied, i.e. no further
// reads may be served.
func (p RetentionPolicy) Exhausted() bool {
	switch p.Kind {
	case RetentionMaxReads, RetentionSingleRead:
		return p.Reads <= 0
	default:
		return false
	}
}

// Terminal reports whether any destruction condition is satisfied.
func (p RetentionPolicy) Terminal(now time.Time) bool {
	return p.Expired(now) || p.Exhausted()
}
