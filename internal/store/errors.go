package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNoteNotFound is returned when a query targets a note id that does
	// not exist in the database. Destroyed notes are physically deleted, so
	// a consumed-then-swept note also surfaces as not found.
	ErrNoteNotFound = errors.New("note was not found")

	// ErrNoteExpired is returned when a note exists but its time bound has
	// passed. The row lingers until the background sweep reclaims it.
	ErrNoteExpired = errors.New("note has expired")

	// ErrNoteConsumed is returned when a note exists but its read allowance
	// is exhausted (or it was a delete-after-reading note already served).
	ErrNoteConsumed = errors.New("note has been consumed")

	// ErrNoteNotSaved is returned when an INSERT completes without error but
	// the number of affected rows is zero, indicating that no note was
	// actually persisted.
	ErrNoteNotSaved = errors.New("note was not saved")

	// ErrNoteIDCollision is returned when an INSERT fails because the
	// generated note id already exists. Practically unreachable with UUIDv7
	// identifiers, but surfaced distinctly so the service can retry with a
	// fresh id.
	ErrNoteIDCollision = errors.New("note id already exists")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan note row")
)
