package store

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when the addressed record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when the database rejects a write on a
	// uniqueness or foreign key constraint.
	ErrConflict = errors.New("constraint violation")
)

// FailureFilter narrows ListFailures. Zero fields do not filter.
type FailureFilter struct {
	UnitID int64
	Active *bool
	// From and To bound FailureDate as [From, To).
	From time.Time
	To   time.Time
}

// FailureCounts splits failures by their active flag.
type FailureCounts struct {
	Active int64 `json:"ativas"`
	Closed int64 `json:"fechadas"`
	Total  int64 `json:"total"`
}
