package models

import (
	"time"
)

// Session is the ephemeral, cookie-scoped mirror of a race's progress.
// It caches race state for a single active browser; the race row stays
// authoritative for leaderboard queries.
type Session struct {
	// ID is the opaque token delivered via the session cookie
	ID string

	// Name is the team name
	Name string

	// Email identifies the team (stored lower-cased)
	Email string

	// EventID is the event the session belongs to
	EventID string

	// StartTime mirrors the race's start time
	StartTime time.Time

	// CurrentClue mirrors the race's redeemed-clue count
	CurrentClue int

	// CreatedAt is when the session was created
	CreatedAt time.Time

	// UpdatedAt is when the session was last written
	UpdatedAt time.Time
}
