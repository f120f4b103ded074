package models

import (
	"time"
)

// LeaderboardEntry is a derived ranking row: the best finished time for
// one team name within one event. Entries are never stored; they are
// recomputed from race rows on every read.
type LeaderboardEntry struct {
	// Name is the team name the entry is grouped by
	Name string

	// Email is the email of the team's best finished race
	Email string

	// BestTime is the minimum elapsed time among the team's finished races
	BestTime time.Duration
}
