package models

import (
	"time"
)

// Race is the durable record of one team's progress through one event.
// A team may race the same event more than once; at most one race per
// (email, event) is unfinished at a time, and the leaderboard keeps the
// best finished attempt per team name.
type Race struct {
	// ID is the unique identifier for the race
	ID string

	// Name is the team name entered at the start
	Name string

	// Email identifies the team across attempts (stored lower-cased)
	Email string

	// EventID is the event this race belongs to
	EventID string

	// StartTime is when the team started the race
	StartTime time.Time

	// EndTime is when the team finished, nil while in progress
	EndTime *time.Time

	// TimeTaken is the elapsed time of a finished race
	TimeTaken time.Duration

	// CurrentClue is the number of clues redeemed so far
	CurrentClue int
}

// Finished reports whether the race has been completed
func (r *Race) Finished() bool {
	return r.EndTime != nil
}
