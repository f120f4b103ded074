package hunt

import (
	"time"

	"github.com/cluetrail/cluetrail/internal/common/clock"
	"github.com/cluetrail/cluetrail/internal/common/token"
	"github.com/cluetrail/cluetrail/internal/models"
	raceRepo "github.com/cluetrail/cluetrail/internal/repositories/race"
	sessionRepo "github.com/cluetrail/cluetrail/internal/repositories/session"
)

// Decision is the outcome of evaluating one scanned code
type Decision string

const (
	// DecisionAdvanced indicates the expected code was scanned and progress moved forward
	DecisionAdvanced Decision = "advanced"

	// DecisionAlreadyRedeemed indicates a code behind the team's position was re-scanned
	DecisionAlreadyRedeemed Decision = "already_redeemed"

	// DecisionOutOfOrder indicates a code ahead of the team's position was scanned
	DecisionOutOfOrder Decision = "out_of_order"

	// DecisionFinished indicates the final code was scanned and the race is now recorded
	DecisionFinished Decision = "finished"

	// DecisionAlreadyFinished indicates the final code was re-scanned after completion
	DecisionAlreadyFinished Decision = "already_finished"

	// DecisionInvalidCode indicates the scanned string is not part of the event
	DecisionInvalidCode Decision = "invalid_code"
)

// Config holds configuration for the hunt service
type Config struct {
	// Events is the immutable catalog, keyed by event ID
	Events map[string]*models.Event

	// Repository dependencies
	RaceRepo    raceRepo.Repository
	SessionRepo sessionRepo.Repository

	// Clock provides the time source; defaults to the system clock
	Clock clock.Clock

	// TokenGenerator provides session and race identifiers; defaults to UUIDs
	TokenGenerator token.Generator
}

// StartRaceInput contains parameters for starting or resuming a race
type StartRaceInput struct {
	EventID string
	Name    string
	Email   string
}

// StartRaceOutput contains the result of starting a race
type StartRaceOutput struct {
	// SessionID is the token to deliver via the session cookie
	SessionID string

	// RedirectCode is the code of the first unredeemed clue
	RedirectCode string

	// Resumed indicates an existing race was picked up rather than created
	Resumed bool
}

// RedeemCodeInput contains parameters for evaluating a scanned code
type RedeemCodeInput struct {
	EventID   string
	SessionID string
	Code      string
}

// RedeemCodeOutput contains the result of evaluating a scanned code
type RedeemCodeOutput struct {
	// Decision is the progress-engine outcome
	Decision Decision

	// Clue is the unlocked clue text; empty for out-of-order and invalid scans
	Clue string

	// ClueNumber is the 1-based position of the scanned code
	ClueNumber int

	// TotalClues is the number of clues in the event
	TotalClues int

	// TimeTaken is the elapsed race time, set only when Decision is Finished
	TimeTaken time.Duration

	// Name and Email identify the team, for rendering and highlighting
	Name  string
	Email string
}

// GetLeaderboardInput contains parameters for reading the leaderboard
type GetLeaderboardInput struct {
	EventID string
}

// GetLeaderboardOutput contains the ranked finished teams and the
// unordered in-progress races
type GetLeaderboardOutput struct {
	Completed  []*models.LeaderboardEntry
	InProgress []*models.Race
}

// GetEventInput contains parameters for looking up an event
type GetEventInput struct {
	EventID string
}

// GetEventOutput contains the result of an event lookup
type GetEventOutput struct {
	Event *models.Event
}
