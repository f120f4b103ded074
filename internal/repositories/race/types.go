package race

import (
	"time"

	"github.com/cluetrail/cluetrail/internal/models"
)

// CreateRaceInput contains parameters for creating a race row
type CreateRaceInput struct {
	Race *models.Race
}

// GetActiveRaceInput contains parameters for retrieving an active race
type GetActiveRaceInput struct {
	Email   string
	EventID string
}

// UpdateProgressInput contains parameters for advancing a race's clue index.
// The update only applies while the stored index still equals ExpectedClue.
type UpdateProgressInput struct {
	Email        string
	EventID      string
	ExpectedClue int
	CurrentClue  int
}

// FinishRaceInput contains parameters for finalizing a race
type FinishRaceInput struct {
	Email     string
	EventID   string
	EndTime   time.Time
	TimeTaken time.Duration
}

// GetCompletedRacesInput contains parameters for listing finished races
type GetCompletedRacesInput struct {
	EventID string
}

// GetInProgressRacesInput contains parameters for listing unfinished races
type GetInProgressRacesInput struct {
	EventID string
}

// GetLeaderboardInput contains parameters for computing the leaderboard
type GetLeaderboardInput struct {
	EventID string
}
