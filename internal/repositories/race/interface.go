package race

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/cluetrail/cluetrail/internal/repositories/race Repository

import (
	"context"
	"errors"

	"github.com/cluetrail/cluetrail/internal/models"
)

var (
	// ErrRaceNotFound is returned when no active race exists for the lookup
	ErrRaceNotFound = errors.New("race not found")

	// ErrRaceFinished is returned when finishing a race that already has an end time
	ErrRaceFinished = errors.New("race already finished")

	// ErrProgressConflict is returned when a conditional progress update loses
	// to a concurrent write (the stored clue index no longer matches)
	ErrProgressConflict = errors.New("race progress conflict")
)

// Repository defines the interface for race-row persistence
type Repository interface {
	// CreateRace persists a new race row
	CreateRace(ctx context.Context, input *CreateRaceInput) error

	// GetActiveRace retrieves the unfinished race for an email and event
	GetActiveRace(ctx context.Context, input *GetActiveRaceInput) (*models.Race, error)

	// UpdateProgress advances a race's clue index, conditional on the
	// expected current value
	UpdateProgress(ctx context.Context, input *UpdateProgressInput) error

	// FinishRace records the end time and elapsed time of an active race
	FinishRace(ctx context.Context, input *FinishRaceInput) error

	// GetCompletedRaces retrieves finished races for an event, fastest first
	GetCompletedRaces(ctx context.Context, input *GetCompletedRacesInput) ([]*models.Race, error)

	// GetInProgressRaces retrieves unfinished races for an event
	GetInProgressRaces(ctx context.Context, input *GetInProgressRacesInput) ([]*models.Race, error)

	// GetLeaderboard retrieves the best finished time per team name, fastest first
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) ([]*models.LeaderboardEntry, error)
}
