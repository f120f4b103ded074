package hunt

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/cluetrail/cluetrail/internal/services/hunt Service

import "context"

// Service defines the interface for scavenger-hunt operations
type Service interface {
	// StartRace begins or resumes a team's race and opens a fresh session
	StartRace(ctx context.Context, input *StartRaceInput) (*StartRaceOutput, error)

	// RedeemCode evaluates a scanned clue code against the session's progress
	RedeemCode(ctx context.Context, input *RedeemCodeInput) (*RedeemCodeOutput, error)

	// GetLeaderboard returns the ranked finished teams and the teams still racing
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)

	// GetEvent looks up a configured event
	GetEvent(ctx context.Context, input *GetEventInput) (*GetEventOutput, error)
}
