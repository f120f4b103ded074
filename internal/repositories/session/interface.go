package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/cluetrail/cluetrail/internal/repositories/session Repository

import (
	"context"
	"errors"

	"github.com/cluetrail/cluetrail/internal/models"
)

// ErrSessionNotFound is returned when a session is missing or has expired
var ErrSessionNotFound = errors.New("session not found")

// Repository defines the interface for session persistence. Sessions
// live under a TTL; expiry is the only lifecycle beyond explicit delete.
type Repository interface {
	// SaveSession persists a session and refreshes its TTL
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// GetSession retrieves a session by token
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)

	// DeleteSession removes a session
	DeleteSession(ctx context.Context, input *DeleteSessionInput) error
}
