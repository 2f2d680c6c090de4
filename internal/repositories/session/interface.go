package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/goldhollow/trophytable/internal/repositories/session Repository

import (
	"context"
	"errors"

	"github.com/goldhollow/trophytable/internal/models"
)

// ErrSessionNotFound is returned when no session exists under an id.
var ErrSessionNotFound = errors.New("session not found")

// Repository persists session metadata. Sessions are never closed or
// deleted; an abandoned one just stops being read.
type Repository interface {
	// SaveSession persists a session record
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// GetSession retrieves a session by id
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)
}
