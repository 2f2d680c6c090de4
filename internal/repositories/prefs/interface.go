package prefs

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/goldhollow/trophytable/internal/repositories/prefs Repository

import (
	"context"
	"errors"

	"github.com/goldhollow/trophytable/internal/models"
)

// ErrIdentityNotFound is returned when a client has no remembered identity
// for a session.
var ErrIdentityNotFound = errors.New("identity not found")

// MaxRecentSessions caps the remembered recent-sessions list.
const MaxRecentSessions = 3

// Repository stores per-client join preferences: which identity a client
// last used in a session, and which sessions it created recently. Everything
// here exists only to pre-fill forms and is never authoritative.
type Repository interface {
	// SaveIdentity remembers the identity a client joined a session with
	SaveIdentity(ctx context.Context, input *SaveIdentityInput) error

	// GetIdentity retrieves a client's remembered identity for a session
	GetIdentity(ctx context.Context, input *GetIdentityInput) (*models.Identity, error)

	// RememberSession pushes a session onto the client's recent list,
	// keeping at most MaxRecentSessions entries, newest first
	RememberSession(ctx context.Context, input *RememberSessionInput) error

	// RecentSessions retrieves the client's recent list
	RecentSessions(ctx context.Context, input *RecentSessionsInput) (*RecentSessionsOutput, error)
}
