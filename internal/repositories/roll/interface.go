package roll

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/goldhollow/trophytable/internal/repositories/roll Repository

import (
	"context"

	"github.com/goldhollow/trophytable/internal/models"
)

// Repository is the per-session roll log: an append-only record of
// resolution events plus the live feed other participants watch. Records are
// immutable once appended; the only way they go away is a whole-log purge.
type Repository interface {
	// AppendRoll persists a roll and announces it to subscribers
	AppendRoll(ctx context.Context, input *AppendRollInput) error

	// GetRecent retrieves the most recent rolls, newest first
	GetRecent(ctx context.Context, input *GetRecentInput) (*GetRecentOutput, error)

	// Purge deletes every roll of a session and announces the purge
	Purge(ctx context.Context, input *PurgeInput) error

	// Subscribe opens a live feed of roll and purge events for a session.
	// The subscriber also receives its own writes back through the feed.
	Subscribe(ctx context.Context, input *SubscribeInput) (*Subscription, error)
}

// EventType tags entries on the live feed.
type EventType string

const (
	// EventTypeRoll announces a newly appended roll
	EventTypeRoll EventType = "roll"

	// EventTypePurge announces that the whole log was cleared
	EventTypePurge EventType = "purge"
)

// Event is one entry on the live feed.
type Event struct {
	// Type says what happened
	Type EventType `json:"type"`

	// Roll is the appended roll, nil for purge events
	Roll *models.Roll `json:"roll,omitempty"`
}
