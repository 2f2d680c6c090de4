package roll

import "github.com/goldhollow/trophytable/internal/models"

type AppendRollInput struct {
	SessionID string
	Roll      *models.Roll
}

type GetRecentInput struct {
	SessionID string

	// Limit caps how many rolls come back. Non-positive means the default
	// history window.
	Limit int
}

type GetRecentOutput struct {
	// Rolls are ordered by id descending (newest first)
	Rolls []*models.Roll
}

type PurgeInput struct {
	SessionID string
}

type SubscribeInput struct {
	SessionID string
}
