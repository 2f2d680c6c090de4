package prefs

import "github.com/goldhollow/trophytable/internal/models"

type SaveIdentityInput struct {
	ClientToken string
	SessionID   string
	Identity    *models.Identity
}

type GetIdentityInput struct {
	ClientToken string
	SessionID   string
}

type RememberSessionInput struct {
	ClientToken string
	Session     *models.RecentSession
}

type RecentSessionsInput struct {
	ClientToken string
}

type RecentSessionsOutput struct {
	// Sessions are newest first, at most MaxRecentSessions long
	Sessions []*models.RecentSession
}
