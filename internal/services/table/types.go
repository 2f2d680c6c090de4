package table

import (
	"github.com/goldhollow/trophytable/internal/models"
	characterRepo "github.com/goldhollow/trophytable/internal/repositories/character"
)

type CreateSessionInput struct {
	// Title is the human-chosen session name; the id is derived from it
	Title string

	// AsGuardian records the creator's intent to facilitate
	AsGuardian bool

	// CreatorName is the creator's player name when not facilitating
	CreatorName string

	// ClientToken identifies the creating client for preference storage.
	// Empty means nothing is remembered.
	ClientToken string
}

type CreateSessionOutput struct {
	Session *models.Session
}

type LandingInput struct {
	// ClientToken may be empty for a first-time client
	ClientToken string
}

type LandingOutput struct {
	// Tagline is a randomly picked ambient phrase
	Tagline string

	// Recent is the client's capped recent-sessions list
	Recent []*models.RecentSession
}

type PrefillInput struct {
	SessionID   string
	ClientToken string
}

type PrefillOutput struct {
	Session *models.Session

	// Characters already present in the session, keyed by player name
	Characters map[string]*models.Character

	// Identity is the client's remembered identity, nil if none
	Identity *models.Identity
}

type JoinInput struct {
	SessionID string

	// PlayerName is required unless joining as the Guardián
	PlayerName string

	AsGuardian  bool
	ClientToken string
}

type JoinOutput struct {
	Session     *models.Session
	Participant models.Participant

	// Party is the current character roster, keyed by player name
	Party map[string]*models.Character
}

type RollInput struct {
	SessionID  string
	PlayerName string
	RollType   models.RollType

	// LightCount and DarkCount are the user-configured pool sizes. Whether
	// they apply depends on the roll type.
	LightCount int
	DarkCount  int
}

type RollOutput struct {
	Roll *models.Roll
}

type PushInput struct {
	SessionID  string
	PlayerName string
}

type PushOutput struct {
	Roll *models.Roll
}

type HistoryInput struct {
	SessionID string
}

type HistoryOutput struct {
	// Rolls are ordered by id descending
	Rolls []*models.Roll
}

type PurgeHistoryInput struct {
	SessionID string

	// Confirmed must be true; purging is irreversible
	Confirmed bool
}

type PurgeHistoryOutput struct {
}

type WatchRollsInput struct {
	SessionID string
}

type UpdateCharacterInput struct {
	SessionID  string
	PlayerName string
	Update     *characterRepo.Update
}

type UpdateCharacterOutput struct {
	Character *models.Character
}

type ImportCharacterInput struct {
	SessionID  string
	PlayerName string
	Character  *models.Character

	// Confirmed must be true; the import overwrites the whole sheet
	Confirmed bool
}

type ImportCharacterOutput struct {
	Character *models.Character
}

type GetCharacterInput struct {
	SessionID  string
	PlayerName string
}

type GetCharacterOutput struct {
	Character *models.Character
}

type GetPartyInput struct {
	SessionID string
}

type GetPartyOutput struct {
	// Characters is keyed by player name
	Characters map[string]*models.Character
}
