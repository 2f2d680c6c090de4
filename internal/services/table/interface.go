package table

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/goldhollow/trophytable/internal/services/table Service

import (
	"context"

	rollRepo "github.com/goldhollow/trophytable/internal/repositories/roll"
)

// Service is the session shell: everything a participant can do at the
// shared table, from naming a session to pushing their luck on a roll.
type Service interface {
	// CreateSession names a new session and remembers it for its creator
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)

	// Landing returns what the landing screen needs: a tagline and the
	// client's recent sessions
	Landing(ctx context.Context, input *LandingInput) (*LandingOutput, error)

	// Prefill returns what the join screen needs for one session: its
	// title, its characters and the client's remembered identity
	Prefill(ctx context.Context, input *PrefillInput) (*PrefillOutput, error)

	// Join enters a session as a named player or as the Guardián
	Join(ctx context.Context, input *JoinInput) (*JoinOutput, error)

	// Roll assembles a dice pool, rolls it, classifies it and persists the
	// result as one immutable record
	Roll(ctx context.Context, input *RollInput) (*RollOutput, error)

	// Push escalates the most recent roll with one extra dark die
	Push(ctx context.Context, input *PushInput) (*PushOutput, error)

	// History returns the most recent rolls, newest first
	History(ctx context.Context, input *HistoryInput) (*HistoryOutput, error)

	// PurgeHistory irreversibly clears a session's roll log
	PurgeHistory(ctx context.Context, input *PurgeHistoryInput) (*PurgeHistoryOutput, error)

	// WatchRolls opens a live feed of the session's roll events
	WatchRolls(ctx context.Context, input *WatchRollsInput) (*rollRepo.Subscription, error)

	// UpdateCharacter applies a partial field write to a character sheet
	UpdateCharacter(ctx context.Context, input *UpdateCharacterInput) (*UpdateCharacterOutput, error)

	// ImportCharacter overwrites a sheet with an externally edited payload
	ImportCharacter(ctx context.Context, input *ImportCharacterInput) (*ImportCharacterOutput, error)

	// GetCharacter reads one character sheet
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)

	// GetParty reads every character sheet of a session
	GetParty(ctx context.Context, input *GetPartyInput) (*GetPartyOutput, error)
}
