package character

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/goldhollow/trophytable/internal/repositories/character Repository

import (
	"context"
	"errors"

	"github.com/goldhollow/trophytable/internal/models"
)

// ErrCharacterNotFound is returned when a character record does not exist.
var ErrCharacterNotFound = errors.New("character not found")

// Repository persists per-player character sheets. Characters are created
// implicitly by the first field write and updated field-by-field with
// last-write-wins semantics; two participants editing the same field at the
// same time will stomp each other, which is the contract.
type Repository interface {
	// Upsert applies a partial field update, creating the character with
	// defaults if it does not exist yet. Returns the record after the write.
	Upsert(ctx context.Context, input *UpsertInput) (*models.Character, error)

	// Replace overwrites the whole character record (import flow)
	Replace(ctx context.Context, input *ReplaceInput) error

	// GetCharacter retrieves one character of a session
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*models.Character, error)

	// GetParty retrieves every character of a session
	GetParty(ctx context.Context, input *GetPartyInput) (*GetPartyOutput, error)
}
