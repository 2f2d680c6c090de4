package character

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/goldhollow/trophytable/internal/models"
)

const partyKeyFormat = "session:%s:characters"

// Config holds configuration for the Redis character repository.
type Config struct {
	RedisClient *redis.Client
}

// redisRepository implements Repository on a Redis hash per session, one
// field per player name.
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a Redis-backed character repository.
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func partyKey(sessionID string) string {
	return fmt.Sprintf(partyKeyFormat, sessionID)
}

// Upsert reads the current record (or starts from defaults), applies the set
// fields and writes the merged record back. Concurrent writers race with
// last-write-wins; there is no merge strategy beyond that.
func (r *redisRepository) Upsert(ctx context.Context, input *UpsertInput) (*models.Character, error) {
	if input == nil || input.Update == nil {
		return nil, errors.New("input and update cannot be nil")
	}
	if input.SessionID == "" || input.PlayerName == "" {
		return nil, errors.New("session ID and player name cannot be empty")
	}

	char, err := r.GetCharacter(ctx, &GetCharacterInput{
		SessionID:  input.SessionID,
		PlayerName: input.PlayerName,
	})
	if err != nil {
		if !errors.Is(err, ErrCharacterNotFound) {
			return nil, err
		}
		char = models.NewCharacter(input.PlayerName)
	}

	applyUpdate(char, input.Update)
	char.ClampRuin()

	if err := r.write(ctx, input.SessionID, char); err != nil {
		return nil, err
	}
	return char, nil
}

// Replace overwrites the whole record.
func (r *redisRepository) Replace(ctx context.Context, input *ReplaceInput) error {
	if input == nil || input.Character == nil {
		return errors.New("input and character cannot be nil")
	}
	if input.SessionID == "" || input.Character.Name == "" {
		return errors.New("session ID and character name cannot be empty")
	}

	char := *input.Character
	char.ClampRuin()
	return r.write(ctx, input.SessionID, &char)
}

// GetCharacter retrieves one character of a session.
func (r *redisRepository) GetCharacter(ctx context.Context, input *GetCharacterInput) (*models.Character, error) {
	if input == nil || input.SessionID == "" || input.PlayerName == "" {
		return nil, errors.New("input, session ID and player name cannot be empty")
	}

	charJSON, err := r.client.HGet(ctx, partyKey(input.SessionID), input.PlayerName).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrCharacterNotFound
		}
		return nil, fmt.Errorf("failed to get character: %w", err)
	}

	var char models.Character
	if err := json.Unmarshal([]byte(charJSON), &char); err != nil {
		return nil, fmt.Errorf("failed to unmarshal character: %w", err)
	}
	return &char, nil
}

// GetParty retrieves every character of a session, keyed by player name.
func (r *redisRepository) GetParty(ctx context.Context, input *GetPartyInput) (*GetPartyOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	fields, err := r.client.HGetAll(ctx, partyKey(input.SessionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get party: %w", err)
	}

	characters := make(map[string]*models.Character, len(fields))
	for name, charJSON := range fields {
		var char models.Character
		if err := json.Unmarshal([]byte(charJSON), &char); err != nil {
			return nil, fmt.Errorf("failed to unmarshal character %s: %w", name, err)
		}
		characters[name] = &char
	}

	return &GetPartyOutput{Characters: characters}, nil
}

func (r *redisRepository) write(ctx context.Context, sessionID string, char *models.Character) error {
	charJSON, err := json.Marshal(char)
	if err != nil {
		return fmt.Errorf("failed to marshal character: %w", err)
	}

	if err := r.client.HSet(ctx, partyKey(sessionID), char.Name, charJSON).Err(); err != nil {
		return fmt.Errorf("failed to save character: %w", err)
	}
	return nil
}

func applyUpdate(char *models.Character, update *Update) {
	if update.RealPlayerName != nil {
		char.RealPlayerName = *update.RealPlayerName
	}
	if update.Ruin != nil {
		char.Ruin = *update.Ruin
	}
	if update.StartingRuin != nil {
		char.StartingRuin = *update.StartingRuin
	}
	if update.Gold != nil {
		char.Gold = *update.Gold
	}
	if update.Debt != nil {
		char.Debt = *update.Debt
	}
	if update.Tokens != nil {
		char.Tokens = *update.Tokens
	}
	if update.GoldReserve != nil {
		char.GoldReserve = *update.GoldReserve
	}
	if update.Occupation != nil {
		char.Occupation = *update.Occupation
	}
	if update.Background != nil {
		char.Background = *update.Background
	}
	if update.Drive != nil {
		char.Drive = *update.Drive
	}
	if update.Skills != nil {
		char.Skills = *update.Skills
	}
	if update.Rituals != nil {
		char.Rituals = *update.Rituals
	}
	if update.Backpack != nil {
		char.Backpack = *update.Backpack
	}
	if update.Weapons != nil {
		char.Weapons = *update.Weapons
	}
	if update.Armor != nil {
		char.Armor = *update.Armor
	}
	if update.FoundGear != nil {
		char.FoundGear = *update.FoundGear
	}
	if update.Conditions != nil {
		char.Conditions = *update.Conditions
	}
	if update.Notes != nil {
		char.Notes = *update.Notes
	}
	if update.PortraitURL != nil {
		char.PortraitURL = *update.PortraitURL
	}
}
