package prefs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/goldhollow/trophytable/internal/models"
)

const prefsKeyFormat = "prefs:%s"

// Config holds configuration for the Redis prefs repository.
type Config struct {
	RedisClient *redis.Client
}

// clientPrefs is the stored shape: one JSON blob per client token.
type clientPrefs struct {
	Identities map[string]*models.Identity `json:"identities,omitempty"`
	Recent     []*models.RecentSession     `json:"recent,omitempty"`
}

// redisRepository implements Repository on one record per client token.
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a Redis-backed prefs repository.
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

func prefsKey(token string) string {
	return fmt.Sprintf(prefsKeyFormat, token)
}

// SaveIdentity remembers the identity a client joined a session with.
func (r *redisRepository) SaveIdentity(ctx context.Context, input *SaveIdentityInput) error {
	if input == nil || input.Identity == nil {
		return errors.New("input and identity cannot be nil")
	}
	if input.ClientToken == "" || input.SessionID == "" {
		return errors.New("client token and session ID cannot be empty")
	}

	prefs, err := r.load(ctx, input.ClientToken)
	if err != nil {
		return err
	}

	if prefs.Identities == nil {
		prefs.Identities = make(map[string]*models.Identity)
	}
	prefs.Identities[input.SessionID] = input.Identity

	return r.save(ctx, input.ClientToken, prefs)
}

// GetIdentity retrieves a client's remembered identity for a session.
func (r *redisRepository) GetIdentity(ctx context.Context, input *GetIdentityInput) (*models.Identity, error) {
	if input == nil || input.ClientToken == "" || input.SessionID == "" {
		return nil, errors.New("input, client token and session ID cannot be empty")
	}

	prefs, err := r.load(ctx, input.ClientToken)
	if err != nil {
		return nil, err
	}

	identity, ok := prefs.Identities[input.SessionID]
	if !ok {
		return nil, ErrIdentityNotFound
	}
	return identity, nil
}

// RememberSession pushes a session onto the recent list, dropping any
// duplicate of the same id and trimming to MaxRecentSessions.
func (r *redisRepository) RememberSession(ctx context.Context, input *RememberSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}
	if input.ClientToken == "" || input.Session.ID == "" {
		return errors.New("client token and session ID cannot be empty")
	}

	prefs, err := r.load(ctx, input.ClientToken)
	if err != nil {
		return err
	}

	recent := []*models.RecentSession{input.Session}
	for _, s := range prefs.Recent {
		if s.ID == input.Session.ID {
			continue
		}
		recent = append(recent, s)
	}
	if len(recent) > MaxRecentSessions {
		recent = recent[:MaxRecentSessions]
	}
	prefs.Recent = recent

	return r.save(ctx, input.ClientToken, prefs)
}

// RecentSessions retrieves the client's recent list, newest first.
func (r *redisRepository) RecentSessions(ctx context.Context, input *RecentSessionsInput) (*RecentSessionsOutput, error) {
	if input == nil || input.ClientToken == "" {
		return nil, errors.New("input and client token cannot be empty")
	}

	prefs, err := r.load(ctx, input.ClientToken)
	if err != nil {
		return nil, err
	}

	return &RecentSessionsOutput{Sessions: prefs.Recent}, nil
}

func (r *redisRepository) load(ctx context.Context, token string) (*clientPrefs, error) {
	prefsJSON, err := r.client.Get(ctx, prefsKey(token)).Result()
	if err != nil {
		if err == redis.Nil {
			return &clientPrefs{}, nil
		}
		return nil, fmt.Errorf("failed to get prefs: %w", err)
	}

	var prefs clientPrefs
	if err := json.Unmarshal([]byte(prefsJSON), &prefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal prefs: %w", err)
	}
	return &prefs, nil
}

func (r *redisRepository) save(ctx context.Context, token string, prefs *clientPrefs) error {
	prefsJSON, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to marshal prefs: %w", err)
	}

	if err := r.client.Set(ctx, prefsKey(token), prefsJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save prefs: %w", err)
	}
	return nil
}
