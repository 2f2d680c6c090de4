package roll

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/goldhollow/trophytable/internal/models"
)

const (
	// DefaultHistoryLimit is the size of the live history window
	DefaultHistoryLimit = 20

	rollLogKeyFormat   = "session:%s:rolls"
	eventChanKeyFormat = "session:%s:events"
)

// Config holds configuration for the Redis roll repository.
type Config struct {
	RedisClient *redis.Client
}

// redisRepository implements Repository on a Redis sorted set scored by roll
// id, with a pub/sub channel per session for fan-out.
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a Redis-backed roll repository.
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

func rollLogKey(sessionID string) string {
	return fmt.Sprintf(rollLogKeyFormat, sessionID)
}

func eventChannel(sessionID string) string {
	return fmt.Sprintf(eventChanKeyFormat, sessionID)
}

// AppendRoll persists a roll and publishes it on the session's event channel.
func (r *redisRepository) AppendRoll(ctx context.Context, input *AppendRollInput) error {
	if input == nil || input.Roll == nil {
		return errors.New("input and roll cannot be nil")
	}
	if input.SessionID == "" {
		return errors.New("session ID cannot be empty")
	}

	rollJSON, err := json.Marshal(input.Roll)
	if err != nil {
		return fmt.Errorf("failed to marshal roll: %w", err)
	}

	err = r.client.ZAdd(ctx, rollLogKey(input.SessionID), redis.Z{
		Score:  float64(input.Roll.ID),
		Member: rollJSON,
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to append roll: %w", err)
	}

	return r.publish(ctx, input.SessionID, &Event{
		Type: EventTypeRoll,
		Roll: input.Roll,
	})
}

// GetRecent retrieves the newest rolls, id-descending.
func (r *redisRepository) GetRecent(ctx context.Context, input *GetRecentInput) (*GetRecentOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	members, err := r.client.ZRevRange(ctx, rollLogKey(input.SessionID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get recent rolls: %w", err)
	}

	rolls := make([]*models.Roll, 0, len(members))
	for _, member := range members {
		var roll models.Roll
		if err := json.Unmarshal([]byte(member), &roll); err != nil {
			return nil, fmt.Errorf("failed to unmarshal roll: %w", err)
		}
		rolls = append(rolls, &roll)
	}

	return &GetRecentOutput{Rolls: rolls}, nil
}

// Purge deletes the whole roll log and announces it.
func (r *redisRepository) Purge(ctx context.Context, input *PurgeInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	if err := r.client.Del(ctx, rollLogKey(input.SessionID)).Err(); err != nil {
		return fmt.Errorf("failed to purge rolls: %w", err)
	}

	return r.publish(ctx, input.SessionID, &Event{Type: EventTypePurge})
}

// Subscribe opens a live feed over the session's pub/sub channel.
func (r *redisRepository) Subscribe(ctx context.Context, input *SubscribeInput) (*Subscription, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	pubsub := r.client.Subscribe(ctx, eventChannel(input.SessionID))

	// Force the subscription to be established before returning, so a
	// caller's subsequent write is guaranteed to come back on the feed.
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to session events: %w", err)
	}

	sub := &Subscription{
		pubsub: pubsub,
		events: make(chan Event),
	}
	go sub.pump()

	return sub, nil
}

func (r *redisRepository) publish(ctx context.Context, sessionID string, event *Event) error {
	eventJSON, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := r.client.Publish(ctx, eventChannel(sessionID), eventJSON).Err(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	return nil
}

// Subscription is one open live feed. Close it when the watcher goes away.
type Subscription struct {
	pubsub *redis.PubSub
	events chan Event
}

// Events returns the feed channel. It closes when the subscription does.
func (s *Subscription) Events() <-chan Event {
	return s.events
}

// Close tears the feed down.
func (s *Subscription) Close() error {
	return s.pubsub.Close()
}

func (s *Subscription) pump() {
	defer close(s.events)

	for msg := range s.pubsub.Channel() {
		var event Event
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			// A malformed payload on the channel is not actionable here;
			// drop it rather than kill the feed.
			continue
		}
		s.events <- event
	}
}
