package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const sessionTTL = 24 * time.Hour

// RedisStore persists sessions as JSON values in Redis with a fixed TTL.
// It lets the chat survive a process restart without changing the engine.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(client *redis.Client) *RedisStore {
	if client == nil {
		panic("session: redis client cannot be nil")
	}
	return &RedisStore{client: client}
}

func sessionKey(id string) string {
	return fmt.Sprintf("chatsession:%s", id)
}

// GetOrCreate loads the session for id, creating and persisting a fresh one
// when id is empty or unknown.
func (r *RedisStore) GetOrCreate(ctx context.Context, id string) (*Session, error) {
	if id != "" {
		s, err := r.Get(ctx, id)
		if err == nil {
			return s, nil
		}
		if err != ErrSessionNotFound {
			return nil, err
		}
	}

	s := New(uuid.NewString())
	if err := r.Put(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Get retrieves an existing session by id.
func (r *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	data, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("session: failed to load %s: %w", id, err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("session: failed to decode %s: %w", id, err)
	}
	return &s, nil
}

// Put writes the session back and refreshes its TTL.
func (r *RedisStore) Put(ctx context.Context, s *Session) error {
	s.UpdatedAt = time.Now().UTC()
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("session: failed to marshal %s: %w", s.ID, err)
	}
	if err := r.client.Set(ctx, sessionKey(s.ID), data, sessionTTL).Err(); err != nil {
		return fmt.Errorf("session: failed to persist %s: %w", s.ID, err)
	}
	return nil
}

var _ Store = (*RedisStore)(nil)
