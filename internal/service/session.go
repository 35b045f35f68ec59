package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/pageza/gilded-spoon/backend/internal/game"
)

// ErrSessionNotFound is returned for unknown or expired sessions
var ErrSessionNotFound = errors.New("session not found")

type memoryEntry struct {
	state   game.State
	expires time.Time
}

// MemorySessionStore keeps sessions in process memory
type MemorySessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[uuid.UUID]memoryEntry
}

var _ SessionStore = (*MemorySessionStore)(nil)

// NewMemorySessionStore creates a store whose sessions expire ttl after their last save
func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	return &MemorySessionStore{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[uuid.UUID]memoryEntry),
	}
}

func (s *MemorySessionStore) Create(ctx context.Context, state game.State) (uuid.UUID, error) {
	id := uuid.New()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweep()
	s.sessions[id] = memoryEntry{state: state, expires: s.now().Add(s.ttl)}
	return id, nil
}

func (s *MemorySessionStore) Get(ctx context.Context, id uuid.UUID) (game.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.sessions[id]
	if !ok || s.now().After(entry.expires) {
		return game.State{}, ErrSessionNotFound
	}
	return entry.state, nil
}

func (s *MemorySessionStore) Save(ctx context.Context, id uuid.UUID, state game.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.sessions[id]
	if !ok || s.now().After(entry.expires) {
		return ErrSessionNotFound
	}
	s.sessions[id] = memoryEntry{state: state, expires: s.now().Add(s.ttl)}
	return nil
}

func (s *MemorySessionStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// sweep drops expired sessions. Callers hold mu.
func (s *MemorySessionStore) sweep() {
	now := s.now()
	for id, entry := range s.sessions {
		if now.After(entry.expires) {
			delete(s.sessions, id)
		}
	}
}

// RedisSessionStore keeps sessions as JSON under session:<id>
type RedisSessionStore struct {
	redis *redis.Client
	ttl   time.Duration
}

var _ SessionStore = (*RedisSessionStore)(nil)

// NewRedisSessionStore creates a store whose keys expire ttl after their last save
func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{redis: client, ttl: ttl}
}

func sessionKey(id uuid.UUID) string {
	return fmt.Sprintf("session:%s", id)
}

func (s *RedisSessionStore) Create(ctx context.Context, state game.State) (uuid.UUID, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to encode session: %w", err)
	}
	id := uuid.New()
	if err := s.redis.Set(ctx, sessionKey(id), data, s.ttl).Err(); err != nil {
		return uuid.Nil, fmt.Errorf("failed to store session: %w", err)
	}
	return id, nil
}

func (s *RedisSessionStore) Get(ctx context.Context, id uuid.UUID) (game.State, error) {
	data, err := s.redis.Get(ctx, sessionKey(id)).Bytes()
	if err == redis.Nil {
		return game.State{}, ErrSessionNotFound
	}
	if err != nil {
		return game.State{}, fmt.Errorf("failed to load session: %w", err)
	}

	var state game.State
	if err := json.Unmarshal(data, &state); err != nil {
		return game.State{}, fmt.Errorf("failed to decode session: %w", err)
	}
	return state, nil
}

// Save overwrites an existing session. It will not resurrect an expired one.
func (s *RedisSessionStore) Save(ctx context.Context, id uuid.UUID, state game.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	ok, err := s.redis.SetXX(ctx, sessionKey(id), data, s.ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	if !ok {
		return ErrSessionNotFound
	}
	return nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.redis.Del(ctx, sessionKey(id)).Err()
}
