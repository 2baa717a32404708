package session

import (
	"campo-cidade/app/server/constants"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"sync"
	"time"
)

var ErrSessionNotFound = errors.New("session not found")

type Store interface {
	Load(ctx context.Context, id uuid.UUID) (State, error)
	Save(ctx context.Context, id uuid.UUID, state State) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (r *RedisStore) Load(ctx context.Context, id uuid.UUID) (State, error) {
	cacheKey := fmt.Sprintf(constants.CacheKeySession, id)
	cacheBytes, err := r.rdb.Get(ctx, cacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return State{}, ErrSessionNotFound
		}
		return State{}, fmt.Errorf("failed to get session: %w", err)
	}

	var state State
	if err := json.Unmarshal(cacheBytes, &state); err != nil {
		// 无效的缓存，清理掉
		r.rdb.Del(ctx, cacheKey)
		return State{}, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return state, nil
}

func (r *RedisStore) Save(ctx context.Context, id uuid.UUID, state State) error {
	cacheBytes, err := json.Marshal(&state)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	cacheKey := fmt.Sprintf(constants.CacheKeySession, id)
	if err := r.rdb.Set(ctx, cacheKey, cacheBytes, constants.CacheExpireSession).Err(); err != nil {
		return fmt.Errorf("failed to set session: %w", err)
	}

	return nil
}

func (r *RedisStore) Delete(ctx context.Context, id uuid.UUID) error {
	return r.rdb.Del(ctx, fmt.Sprintf(constants.CacheKeySession, id)).Err()
}

// MemoryStore 在没有配置 Redis 时使用，进程重启后会话丢失
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]memoryEntry
	now      func() time.Time
}

type memoryEntry struct {
	state   State
	expires time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[uuid.UUID]memoryEntry),
		now:      time.Now,
	}
}

func (m *MemoryStore) Load(_ context.Context, id uuid.UUID) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.sessions[id]
	if !ok {
		return State{}, ErrSessionNotFound
	}
	if m.now().After(entry.expires) {
		delete(m.sessions, id)
		return State{}, ErrSessionNotFound
	}

	return entry.state, nil
}

func (m *MemoryStore) Save(_ context.Context, id uuid.UUID, state State) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[id] = memoryEntry{
		state:   state,
		expires: m.now().Add(constants.CacheExpireSession),
	}
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, id)
	return nil
}
