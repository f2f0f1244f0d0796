// Package tokenstore хранит идентификаторы отозванных JWT-сессий до истечения их срока.
package tokenstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/magabrotheeeer/portfolio-showcase/internal/cache"
)

const keyPrefix = "revoked:"

// Memory хранит отозванные токены в памяти процесса.
type Memory struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

// NewMemory создаёт пустое хранилище отозванных токенов.
func NewMemory() *Memory {
	return &Memory{
		revoked: make(map[string]time.Time),
		now:     time.Now,
	}
}

// Revoke помечает токен отозванным на время ttl.
func (m *Memory) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for id, exp := range m.revoked {
		if !now.Before(exp) {
			delete(m.revoked, id)
		}
	}
	m.revoked[jti] = now.Add(ttl)
	return nil
}

// IsRevoked сообщает, отозван ли токен.
func (m *Memory) IsRevoked(_ context.Context, jti string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	exp, ok := m.revoked[jti]
	if !ok {
		return false, nil
	}
	if !m.now().Before(exp) {
		delete(m.revoked, jti)
		return false, nil
	}
	return true, nil
}

// Redis хранит отозванные токены в Redis с TTL.
type Redis struct {
	cache *cache.Cache
}

// NewRedis создаёт хранилище поверх подключения к Redis.
func NewRedis(c *cache.Cache) *Redis {
	return &Redis{cache: c}
}

// Revoke помечает токен отозванным на время ttl.
func (r *Redis) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	const op = "tokenstore.Redis.Revoke"
	if ttl <= 0 {
		return nil
	}
	if err := r.cache.Set(ctx, keyPrefix+jti, true, ttl); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// IsRevoked сообщает, отозван ли токен.
func (r *Redis) IsRevoked(ctx context.Context, jti string) (bool, error) {
	const op = "tokenstore.Redis.IsRevoked"
	var revoked bool
	found, err := r.cache.Get(ctx, keyPrefix+jti, &revoked)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return found && revoked, nil
}
