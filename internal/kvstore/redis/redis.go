// Package redis реализует kvstore.Storage поверх Redis.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Storage хранит ключи коллекций в Redis с общим префиксом.
type Storage struct {
	db     *redis.Client
	prefix string
}

// New создаёт хранилище поверх уже подключённого клиента.
func New(db *redis.Client, prefix string) *Storage {
	return &Storage{
		db:     db,
		prefix: prefix,
	}
}

func (s *Storage) key(k string) string {
	return s.prefix + k
}

// Get возвращает значение по ключу.
func (s *Storage) Get(ctx context.Context, key string) (string, bool, error) {
	const op = "kvstore.redis.Get"
	val, err := s.db.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%s: %w", op, err)
	}
	return val, true, nil
}

// Set записывает значение без срока жизни.
func (s *Storage) Set(ctx context.Context, key, value string) error {
	const op = "kvstore.redis.Set"
	if err := s.db.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// SetIfAbsent записывает значение через SETNX.
func (s *Storage) SetIfAbsent(ctx context.Context, key, value string) (bool, error) {
	const op = "kvstore.redis.SetIfAbsent"
	stored, err := s.db.SetNX(ctx, s.key(key), value, 0).Result()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return stored, nil
}

// Remove удаляет ключ.
func (s *Storage) Remove(ctx context.Context, key string) error {
	const op = "kvstore.redis.Remove"
	if err := s.db.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
