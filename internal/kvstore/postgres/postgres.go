// Package postgres реализует kvstore.Storage поверх таблицы kv_store в PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Storage инкапсулирует соединение с PostgreSQL.
type Storage struct {
	DB *sql.DB
}

// New открывает соединение и проверяет его. Схему создают миграции.
func New(ctx context.Context, connectionString string) (*Storage, error) {
	const op = "kvstore.postgres.New"

	db, err := sql.Open("pgx", connectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{DB: db}, nil
}

// Get возвращает значение по ключу.
func (s *Storage) Get(ctx context.Context, key string) (string, bool, error) {
	const op = "kvstore.postgres.Get"

	var value string
	err := s.DB.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%s: %w", op, err)
	}
	return value, true, nil
}

// Set записывает значение (upsert).
func (s *Storage) Set(ctx context.Context, key, value string) error {
	const op = "kvstore.postgres.Set"

	query := `INSERT INTO kv_store (key, value, updated_at)
			  VALUES ($1, $2, NOW())
			  ON CONFLICT (key) DO UPDATE
			  SET value = EXCLUDED.value, updated_at = NOW();`
	if _, err := s.DB.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// SetIfAbsent вставляет значение, только если ключа нет.
func (s *Storage) SetIfAbsent(ctx context.Context, key, value string) (bool, error) {
	const op = "kvstore.postgres.SetIfAbsent"

	query := `INSERT INTO kv_store (key, value)
			  VALUES ($1, $2)
			  ON CONFLICT (key) DO NOTHING;`
	res, err := s.DB.ExecContext(ctx, query, key, value)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return n == 1, nil
}

// Remove удаляет ключ.
func (s *Storage) Remove(ctx context.Context, key string) error {
	const op = "kvstore.postgres.Remove"
	if _, err := s.DB.ExecContext(ctx, `DELETE FROM kv_store WHERE key = $1`, key); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Close закрывает соединение.
func (s *Storage) Close() error {
	return s.DB.Close()
}
