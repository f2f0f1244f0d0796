// Package firestore реализует kvstore.Storage поверх Cloud Firestore через Firebase Admin SDK.
//
// Каждый ключ — документ <collection>/<key> с единственным строковым полем value.
package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/magabrotheeeer/portfolio-showcase/internal/config"
)

const valueField = "value"

// Storage хранит ключи документами одной коллекции Firestore.
type Storage struct {
	client     *firestore.Client
	collection string
}

// New инициализирует приложение Firebase и клиент Firestore.
func New(ctx context.Context, cfg config.Firebase, collection string) (*Storage, error) {
	const op = "kvstore.firestore.New"
	if cfg.CredentialsPath == "" {
		return nil, fmt.Errorf("%s: FIREBASE_CREDENTIALS_PATH is required", op)
	}

	opt := option.WithCredentialsFile(cfg.CredentialsPath)
	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:     cfg.ProjectID,
		StorageBucket: cfg.StorageBucket,
	}, opt)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to initialize Firebase app: %w", op, err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get Firestore client: %w", op, err)
	}

	return NewWithClient(client, collection), nil
}

// NewWithClient создаёт хранилище поверх готового клиента (эмулятор, тесты).
func NewWithClient(client *firestore.Client, collection string) *Storage {
	if collection == "" {
		collection = "kv"
	}
	return &Storage{
		client:     client,
		collection: collection,
	}
}

func (s *Storage) doc(key string) *firestore.DocumentRef {
	return s.client.Collection(s.collection).Doc(key)
}

// Get читает поле value документа.
func (s *Storage) Get(ctx context.Context, key string) (string, bool, error) {
	const op = "kvstore.firestore.Get"
	snap, err := s.doc(key).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%s: %w", op, err)
	}

	raw, err := snap.DataAt(valueField)
	if err != nil {
		return "", false, fmt.Errorf("%s: %w", op, err)
	}
	value, ok := raw.(string)
	if !ok {
		return "", false, fmt.Errorf("%s: field %q of %s is %T, want string", op, valueField, key, raw)
	}
	return value, true, nil
}

// Set перезаписывает документ.
func (s *Storage) Set(ctx context.Context, key, value string) error {
	const op = "kvstore.firestore.Set"
	if _, err := s.doc(key).Set(ctx, map[string]any{valueField: value}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// SetIfAbsent создаёт документ; AlreadyExists означает, что ключ уже есть.
func (s *Storage) SetIfAbsent(ctx context.Context, key, value string) (bool, error) {
	const op = "kvstore.firestore.SetIfAbsent"
	_, err := s.doc(key).Create(ctx, map[string]any{valueField: value})
	if status.Code(err) == codes.AlreadyExists {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return true, nil
}

// Remove удаляет документ. Удаление отсутствующего документа не ошибка.
func (s *Storage) Remove(ctx context.Context, key string) error {
	const op = "kvstore.firestore.Remove"
	if _, err := s.doc(key).Delete(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Close закрывает клиент Firestore.
func (s *Storage) Close() error {
	return s.client.Close()
}
