// Package collection хранит упорядоченный набор записей одного типа
// как один JSON-массив под одним ключом kvstore.Storage.
//
// Запись всей коллекции выполняется по схеме «прочитать, изменить, записать».
// Внутри процесса изменения одной коллекции сериализуются мьютексом; несколько
// процессов над общим хранилищем по-прежнему перезаписывают друг друга
// (побеждает последняя запись), версионирования нет.
package collection

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/portfolio-showcase/internal/kvstore"
)

// ErrCorrupt возвращается, если сохранённое значение не является JSON-массивом записей.
var ErrCorrupt = errors.New("collection data is corrupt")

// Config описывает коллекцию.
type Config[T any] struct {
	// Key — ключ хранилища.
	Key string
	// Latency — искусственная задержка перед чтением в List и Get.
	Latency time.Duration
	// ID возвращает идентификатор записи.
	ID func(T) string
	// Stamp проставляет сгенерированные id и время создания (мс).
	Stamp func(rec *T, id string, createdAt int64)
	// Now и NewID подменяются в тестах; по умолчанию time.Now и UUID v4.
	Now   func() time.Time
	NewID func() string
}

// Collection — коллекция записей типа T поверх хранилища.
type Collection[T any] struct {
	storage kvstore.Storage
	cfg     Config[T]
	mu      sync.Mutex
}

// New создаёт коллекцию.
func New[T any](storage kvstore.Storage, cfg Config[T]) *Collection[T] {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.NewID == nil {
		cfg.NewID = uuid.NewString
	}
	return &Collection[T]{
		storage: storage,
		cfg:     cfg,
	}
}

// Key возвращает ключ хранилища коллекции.
func (c *Collection[T]) Key() string {
	return c.cfg.Key
}

// List возвращает все записи в порядке хранения после искусственной задержки.
// Отсутствующий ключ означает пустую коллекцию.
func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	const op = "collection.List"
	if err := c.wait(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	items, err := c.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}

// Get ищет запись по id линейным проходом по List.
func (c *Collection[T]) Get(ctx context.Context, id string) (T, bool, error) {
	const op = "collection.Get"
	var zero T
	items, err := c.List(ctx)
	if err != nil {
		return zero, false, fmt.Errorf("%s: %w", op, err)
	}
	for _, it := range items {
		if c.cfg.ID(it) == id {
			return it, true, nil
		}
	}
	return zero, false, nil
}

// Add назначает записи новый id и время создания, добавляет её в начало
// коллекции и возвращает сохранённую запись.
func (c *Collection[T]) Add(ctx context.Context, rec T) (T, error) {
	const op = "collection.Add"
	c.cfg.Stamp(&rec, c.cfg.NewID(), c.cfg.Now().UnixMilli())

	err := c.Mutate(ctx, func(items []T) ([]T, bool, error) {
		return append([]T{rec}, items...), true, nil
	})
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%s: %w", op, err)
	}
	return rec, nil
}

// Update применяет apply к записи с данным id и сохраняет коллекцию.
// Для неизвестного id коллекция не меняется и возвращается false без ошибки.
func (c *Collection[T]) Update(ctx context.Context, id string, apply func(*T)) (bool, error) {
	const op = "collection.Update"
	found := false
	err := c.Mutate(ctx, func(items []T) ([]T, bool, error) {
		for i := range items {
			if c.cfg.ID(items[i]) == id {
				apply(&items[i])
				found = true
				return items, true, nil
			}
		}
		return items, false, nil
	})
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return found, nil
}

// Delete удаляет запись с данным id. Повторное удаление ничего не меняет.
func (c *Collection[T]) Delete(ctx context.Context, id string) (bool, error) {
	const op = "collection.Delete"
	found := false
	err := c.Mutate(ctx, func(items []T) ([]T, bool, error) {
		kept := make([]T, 0, len(items))
		for _, it := range items {
			if c.cfg.ID(it) == id {
				found = true
				continue
			}
			kept = append(kept, it)
		}
		return kept, found, nil
	})
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return found, nil
}

// Mutate читает коллекцию, передаёт её fn и, если fn вернула save=true,
// записывает результат. Вызовы Mutate одной коллекции не пересекаются.
func (c *Collection[T]) Mutate(ctx context.Context, fn func(items []T) (updated []T, save bool, err error)) error {
	const op = "collection.Mutate"
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	updated, save, err := fn(items)
	if err != nil {
		return err
	}
	if !save {
		return nil
	}
	if err := c.save(ctx, updated); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Seed записывает items, только если ключа коллекции ещё нет.
func (c *Collection[T]) Seed(ctx context.Context, items []T) (bool, error) {
	const op = "collection.Seed"
	data, err := encode(items)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	stored, err := c.storage.SetIfAbsent(ctx, c.cfg.Key, data)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return stored, nil
}

func (c *Collection[T]) wait(ctx context.Context) error {
	if c.cfg.Latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(c.cfg.Latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (c *Collection[T]) load(ctx context.Context) ([]T, error) {
	raw, found, err := c.storage.Get(ctx, c.cfg.Key)
	if err != nil {
		return nil, err
	}
	items := []T{}
	if !found || raw == "" {
		return items, nil
	}
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (c *Collection[T]) save(ctx context.Context, items []T) error {
	data, err := encode(items)
	if err != nil {
		return err
	}
	return c.storage.Set(ctx, c.cfg.Key, data)
}

func encode[T any](items []T) (string, error) {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
