package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/magabrotheeeer/portfolio-showcase/internal/collection"
	"github.com/magabrotheeeer/portfolio-showcase/internal/events"
	"github.com/magabrotheeeer/portfolio-showcase/internal/lib/sl"
	"github.com/magabrotheeeer/portfolio-showcase/internal/metrics"
)

// store — общие операции коллекции каталога: метрики, события, логирование.
type store[T any] struct {
	col       *collection.Collection[T]
	name      string
	id        func(T) string
	createdAt func(T) int64
	normalize func(*T)
	publisher events.Publisher
	metrics   *metrics.Metrics
	log       *slog.Logger
}

// List возвращает все записи, новые первыми.
func (s *store[T]) List(ctx context.Context) ([]T, error) {
	items, err := s.col.List(ctx)
	s.metrics.ObserveCatalog(s.name, "list", err)
	if err != nil {
		return nil, fmt.Errorf("catalog.%s.List: %w", s.name, err)
	}
	return items, nil
}

// Latest возвращает n самых новых записей по времени создания; n <= 0 означает все.
func (s *store[T]) Latest(ctx context.Context, n int) ([]T, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(items, func(a, b T) int {
		ca, cb := s.createdAt(a), s.createdAt(b)
		switch {
		case ca > cb:
			return -1
		case ca < cb:
			return 1
		default:
			return 0
		}
	})
	if n > 0 && n < len(items) {
		items = items[:n]
	}
	return items, nil
}

// Get возвращает запись по id или ErrNotFound.
func (s *store[T]) Get(ctx context.Context, id string) (T, error) {
	rec, found, err := s.col.Get(ctx, id)
	s.metrics.ObserveCatalog(s.name, "get", err)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("catalog.%s.Get: %w", s.name, err)
	}
	if !found {
		var zero T
		return zero, ErrNotFound
	}
	return rec, nil
}

// Add сохраняет новую запись; id и время создания из rec игнорируются.
func (s *store[T]) Add(ctx context.Context, rec T) (T, error) {
	if s.normalize != nil {
		s.normalize(&rec)
	}
	saved, err := s.col.Add(ctx, rec)
	s.metrics.ObserveCatalog(s.name, "add", err)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("catalog.%s.Add: %w", s.name, err)
	}
	id := s.id(saved)
	s.log.Info("record created", slog.String("collection", s.name), slog.String("id", id))
	s.publish(ctx, events.ActionCreated, id)
	return saved, nil
}

// Delete удаляет запись; неизвестный id не считается ошибкой.
func (s *store[T]) Delete(ctx context.Context, id string) (bool, error) {
	found, err := s.col.Delete(ctx, id)
	s.metrics.ObserveCatalog(s.name, "delete", err)
	if err != nil {
		return false, fmt.Errorf("catalog.%s.Delete: %w", s.name, err)
	}
	if found {
		s.log.Info("record deleted", slog.String("collection", s.name), slog.String("id", id))
		s.publish(ctx, events.ActionDeleted, id)
	}
	return found, nil
}

func (s *store[T]) update(ctx context.Context, id string, apply func(*T)) (bool, error) {
	found, err := s.col.Update(ctx, id, func(rec *T) {
		apply(rec)
		if s.normalize != nil {
			s.normalize(rec)
		}
	})
	s.metrics.ObserveCatalog(s.name, "update", err)
	if err != nil {
		return false, fmt.Errorf("catalog.%s.Update: %w", s.name, err)
	}
	if found {
		s.log.Info("record updated", slog.String("collection", s.name), slog.String("id", id))
		s.publish(ctx, events.ActionUpdated, id)
	}
	return found, nil
}

func (s *store[T]) publish(ctx context.Context, action, id string) {
	if err := s.publisher.Publish(ctx, events.New(s.name, action, id)); err != nil {
		s.log.Warn("failed to publish catalog event",
			slog.String("collection", s.name),
			slog.String("action", action),
			slog.String("id", id),
			sl.Err(err),
		)
	}
}
