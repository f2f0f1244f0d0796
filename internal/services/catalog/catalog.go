// Package catalog содержит бизнес-логику витрины: коллекции проектов и мобильных
// приложений, однократное заполнение демо-данными и сводку для админки.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/portfolio-showcase/internal/events"
	"github.com/magabrotheeeer/portfolio-showcase/internal/kvstore"
	"github.com/magabrotheeeer/portfolio-showcase/internal/metrics"
	"github.com/magabrotheeeer/portfolio-showcase/internal/models"
)

// Ключи коллекций в хранилище.
const (
	ProjectsKey = "portfolio_projects_v2"
	AppsKey     = "portfolio_apps"
)

// DefaultReadLatency — задержка чтения коллекций по умолчанию.
const DefaultReadLatency = 300 * time.Millisecond

// ErrNotFound возвращается Get для неизвестного id.
var ErrNotFound = errors.New("record not found")

// Options настраивает каталог.
type Options struct {
	ReadLatency time.Duration
	Seed        bool
	Publisher   events.Publisher
	Metrics     *metrics.Metrics
	Now         func() time.Time
	NewID       func() string
}

// DefaultOptions возвращает настройки по умолчанию: задержка 300ms и демо-данные.
func DefaultOptions() Options {
	return Options{
		ReadLatency: DefaultReadLatency,
		Seed:        true,
	}
}

// Catalog объединяет коллекции витрины.
type Catalog struct {
	Projects *Projects
	Apps     *Apps
	log      *slog.Logger
}

// New создаёт каталог поверх storage и, если включено, заполняет пустые
// коллекции демо-данными. Существующие данные не трогаются.
func New(ctx context.Context, storage kvstore.Storage, log *slog.Logger, opts Options) (*Catalog, error) {
	const op = "catalog.New"
	if opts.Publisher == nil {
		opts.Publisher = events.Noop{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	c := &Catalog{
		Projects: newProjects(storage, log, opts),
		Apps:     newApps(storage, log, opts),
		log:      log,
	}

	if opts.Seed {
		now := opts.Now()
		stored, err := c.Projects.col.Seed(ctx, seedProjects(now))
		if errors.Is(err, kvstore.ErrNotImplemented) {
			// сервис поднимается, операции отвечают ErrNotImplemented
			log.Warn("storage backend not implemented, demo data skipped")
			return c, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if stored {
			log.Info("seeded demo projects", slog.String("key", ProjectsKey))
		}
		stored, err = c.Apps.col.Seed(ctx, seedApps(now))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if stored {
			log.Info("seeded demo apps", slog.String("key", AppsKey))
		}
	}
	return c, nil
}

// Stats собирает сводку для панели администратора.
func (c *Catalog) Stats(ctx context.Context) (models.Stats, error) {
	const op = "catalog.Stats"
	projects, err := c.Projects.List(ctx)
	if err != nil {
		return models.Stats{}, fmt.Errorf("%s: %w", op, err)
	}
	apps, err := c.Apps.List(ctx)
	if err != nil {
		return models.Stats{}, fmt.Errorf("%s: %w", op, err)
	}

	stats := models.Stats{
		Projects: len(projects),
		Apps:     len(apps),
	}

	counts := make(map[models.Category]int)
	for i, p := range projects {
		counts[p.Category]++
		if i == 0 || p.CreatedAt > stats.LatestProjectAt {
			stats.LatestProjectAt = p.CreatedAt
			stats.LatestProjectTitle = p.Title
		}
	}
	// при равенстве побеждает категория, идущая раньше в перечне
	best := 0
	for _, cat := range models.Categories() {
		if counts[cat] > best {
			best = counts[cat]
			stats.MostFrequentCategory = cat
		}
	}
	return stats, nil
}
