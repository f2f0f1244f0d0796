package catalog

import (
	"context"
	"log/slog"

	"github.com/magabrotheeeer/portfolio-showcase/internal/collection"
	"github.com/magabrotheeeer/portfolio-showcase/internal/kvstore"
	"github.com/magabrotheeeer/portfolio-showcase/internal/models"
)

// Projects — коллекция проектов портфолио.
type Projects struct {
	*store[models.Project]
}

func newProjects(storage kvstore.Storage, log *slog.Logger, opts Options) *Projects {
	col := collection.New(storage, collection.Config[models.Project]{
		Key:     ProjectsKey,
		Latency: opts.ReadLatency,
		ID:      func(p models.Project) string { return p.ID },
		Stamp: func(p *models.Project, id string, createdAt int64) {
			p.ID = id
			p.CreatedAt = createdAt
		},
		Now:   opts.Now,
		NewID: opts.NewID,
	})
	return &Projects{
		store: &store[models.Project]{
			col:       col,
			name:      "project",
			id:        func(p models.Project) string { return p.ID },
			createdAt: func(p models.Project) int64 { return p.CreatedAt },
			normalize: normalizeProject,
			publisher: opts.Publisher,
			metrics:   opts.Metrics,
			log:       log.With(slog.String("collection", ProjectsKey)),
		},
	}
}

// ListByCategory возвращает проекты категории, новые первыми по времени создания;
// пустая категория и All означают все.
func (p *Projects) ListByCategory(ctx context.Context, category models.Category) ([]models.Project, error) {
	items, err := p.Latest(ctx, 0)
	if err != nil {
		return nil, err
	}
	if category == "" || category == models.CategoryAll {
		return items, nil
	}
	filtered := make([]models.Project, 0, len(items))
	for _, it := range items {
		if it.Category == category {
			filtered = append(filtered, it)
		}
	}
	return filtered, nil
}

// Update накладывает patch на проект. Для неизвестного id возвращает false без ошибки.
func (p *Projects) Update(ctx context.Context, id string, patch models.ProjectPatch) (bool, error) {
	return p.update(ctx, id, patch.Apply)
}

func normalizeProject(p *models.Project) {
	if p.Gallery == nil {
		p.Gallery = []string{}
	}
	if p.Technologies == nil {
		p.Technologies = []string{}
	}
	if p.Features == nil {
		p.Features = []string{}
	}
}
