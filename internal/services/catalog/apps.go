package catalog

import (
	"context"
	"log/slog"

	"github.com/magabrotheeeer/portfolio-showcase/internal/collection"
	"github.com/magabrotheeeer/portfolio-showcase/internal/kvstore"
	"github.com/magabrotheeeer/portfolio-showcase/internal/models"
)

// Apps — коллекция мобильных приложений.
type Apps struct {
	*store[models.MobileApp]
}

func newApps(storage kvstore.Storage, log *slog.Logger, opts Options) *Apps {
	col := collection.New(storage, collection.Config[models.MobileApp]{
		Key:     AppsKey,
		Latency: opts.ReadLatency,
		ID:      func(a models.MobileApp) string { return a.ID },
		Stamp: func(a *models.MobileApp, id string, createdAt int64) {
			a.ID = id
			a.CreatedAt = createdAt
		},
		Now:   opts.Now,
		NewID: opts.NewID,
	})
	return &Apps{
		store: &store[models.MobileApp]{
			col:       col,
			name:      "app",
			id:        func(a models.MobileApp) string { return a.ID },
			createdAt: func(a models.MobileApp) int64 { return a.CreatedAt },
			normalize: func(a *models.MobileApp) {
				if a.Screenshots == nil {
					a.Screenshots = []string{}
				}
			},
			publisher: opts.Publisher,
			metrics:   opts.Metrics,
			log:       log.With(slog.String("collection", AppsKey)),
		},
	}
}

// Update накладывает patch на приложение. Для неизвестного id возвращает false без ошибки.
func (a *Apps) Update(ctx context.Context, id string, patch models.AppPatch) (bool, error) {
	return a.update(ctx, id, patch.Apply)
}
