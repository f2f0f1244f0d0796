package catalog

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/portfolio-showcase/internal/events"
	"github.com/magabrotheeeer/portfolio-showcase/internal/kvstore"
	"github.com/magabrotheeeer/portfolio-showcase/internal/lib/sl"
	"github.com/magabrotheeeer/portfolio-showcase/internal/metrics"
	"github.com/magabrotheeeer/portfolio-showcase/internal/models"
)

type PublisherMock struct{ mock.Mock }

func (m *PublisherMock) Publish(ctx context.Context, e events.Event) error {
	return m.Called(ctx, e).Error(0)
}

var fixedNow = time.UnixMilli(1_735_689_600_000)

func newTestCatalog(t *testing.T, storage kvstore.Storage, seed bool) *Catalog {
	t.Helper()
	var seq int
	c, err := New(context.Background(), storage, sl.NewDiscardLogger(), Options{
		Seed: seed,
		Now:  func() time.Time { return fixedNow },
		NewID: func() string {
			seq++
			return fmt.Sprintf("id-%d", seq)
		},
	})
	require.NoError(t, err)
	return c
}

func sampleProject() models.Project {
	return models.Project{
		Title:            "X",
		Category:         models.CategoryGym,
		ShortDescription: "short",
		FullDescription:  "full",
		ImageURL:         "https://example.com/x.png",
		Gallery:          []string{"a", "b"},
		Technologies:     []string{"Go"},
		Features:         []string{"Fast"},
		DemoURL:          "https://example.com",
	}
}

func sampleApp() models.MobileApp {
	return models.MobileApp{
		Name:        "App",
		Tagline:     "tag",
		Description: "desc",
		IconURL:     "https://example.com/icon.png",
		Screenshots: []string{"s1"},
		Rating:      4.2,
		Downloads:   "10k+",
		Size:        "15 MB",
		Category:    "Tools",
		DownloadURL: "https://example.com/dl",
	}
}

func TestProjects_AddThenGet(t *testing.T) {
	ctx := context.Background()
	c := newTestCatalog(t, kvstore.NewMemory(), false)

	in := sampleProject()
	in.ID = "client-id"
	in.CreatedAt = 42

	saved, err := c.Projects.Add(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "id-1", saved.ID)
	assert.Equal(t, fixedNow.UnixMilli(), saved.CreatedAt)

	got, err := c.Projects.Get(ctx, saved.ID)
	require.NoError(t, err)

	want := sampleProject()
	want.ID = saved.ID
	want.CreatedAt = saved.CreatedAt
	assert.Equal(t, want, got)
}

func TestApps_AddThenGet(t *testing.T) {
	ctx := context.Background()
	c := newTestCatalog(t, kvstore.NewMemory(), false)

	saved, err := c.Apps.Add(ctx, sampleApp())
	require.NoError(t, err)

	got, err := c.Apps.Get(ctx, saved.ID)
	require.NoError(t, err)

	want := sampleApp()
	want.ID = saved.ID
	want.CreatedAt = saved.CreatedAt
	assert.Equal(t, want, got)
}

func TestProjects_AddIsNewestFirst(t *testing.T) {
	ctx := context.Background()
	c := newTestCatalog(t, kvstore.NewMemory(), true)

	saved, err := c.Projects.Add(ctx, sampleProject())
	require.NoError(t, err)

	list, err := c.Projects.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 5)
	assert.Equal(t, saved, list[0])
}

func TestProjects_UpdateKeepsOtherFields(t *testing.T) {
	ctx := context.Background()
	c := newTestCatalog(t, kvstore.NewMemory(), true)

	before, err := c.Projects.Get(ctx, "2")
	require.NoError(t, err)

	title := "Y"
	found, err := c.Projects.Update(ctx, "2", models.ProjectPatch{Title: &title})
	require.NoError(t, err)
	assert.True(t, found)

	after, err := c.Projects.Get(ctx, "2")
	require.NoError(t, err)

	want := before
	want.Title = "Y"
	assert.Equal(t, want, after)
}

func TestApps_UpdateKeepsOtherFields(t *testing.T) {
	ctx := context.Background()
	c := newTestCatalog(t, kvstore.NewMemory(), false)

	saved, err := c.Apps.Add(ctx, sampleApp())
	require.NoError(t, err)

	rating := 5.0
	found, err := c.Apps.Update(ctx, saved.ID, models.AppPatch{Rating: &rating})
	require.NoError(t, err)
	assert.True(t, found)

	got, err := c.Apps.Get(ctx, saved.ID)
	require.NoError(t, err)
	want := saved
	want.Rating = 5.0
	assert.Equal(t, want, got)
}

func TestCatalog_UnknownIDLeavesCollectionUnchanged(t *testing.T) {
	ctx := context.Background()
	storage := kvstore.NewMemory()
	c := newTestCatalog(t, storage, true)

	before, _, err := storage.Get(ctx, ProjectsKey)
	require.NoError(t, err)

	title := "nope"
	found, err := c.Projects.Update(ctx, "missing", models.ProjectPatch{Title: &title})
	require.NoError(t, err)
	assert.False(t, found)

	found, err = c.Projects.Delete(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	after, _, err := storage.Get(ctx, ProjectsKey)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	found, err = c.Apps.Delete(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestProjects_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	c := newTestCatalog(t, kvstore.NewMemory(), true)

	found, err := c.Projects.Delete(ctx, "3")
	require.NoError(t, err)
	assert.True(t, found)

	_, err = c.Projects.Get(ctx, "3")
	assert.ErrorIs(t, err, ErrNotFound)

	list, err := c.Projects.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 3)

	found, err = c.Projects.Delete(ctx, "3")
	require.NoError(t, err)
	assert.False(t, found)

	again, err := c.Projects.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, list, again)
}

func TestNew_SeedsOnce(t *testing.T) {
	ctx := context.Background()
	storage := kvstore.NewMemory()

	c := newTestCatalog(t, storage, true)
	projects, err := c.Projects.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, seedProjects(fixedNow), projects)

	apps, err := c.Apps.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, seedApps(fixedNow), apps)

	_, err = c.Projects.Delete(ctx, "1")
	require.NoError(t, err)

	again := newTestCatalog(t, storage, true)
	projects, err = again.Projects.List(ctx)
	require.NoError(t, err)
	assert.Len(t, projects, 3)
}

func TestSeed_CreatedAtSpacing(t *testing.T) {
	projects := seedProjects(fixedNow)
	require.Len(t, projects, 4)
	for i, p := range projects {
		assert.Equal(t, fixedNow.UnixMilli()-int64(i)*100_000, p.CreatedAt)
		assert.True(t, p.Category.Valid())
	}
}

func TestNew_WithoutSeedLeavesStoreEmpty(t *testing.T) {
	ctx := context.Background()
	storage := kvstore.NewMemory()
	newTestCatalog(t, storage, false)

	_, found, err := storage.Get(ctx, ProjectsKey)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCatalog_ExampleScenario(t *testing.T) {
	ctx := context.Background()
	c := newTestCatalog(t, kvstore.NewMemory(), false)

	saved, err := c.Projects.Add(ctx, models.Project{Title: "X", Category: models.CategoryGym})
	require.NoError(t, err)

	list, err := c.Projects.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	title := "Y"
	_, err = c.Projects.Update(ctx, saved.ID, models.ProjectPatch{Title: &title})
	require.NoError(t, err)

	got, err := c.Projects.Get(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Y", got.Title)

	_, err = c.Projects.Delete(ctx, saved.ID)
	require.NoError(t, err)

	list, err = c.Projects.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestProjects_AddNormalizesNilSlices(t *testing.T) {
	ctx := context.Background()
	c := newTestCatalog(t, kvstore.NewMemory(), false)

	saved, err := c.Projects.Add(ctx, models.Project{Title: "X", Category: models.CategoryOther})
	require.NoError(t, err)
	assert.NotNil(t, saved.Gallery)
	assert.NotNil(t, saved.Technologies)
	assert.NotNil(t, saved.Features)
}

func TestProjects_ListByCategory(t *testing.T) {
	ctx := context.Background()
	c := newTestCatalog(t, kvstore.NewMemory(), true)

	tests := []struct {
		name     string
		category models.Category
		wantIDs  []string
	}{
		{name: "All", category: models.CategoryAll, wantIDs: []string{"1", "2", "3", "4"}},
		{name: "пустая", category: "", wantIDs: []string{"1", "2", "3", "4"}},
		{name: "Gym", category: models.CategoryGym, wantIDs: []string{"1", "2"}},
		{name: "Retail", category: models.CategoryRetail, wantIDs: []string{"3"}},
		{name: "Hotel", category: models.CategoryHotel, wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := c.Projects.ListByCategory(ctx, tt.category)
			require.NoError(t, err)
			ids := make([]string, 0, len(list))
			for _, p := range list {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestProjects_ListByCategory_NewestFirst(t *testing.T) {
	ctx := context.Background()
	storage := kvstore.NewMemory()
	require.NoError(t, storage.Set(ctx, ProjectsKey,
		`[{"id":"old","title":"Old","category":"Gym","createdAt":100},`+
			`{"id":"hotel","title":"Hotel","category":"Hotel","createdAt":200},`+
			`{"id":"new","title":"New","category":"Gym","createdAt":300}]`))
	c := newTestCatalog(t, storage, false)

	gym, err := c.Projects.ListByCategory(ctx, models.CategoryGym)
	require.NoError(t, err)
	require.Len(t, gym, 2)
	assert.Equal(t, "new", gym[0].ID)
	assert.Equal(t, "old", gym[1].ID)

	all, err := c.Projects.ListByCategory(ctx, models.CategoryAll)
	require.NoError(t, err)
	latest, err := c.Projects.Latest(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, latest, all)
}

func TestLatest(t *testing.T) {
	ctx := context.Background()
	c := newTestCatalog(t, kvstore.NewMemory(), true)

	latest, err := c.Projects.Latest(ctx, 2)
	require.NoError(t, err)
	require.Len(t, latest, 2)
	assert.Equal(t, "1", latest[0].ID)
	assert.Equal(t, "2", latest[1].ID)

	all, err := c.Apps.Latest(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	many, err := c.Apps.Latest(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, many, 2)
}

func TestCatalog_Stats(t *testing.T) {
	ctx := context.Background()

	t.Run("демо-данные", func(t *testing.T) {
		c := newTestCatalog(t, kvstore.NewMemory(), true)
		stats, err := c.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, models.Stats{
			Projects:             4,
			Apps:                 2,
			MostFrequentCategory: models.CategoryGym,
			LatestProjectTitle:   "House of Gains Gym",
			LatestProjectAt:      fixedNow.UnixMilli(),
		}, stats)
	})

	t.Run("пустой каталог", func(t *testing.T) {
		c := newTestCatalog(t, kvstore.NewMemory(), false)
		stats, err := c.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, models.Stats{}, stats)
	})

	t.Run("ничья по категориям", func(t *testing.T) {
		c := newTestCatalog(t, kvstore.NewMemory(), false)
		_, err := c.Projects.Add(ctx, models.Project{Title: "a", Category: models.CategoryOther})
		require.NoError(t, err)
		_, err = c.Projects.Add(ctx, models.Project{Title: "b", Category: models.CategoryHotel})
		require.NoError(t, err)

		stats, err := c.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, models.CategoryHotel, stats.MostFrequentCategory)
	})
}

func TestCatalog_PublishesEvents(t *testing.T) {
	ctx := context.Background()
	pub := new(PublisherMock)
	var seq int
	c, err := New(ctx, kvstore.NewMemory(), sl.NewDiscardLogger(), Options{
		Publisher: pub,
		NewID: func() string {
			seq++
			return fmt.Sprintf("id-%d", seq)
		},
	})
	require.NoError(t, err)

	matches := func(collection, action, id string) any {
		return mock.MatchedBy(func(e events.Event) bool {
			return e.Collection == collection && e.Action == action && e.ID == id
		})
	}
	pub.On("Publish", mock.Anything, matches("project", events.ActionCreated, "id-1")).Return(nil).Once()
	pub.On("Publish", mock.Anything, matches("project", events.ActionUpdated, "id-1")).Return(nil).Once()
	pub.On("Publish", mock.Anything, matches("project", events.ActionDeleted, "id-1")).Return(nil).Once()
	pub.On("Publish", mock.Anything, matches("app", events.ActionCreated, "id-2")).
		Return(errors.New("broker down")).Once()

	_, err = c.Projects.Add(ctx, sampleProject())
	require.NoError(t, err)
	title := "Z"
	_, err = c.Projects.Update(ctx, "id-1", models.ProjectPatch{Title: &title})
	require.NoError(t, err)
	_, err = c.Projects.Delete(ctx, "id-1")
	require.NoError(t, err)

	// ошибка публикации не ломает запись
	_, err = c.Apps.Add(ctx, sampleApp())
	require.NoError(t, err)

	// удаление неизвестного id событий не порождает
	_, err = c.Projects.Delete(ctx, "id-1")
	require.NoError(t, err)

	pub.AssertExpectations(t)
}

func TestCatalog_NotImplementedBackend(t *testing.T) {
	ctx := context.Background()

	// заполнение пропускается, каталог создаётся
	c, err := New(ctx, kvstore.Unimplemented{}, sl.NewDiscardLogger(), Options{Seed: true})
	require.NoError(t, err)

	_, err = c.Projects.List(ctx)
	assert.ErrorIs(t, err, kvstore.ErrNotImplemented)
	_, err = c.Apps.Get(ctx, "x")
	assert.ErrorIs(t, err, kvstore.ErrNotImplemented)
	_, err = c.Projects.Add(ctx, sampleProject())
	assert.ErrorIs(t, err, kvstore.ErrNotImplemented)
	_, err = c.Stats(ctx)
	assert.ErrorIs(t, err, kvstore.ErrNotImplemented)
}

func TestCatalog_ReadLatency(t *testing.T) {
	ctx := context.Background()
	c, err := New(ctx, kvstore.NewMemory(), sl.NewDiscardLogger(), Options{ReadLatency: 40 * time.Millisecond})
	require.NoError(t, err)

	start := time.Now()
	_, err = c.Apps.List(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = c.Projects.List(canceled)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCatalog_Metrics(t *testing.T) {
	ctx := context.Background()
	m := metrics.New(prometheus.NewRegistry())
	c, err := New(ctx, kvstore.NewMemory(), sl.NewDiscardLogger(), Options{Metrics: m})
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		_, _ = c.Projects.List(ctx)
		_, _ = c.Apps.Add(ctx, sampleApp())
	})
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, 300*time.Millisecond, opts.ReadLatency)
	assert.True(t, opts.Seed)
}
