// Package kvstoretest содержит общий набор проверок контракта kvstore.Storage,
// который прогоняется для каждой реализации хранилища.
package kvstoretest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/portfolio-showcase/internal/kvstore"
)

// Run прогоняет проверки контракта на свежем хранилище, которое возвращает newStorage.
func Run(t *testing.T, newStorage func(t *testing.T) kvstore.Storage) {
	t.Helper()
	ctx := context.Background()

	t.Run("get absent key", func(t *testing.T) {
		s := newStorage(t)
		v, found, err := s.Get(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, v)
	})

	t.Run("set then get", func(t *testing.T) {
		s := newStorage(t)
		require.NoError(t, s.Set(ctx, "k", `[{"id":"1"}]`))

		v, found, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, `[{"id":"1"}]`, v)
	})

	t.Run("set overwrites", func(t *testing.T) {
		s := newStorage(t)
		require.NoError(t, s.Set(ctx, "k", "first"))
		require.NoError(t, s.Set(ctx, "k", "second"))

		v, _, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "second", v)
	})

	t.Run("set if absent stores once", func(t *testing.T) {
		s := newStorage(t)
		stored, err := s.SetIfAbsent(ctx, "seed", "first")
		require.NoError(t, err)
		assert.True(t, stored)

		stored, err = s.SetIfAbsent(ctx, "seed", "second")
		require.NoError(t, err)
		assert.False(t, stored)

		v, _, err := s.Get(ctx, "seed")
		require.NoError(t, err)
		assert.Equal(t, "first", v)
	})

	t.Run("remove", func(t *testing.T) {
		s := newStorage(t)
		require.NoError(t, s.Set(ctx, "k", "v"))
		require.NoError(t, s.Remove(ctx, "k"))

		_, found, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.False(t, found)

		// повторное удаление не ошибка
		require.NoError(t, s.Remove(ctx, "k"))
	})

	t.Run("keys are independent", func(t *testing.T) {
		s := newStorage(t)
		require.NoError(t, s.Set(ctx, "portfolio_projects_v2", "p"))
		require.NoError(t, s.Set(ctx, "portfolio_apps", "a"))

		v, _, err := s.Get(ctx, "portfolio_projects_v2")
		require.NoError(t, err)
		assert.Equal(t, "p", v)
		v, _, err = s.Get(ctx, "portfolio_apps")
		require.NoError(t, err)
		assert.Equal(t, "a", v)
	})
}
