package repository

import (
	"context"
	"path/filepath"
	"testing"

	"interview-planner/core/constants"
	"interview-planner/core/docstore"
	"interview-planner/core/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *DocumentStore {
	t.Helper()
	backend := docstore.NewFileBackend(filepath.Join(t.TempDir(), "doc.json"))
	return NewDocumentStore(backend)
}

func TestReadKey(t *testing.T) {
	ctx := context.Background()

	t.Run("Unloadable Store Fails", func(t *testing.T) {
		store := newTestStore(t)
		_, err := store.ReadKey(ctx, constants.SessionRootKey)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrDocumentUnavailable))
	})

	t.Run("Absent Key Returns Nil Without Error", func(t *testing.T) {
		store := newTestStore(t)
		_, err := store.Initialize(ctx)
		require.NoError(t, err)

		value, err := store.ReadKey(ctx, "unrelated")
		require.NoError(t, err)
		assert.Nil(t, value)
	})

	t.Run("Present Key Returns Subtree", func(t *testing.T) {
		store := newTestStore(t)
		_, err := store.Initialize(ctx)
		require.NoError(t, err)

		value, err := store.ReadKey(ctx, constants.SessionRootKey)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{}, value)
	})
}

func TestWrite(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates Intermediates And Confirms Path", func(t *testing.T) {
		store := newTestStore(t)
		_, err := store.Initialize(ctx)
		require.NoError(t, err)

		confirmation, err := store.Write(ctx,
			[]string{constants.SessionRootKey, "days", "day_1", "date"}, "2026-09-01")
		require.NoError(t, err)
		assert.Equal(t, "interview_sessions/days/day_1/date", confirmation)

		doc, err := store.Read(ctx)
		require.NoError(t, err)
		value, ok := docstore.GetPath(doc, constants.SessionRootKey, "days", "day_1", "date")
		require.True(t, ok)
		assert.Equal(t, "2026-09-01", value)
	})

	t.Run("Empty Path Fails", func(t *testing.T) {
		store := newTestStore(t)
		_, err := store.Initialize(ctx)
		require.NoError(t, err)

		_, err = store.Write(ctx, nil, "value")
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrInvalidInput))
	})

	t.Run("Unloadable Store Fails", func(t *testing.T) {
		store := newTestStore(t)
		_, err := store.Write(ctx, []string{"key"}, "value")
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrDocumentUnavailable))
	})
}

func TestReplaceSession(t *testing.T) {
	ctx := context.Background()

	t.Run("Overwrites Whole Subtree", func(t *testing.T) {
		store := newTestStore(t)
		_, err := store.Initialize(ctx)
		require.NoError(t, err)

		_, err = store.Write(ctx, []string{constants.SessionRootKey, "stale"}, true)
		require.NoError(t, err)

		err = store.ReplaceSession(ctx, map[string]any{"project_name": "fresh"})
		require.NoError(t, err)

		value, err := store.ReadKey(ctx, constants.SessionRootKey)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"project_name": "fresh"}, value)
	})
}

func TestInitialize(t *testing.T) {
	ctx := context.Background()

	t.Run("Starts Fresh Document When Unloadable", func(t *testing.T) {
		store := newTestStore(t)

		created, err := store.Initialize(ctx)
		require.NoError(t, err)
		assert.True(t, created)
	})

	t.Run("Idempotent", func(t *testing.T) {
		store := newTestStore(t)

		created, err := store.Initialize(ctx)
		require.NoError(t, err)
		require.True(t, created)

		created, err = store.Initialize(ctx)
		require.NoError(t, err)
		assert.False(t, created)
	})

	t.Run("Keeps Existing Session Data", func(t *testing.T) {
		store := newTestStore(t)
		_, err := store.Initialize(ctx)
		require.NoError(t, err)

		err = store.ReplaceSession(ctx, map[string]any{"project_name": "keep me"})
		require.NoError(t, err)

		created, err := store.Initialize(ctx)
		require.NoError(t, err)
		assert.False(t, created)

		value, err := store.ReadKey(ctx, constants.SessionRootKey)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"project_name": "keep me"}, value)
	})
}
