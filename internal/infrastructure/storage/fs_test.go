package storage

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/csudoku/internal/domain"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	s := NewFS(t.TempDir())
	ctx := context.Background()

	p := &domain.Puzzle{
		ID:         "abc-123",
		Seed:       42,
		Difficulty: domain.Hard,
		Diagonal:   true,
		CreatedAt:  1700000000,
		Name:       "evening puzzle",
	}
	p.Board.Values[0][0] = 5
	p.Board.Fixed[0][0] = true

	require.NoError(t, s.Save(ctx, p))

	got, err := s.Load(ctx, "abc-123")
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestSaveRejectsMissingID(t *testing.T) {
	s := NewFS(t.TempDir())
	require.Error(t, s.Save(context.Background(), &domain.Puzzle{}))
	require.Error(t, s.Save(context.Background(), nil))
}

func TestLoadMissing(t *testing.T) {
	s := NewFS(t.TempDir())
	_, err := s.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	s := NewFS(dir)
	ctx := context.Background()

	t.Run("empty directory", func(t *testing.T) {
		got, err := s.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("skips junk, keeps puzzles", func(t *testing.T) {
		require.NoError(t, s.Save(ctx, &domain.Puzzle{ID: "one", Difficulty: domain.Easy, CreatedAt: 1}))
		require.NoError(t, s.Save(ctx, &domain.Puzzle{ID: "two", Difficulty: domain.Expert, Diagonal: true, CreatedAt: 2}))
		require.NoError(t, os.WriteFile(dir+"/broken.json", []byte("{"), 0o644))
		require.NoError(t, os.WriteFile(dir+"/notes.txt", []byte("hi"), 0o644))

		got, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
		ids := []string{got[0].ID, got[1].ID}
		assert.ElementsMatch(t, []string{"one", "two"}, ids)
	})
}

func TestListMissingDirIsEmpty(t *testing.T) {
	s := NewFS(t.TempDir() + "/never-created")
	got, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}
