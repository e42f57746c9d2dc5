package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/csudoku/internal/domain"
)

func TestValidateRowConflict(t *testing.T) {
	var b domain.Board
	b.Values[0][0] = 5
	b.Values[0][7] = 5

	ok, conflicts, err := New(false).Validate(context.Background(), &b)
	require.NoError(t, err)
	assert.False(t, ok)
	require.NotEmpty(t, conflicts)
	assert.Equal(t, domain.CellCoord{Row: 0, Col: 7}, conflicts[0])
}

func TestValidateColumnAndBlock(t *testing.T) {
	t.Run("column", func(t *testing.T) {
		var b domain.Board
		b.Values[1][3] = 9
		b.Values[6][3] = 9
		ok, _, err := New(false).Validate(context.Background(), &b)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("block", func(t *testing.T) {
		var b domain.Board
		b.Values[0][0] = 4
		b.Values[2][2] = 4
		ok, _, err := New(false).Validate(context.Background(), &b)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestValidateDiagonalVariant(t *testing.T) {
	// Duplicate on the main diagonal, legal under classic rules.
	var b domain.Board
	b.Values[0][0] = 7
	b.Values[4][4] = 7

	ok, _, err := New(false).Validate(context.Background(), &b)
	require.NoError(t, err)
	assert.True(t, ok, "classic rules must not check diagonals")

	ok, conflicts, err := New(true).Validate(context.Background(), &b)
	require.NoError(t, err)
	assert.False(t, ok, "diagonal rules must flag the duplicate")
	assert.NotEmpty(t, conflicts)
}

func TestValidateAntiDiagonal(t *testing.T) {
	var b domain.Board
	b.Values[0][8] = 3
	b.Values[8][0] = 3

	ok, _, err := New(true).Validate(context.Background(), &b)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestValidateCleanBoard(t *testing.T) {
	var b domain.Board
	b.Values[0][0] = 1
	b.Values[4][4] = 2
	b.Values[8][8] = 3

	ok, conflicts, err := New(true).Validate(context.Background(), &b)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, conflicts)
}
