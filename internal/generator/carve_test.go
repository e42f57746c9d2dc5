package generator

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/csudoku/internal/domain"
	"svw.info/csudoku/internal/solver"
	"svw.info/csudoku/internal/validator"
)

func TestGenerateAllDifficulties(t *testing.T) {
	s := solver.New(solver.WithNakedTwins())
	g := NewUniqueGenerator(s, false)

	cases := []struct {
		name string
		diff domain.Difficulty
	}{
		{"easy", domain.Easy},
		{"medium", domain.Medium},
		{"hard", domain.Hard},
		{"expert", domain.Expert},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			p, st, err := g.Generate(ctx, 12345, tc.diff)
			require.NoError(t, err)

			givens := 0
			for r := 0; r < 9; r++ {
				for c := 0; c < 9; c++ {
					if p.Board.Values[r][c] != 0 {
						givens++
					}
				}
			}
			assert.GreaterOrEqual(t, givens, 17, "below the minimum for a unique 9x9 puzzle")
			assert.LessOrEqual(t, givens, 81)

			ok, _, err := s.Unique(ctx, &p.Board)
			require.NoError(t, err)
			assert.True(t, ok, "generated puzzle must have exactly one solution")

			valid, conflicts, err := validator.New(false).Validate(ctx, &p.Board)
			require.NoError(t, err)
			assert.True(t, valid, "conflicts: %v", conflicts)

			t.Logf("%s: givens=%d nodes=%d dur=%v", tc.name, givens, st.Nodes, st.Duration)
		})
	}
}

func TestGenerateDiagonalVariant(t *testing.T) {
	s := solver.New(solver.WithDiagonals(), solver.WithNakedTwins())
	g := NewUniqueGenerator(s, true)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	p, _, err := g.Generate(ctx, 777, domain.Medium)
	require.NoError(t, err)
	assert.True(t, p.Diagonal)

	valid, conflicts, err := validator.New(true).Validate(ctx, &p.Board)
	require.NoError(t, err)
	assert.True(t, valid, "conflicts: %v", conflicts)

	ok, _, err := s.Unique(ctx, &p.Board)
	require.NoError(t, err)
	assert.True(t, ok)
}
