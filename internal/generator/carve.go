package generator

import (
	"context"
	"math/rand"
	"time"

	"svw.info/csudoku/internal/domain"
	"svw.info/csudoku/internal/ports"
)

func targetGivens(d domain.Difficulty) int {
	switch d {
	case domain.Easy:
		return 40
	case domain.Medium:
		return 34
	case domain.Hard:
		return 28
	default:
		return 24 // Expert
	}
}

// Generate builds a full random solution, then carves cells back out in a
// shuffled order, keeping each removal only if the puzzle still has a unique
// solution. Carving stops at the difficulty's target given count or at the
// time budget, whichever comes first.
func (g *UniqueGenerator) Generate(ctx context.Context, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	var full [9][9]uint8
	if !g.fillRandom(ctx, rng, &full) {
		return nil, ports.Stats{}, context.Canceled
	}

	puz := full
	fixed := [9][9]bool{}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			fixed[r][c] = true
		}
	}
	positions := rng.Perm(81)

	target := targetGivens(diff)
	deadline := start.Add(900 * time.Millisecond)
	nodes := 0
	givens := 81

	for _, pos := range positions {
		if givens <= target || time.Now().After(deadline) {
			break
		}
		r, c := pos/9, pos%9
		old := puz[r][c]
		puz[r][c] = 0
		fixed[r][c] = false
		unique, st, _ := g.Solver.Unique(ctx, &domain.Board{Values: puz})
		nodes += st.Nodes
		if unique {
			givens--
		} else {
			puz[r][c] = old
			fixed[r][c] = true
		}
	}

	p := &domain.Puzzle{
		Seed:       seed,
		Difficulty: diff,
		Diagonal:   g.Diagonal,
		Board:      domain.Board{Values: puz, Fixed: fixed},
		CreatedAt:  time.Now().UnixNano(),
	}
	return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// fillRandom solves an empty grid into a full valid solution by trying digits
// in a random order per cell.
func (g *UniqueGenerator) fillRandom(ctx context.Context, rng *rand.Rand, grid *[9][9]uint8) bool {
	var nums [9]uint8
	for i := 0; i < 9; i++ {
		nums[i] = uint8(i + 1)
	}
	var dfs func(int, int) bool
	dfs = func(r, c int) bool {
		if ctx.Err() != nil {
			return false
		}
		if r == 9 {
			return true
		}
		nr, nc := r, c+1
		if nc == 9 {
			nr, nc = r+1, 0
		}
		rng.Shuffle(9, func(i, j int) { nums[i], nums[j] = nums[j], nums[i] })
		for _, v := range nums {
			if g.allowed(grid, r, c, v) {
				grid[r][c] = v
				if dfs(nr, nc) {
					return true
				}
				grid[r][c] = 0
			}
		}
		return false
	}
	return dfs(0, 0)
}

// allowed checks row, column, block, and (for the variant) diagonal legality
// of placing v at (r, c).
func (g *UniqueGenerator) allowed(b *[9][9]uint8, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if b[r][i] == v || b[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if b[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	if g.Diagonal {
		if r == c {
			for i := 0; i < 9; i++ {
				if b[i][i] == v {
					return false
				}
			}
		}
		if r+c == 8 {
			for i := 0; i < 9; i++ {
				if b[i][8-i] == v {
					return false
				}
			}
		}
	}
	return true
}
