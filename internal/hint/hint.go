// Package hint derives the next logical step for a player from the solver's
// candidate map: naked singles first, then naked twins when the requested
// tier allows them.
package hint

import (
	"context"
	"fmt"
	"strings"

	"svw.info/csudoku/internal/domain"
	"svw.info/csudoku/internal/grid"
	"svw.info/csudoku/internal/solver"
)

type Engine struct {
	s *solver.ConstraintSolver
}

func New(s *solver.ConstraintSolver) *Engine { return &Engine{s: s} }

// Hint returns the first applicable suggestion, scanning boxes in row-major
// order. A board whose candidates contradict yields no hint rather than an
// error: there is nothing logical left to suggest.
func (h *Engine) Hint(ctx context.Context, b *domain.Board, max domain.StrategyTier) (domain.Hint, bool, error) {
	cands, err := h.s.Candidates(b)
	if err != nil {
		return domain.Hint{}, false, nil
	}

	for _, box := range grid.Boxes() {
		cc := grid.BoxCoord(box)
		if b.Values[cc.Row][cc.Col] != 0 {
			continue
		}
		if d := cands[box]; len(d) == 1 {
			return domain.Hint{
				Message:  fmt.Sprintf("Single: only %s fits here", d),
				Cells:    []domain.CellCoord{cc},
				Strategy: domain.StrategySingles,
			}, true, nil
		}
	}

	if max < domain.StrategyPairs {
		return domain.Hint{}, false, nil
	}
	for _, unit := range h.s.Topology().Units {
		for i, b1 := range unit {
			pair := cands[b1]
			if len(pair) != 2 {
				continue
			}
			for _, b2 := range unit[i+1:] {
				if cands[b2] != pair {
					continue
				}
				// Only worth suggesting if the pair actually removes
				// something from the rest of the unit.
				for _, other := range unit {
					if other == b1 || other == b2 || len(cands[other]) == 1 {
						continue
					}
					if strings.ContainsAny(cands[other], pair) {
						return domain.Hint{
							Message:  fmt.Sprintf("Naked twins: %s is confined to these two cells", pair),
							Cells:    []domain.CellCoord{grid.BoxCoord(b1), grid.BoxCoord(b2)},
							Strategy: domain.StrategyPairs,
						}, true, nil
					}
				}
			}
		}
	}
	return domain.Hint{}, false, nil
}
