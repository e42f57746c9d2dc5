package generator

import (
	"svw.info/csudoku/internal/ports"
)

// UniqueGenerator creates puzzles with a unique solution using a provided
// Solver for the uniqueness checks. When diagonal is set the produced puzzles
// constrain both main diagonals; the solver must be configured for the same
// variant or the uniqueness checks are meaningless.
type UniqueGenerator struct {
	Solver   ports.Solver
	Diagonal bool
}

// NewUniqueGenerator wires a generator onto the given solver.
func NewUniqueGenerator(s ports.Solver, diagonal bool) *UniqueGenerator {
	return &UniqueGenerator{Solver: s, Diagonal: diagonal}
}
