// Package solver implements the constraint-propagation core: a candidate map
// over 81 boxes, elimination / only-choice / naked-twins reduction strategies,
// a fixed-point reducer, and a depth-first backtracking search with
// copy-on-branch state.
package solver

import (
	"context"
	"errors"
	"time"

	"svw.info/csudoku/internal/domain"
	"svw.info/csudoku/internal/grid"
	"svw.info/csudoku/internal/ports"
)

var (
	// ErrContradiction marks a reduction pass that would empty a box's
	// candidate set. It rejects the current search branch only.
	ErrContradiction = errors.New("contradiction")
	// ErrNoSolution is returned when the whole search tree is exhausted
	// without an accepting branch.
	ErrNoSolution = errors.New("no solution")
)

// ConstraintSolver drives the reducer and the search over a fixed topology.
// Safe for concurrent use: per-solve state lives in Values copies, the
// topology is immutable.
type ConstraintSolver struct {
	topo    *Topology
	twins   bool
	history bool

	diagonal bool
}

// Option configures a ConstraintSolver at construction time.
type Option func(*ConstraintSolver)

// WithDiagonals adds the two main diagonals as constrained units.
func WithDiagonals() Option { return func(s *ConstraintSolver) { s.diagonal = true } }

// WithNakedTwins interleaves the naked-twins pruning into the fixed-point
// reduction pass. Not required for correctness; shrinks the search tree.
func WithNakedTwins() Option { return func(s *ConstraintSolver) { s.twins = true } }

// WithHistory records a candidate-map snapshot for every assignment that
// resolves a box, for replay by the visualizer.
func WithHistory() Option { return func(s *ConstraintSolver) { s.history = true } }

// New builds a solver, constructing its topology once.
func New(opts ...Option) *ConstraintSolver {
	s := &ConstraintSolver{}
	for _, o := range opts {
		o(s)
	}
	s.topo = NewTopology(s.diagonal)
	return s
}

// Topology exposes the solver's immutable unit/peer structure.
func (s *ConstraintSolver) Topology() *Topology { return s.topo }

// SolveGrid is the top-level entry point: it takes an 81-character puzzle
// string (digits are givens, anything else is unknown) and returns the solved
// candidate map, or ErrNoSolution wrapped in the stats of the failed attempt.
func (s *ConstraintSolver) SolveGrid(ctx context.Context, g string) (*Values, ports.Stats, error) {
	start := time.Now()
	cells, err := grid.Parse(g)
	if err != nil {
		return nil, ports.Stats{}, err
	}
	v := NewValues(cells)
	if s.history {
		v.EnableHistory()
	}
	nodes := 0
	out, err := s.search(ctx, v, &nodes)
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err != nil {
		if errors.Is(err, ErrContradiction) {
			// A root-level contradiction and an exhausted tree mean the same
			// thing to the caller: the puzzle has no solution.
			err = ErrNoSolution
		}
		return nil, st, err
	}
	return out, st, nil
}

// Solve adapts SolveGrid to the board-based Solver port.
func (s *ConstraintSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	out, st, err := s.SolveGrid(ctx, grid.FromBoard(b))
	if err != nil {
		return nil, st, err
	}
	solved := grid.ToBoard(out.Snapshot())
	solved.Fixed = b.Fixed
	return solved, st, nil
}

// Candidates parses the board and applies one elimination pass, returning the
// per-box candidate strings. Used by the hinter; the search never goes
// through here.
func (s *ConstraintSolver) Candidates(b *domain.Board) (map[string]string, error) {
	cells, err := grid.Parse(grid.FromBoard(b))
	if err != nil {
		return nil, err
	}
	v := NewValues(cells)
	if err := eliminate(s.topo, v); err != nil {
		return nil, err
	}
	return v.Snapshot(), nil
}

// Unique reports whether the board has exactly one solution, stopping as soon
// as a second one is found.
func (s *ConstraintSolver) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	start := time.Now()
	cells, err := grid.Parse(grid.FromBoard(b))
	if err != nil {
		return false, ports.Stats{}, err
	}
	nodes := 0
	n, err := s.countSolutions(ctx, NewValues(cells), 2, &nodes)
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err != nil {
		return false, st, err
	}
	return n == 1, st, nil
}
