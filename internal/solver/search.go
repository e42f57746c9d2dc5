package solver

import "context"

// pickBranchBox returns the first unsolved box, in row-major order, with the
// smallest candidate count. Returns "" when no box has two or more
// candidates, which on an unsolved map means some box was emptied by a
// pruning pass and the branch is dead.
func pickBranchBox(t *Topology, v *Values) string {
	best := ""
	bestLen := 10
	for _, box := range t.Boxes {
		if n := len(v.Get(box)); n > 1 && n < bestLen {
			best, bestLen = box, n
			if n == 2 {
				break
			}
		}
	}
	return best
}

// search is the recursive depth-first solve: reduce to a fixed point, accept
// if everything is solved, otherwise branch over the smallest-candidate box,
// copying the map per branch. The first accepting branch wins; exhausting all
// branches rejects the node.
func (s *ConstraintSolver) search(ctx context.Context, v *Values, nodes *int) (*Values, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := reduce(s.topo, v, s.twins); err != nil {
		return nil, err
	}
	if v.Solved() {
		return v, nil
	}
	box := pickBranchBox(s.topo, v)
	if box == "" {
		return nil, ErrContradiction
	}
	for _, d := range v.Get(box) {
		*nodes++
		branch := v.Copy()
		branch.Set(box, string(d))
		out, err := s.search(ctx, branch, nodes)
		if err == nil {
			return out, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
	}
	return nil, ErrNoSolution
}

// countSolutions explores like search but keeps going after an accept, up to
// limit solutions. A contradicted branch contributes zero rather than an
// error; only cancellation aborts the walk.
func (s *ConstraintSolver) countSolutions(ctx context.Context, v *Values, limit int, nodes *int) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := reduce(s.topo, v, s.twins); err != nil {
		return 0, nil
	}
	if v.Solved() {
		return 1, nil
	}
	box := pickBranchBox(s.topo, v)
	if box == "" {
		return 0, nil
	}
	total := 0
	for _, d := range v.Get(box) {
		*nodes++
		branch := v.Copy()
		branch.Set(box, string(d))
		n, err := s.countSolutions(ctx, branch, limit-total, nodes)
		if err != nil {
			return total, err
		}
		if total += n; total >= limit {
			return total, nil
		}
	}
	return total, nil
}
