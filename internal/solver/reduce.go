package solver

// reduce applies elimination and only-choice until a full pass stops
// increasing the solved-box count. Termination follows from the count being
// monotonically non-decreasing and bounded by 81. When twins is set the
// naked-twins pruning joins the same pass, inside the same solved-count
// comparison boundary.
func reduce(t *Topology, v *Values, twins bool) error {
	for {
		before := v.SolvedCount()
		if err := eliminate(t, v); err != nil {
			return err
		}
		onlyChoice(t, v)
		if twins {
			nakedTwins(t, v)
		}
		if v.SolvedCount() == before {
			return nil
		}
	}
}
