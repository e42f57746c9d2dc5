package solver

// Values is the mutable per-puzzle state: every box maps to the string of
// digits still possible for it. Candidate strings are only ever shrunk and
// keep their "123456789" ordering, so two boxes with the same candidates
// compare equal as plain strings.
//
// A Values instance is owned by exactly one search branch at a time; Copy is
// taken before branching so siblings never observe each other's mutations.
type Values struct {
	cells   map[string]string
	record  bool
	history []map[string]string
}

// NewValues wraps a parsed cell map. The input is copied so the caller keeps
// ownership of its map.
func NewValues(cells map[string]string) *Values {
	m := make(map[string]string, len(cells))
	for b, d := range cells {
		m[b] = d
	}
	return &Values{cells: m}
}

// EnableHistory turns on assignment recording: every effective write that
// resolves a box to a single digit appends a full snapshot. Off by default;
// only the map handed to the visualizer pays for it.
func (v *Values) EnableHistory() { v.record = true }

// Get returns the current candidates for box. Every box always has an entry.
func (v *Values) Get(box string) string { return v.cells[box] }

// Set overwrites the candidates for box. Writing the value a box already
// holds is a no-op: nothing changes and nothing is recorded.
func (v *Values) Set(box, val string) {
	if v.cells[box] == val {
		return
	}
	v.cells[box] = val
	if v.record && len(val) == 1 {
		v.history = append(v.history, v.Snapshot())
	}
}

// Copy returns an independent copy for a search branch. The history slice is
// copied too (the snapshots themselves are immutable and shared), so the
// branch that ultimately wins carries the assignment trail of its lineage
// while abandoned siblings are garbage-collected whole.
func (v *Values) Copy() *Values {
	out := &Values{cells: v.Snapshot(), record: v.record}
	if len(v.history) > 0 {
		out.history = append(make([]map[string]string, 0, len(v.history)), v.history...)
	}
	return out
}

// Snapshot returns a copy of the current cell map.
func (v *Values) Snapshot() map[string]string {
	m := make(map[string]string, len(v.cells))
	for b, d := range v.cells {
		m[b] = d
	}
	return m
}

// History returns the recorded assignment snapshots, oldest first.
func (v *Values) History() []map[string]string { return v.history }

// SolvedCount reports how many boxes are down to a single candidate.
func (v *Values) SolvedCount() int {
	n := 0
	for _, d := range v.cells {
		if len(d) == 1 {
			n++
		}
	}
	return n
}

// Solved reports whether every box is down to a single candidate.
func (v *Values) Solved() bool { return v.SolvedCount() == len(v.cells) }
