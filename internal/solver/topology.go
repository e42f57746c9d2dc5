package solver

// Grid labels: rows A-I, columns 1-9, box "A1" is the top-left cell.
const (
	rows   = "ABCDEFGHI"
	cols   = "123456789"
	digits = "123456789"
)

// Topology is the static unit and peer structure of a 9x9 grid. It is built
// once, never mutated afterwards, and shared by pointer between the solver,
// the reducer, and the strategies.
type Topology struct {
	// Diagonal reports whether the two main diagonals are constrained units.
	Diagonal bool
	// Boxes lists all 81 boxes in row-major order. This is the canonical
	// iteration order: elimination, branching, and tie-breaking all follow it
	// so results are reproducible.
	Boxes []string
	// Units holds every unit: 9 rows, 9 columns, 9 blocks, and 2 diagonals
	// when Diagonal is set.
	Units [][]string
	// UnitsOf maps a box to the units containing it (3 normally, 5 on a
	// diagonal intersection).
	UnitsOf map[string][][]string
	// Peers maps a box to every box sharing a unit with it, self excluded,
	// in row-major order.
	Peers map[string][]string
}

func cross(as, bs string) []string {
	out := make([]string, 0, len(as)*len(bs))
	for _, a := range as {
		for _, b := range bs {
			out = append(out, string(a)+string(b))
		}
	}
	return out
}

// NewTopology builds the unit and peer structure, with or without the two
// main diagonals as extra units.
func NewTopology(diagonal bool) *Topology {
	t := &Topology{Diagonal: diagonal, Boxes: cross(rows, cols)}

	for _, r := range rows {
		t.Units = append(t.Units, cross(string(r), cols))
	}
	for _, c := range cols {
		t.Units = append(t.Units, cross(rows, string(c)))
	}
	for _, rs := range []string{"ABC", "DEF", "GHI"} {
		for _, cs := range []string{"123", "456", "789"} {
			t.Units = append(t.Units, cross(rs, cs))
		}
	}
	if diagonal {
		main := make([]string, 9)
		anti := make([]string, 9)
		for i := 0; i < 9; i++ {
			main[i] = string(rows[i]) + string(cols[i])
			anti[i] = string(rows[i]) + string(cols[8-i])
		}
		t.Units = append(t.Units, main, anti)
	}

	// Peers are the union of a box's units minus the box itself. Membership
	// is collected in a set first so boxes shared between units (row/block
	// overlaps, diagonal crossings) collapse to a single peer entry.
	member := make(map[string]map[string]bool, len(t.Boxes))
	for _, b := range t.Boxes {
		member[b] = make(map[string]bool)
	}
	t.UnitsOf = make(map[string][][]string, len(t.Boxes))
	for _, u := range t.Units {
		for _, b := range u {
			t.UnitsOf[b] = append(t.UnitsOf[b], u)
			for _, other := range u {
				if other != b {
					member[b][other] = true
				}
			}
		}
	}
	t.Peers = make(map[string][]string, len(t.Boxes))
	for _, b := range t.Boxes {
		peers := make([]string, 0, len(member[b]))
		for _, p := range t.Boxes {
			if member[b][p] {
				peers = append(peers, p)
			}
		}
		t.Peers[b] = peers
	}
	return t
}
