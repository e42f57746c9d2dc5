package solver

import (
	"fmt"
	"strings"
)

// eliminate removes every solved box's digit from all of that box's peers.
// It works against the live map rather than a frozen snapshot; sequential
// application converges to the same fixed point. If stripping a digit would
// leave a peer with no candidates the whole pass fails immediately.
func eliminate(t *Topology, v *Values) error {
	for _, box := range t.Boxes {
		d := v.Get(box)
		if len(d) != 1 {
			continue
		}
		for _, peer := range t.Peers[box] {
			cur := v.Get(peer)
			if !strings.Contains(cur, d) {
				continue
			}
			next := strings.Replace(cur, d, "", 1)
			if next == "" {
				return fmt.Errorf("%w: box %s", ErrContradiction, peer)
			}
			v.Set(peer, next)
		}
	}
	return nil
}

// onlyChoice forces a digit into the one box of a unit that still lists it.
// Forcing to a digit that is already a candidate cannot empty a set, so no
// contradiction check is needed here.
func onlyChoice(t *Topology, v *Values) {
	for _, unit := range t.Units {
		for i := 0; i < len(digits); i++ {
			d := digits[i : i+1]
			found := ""
			n := 0
			for _, box := range unit {
				if strings.Contains(v.Get(box), d) {
					found = box
					if n++; n > 1 {
						break
					}
				}
			}
			if n == 1 {
				v.Set(found, d)
			}
		}
	}
}

// nakedTwins finds pairs of boxes in a unit holding the same two candidates
// and strips those two digits from every other box in the unit. Supplementary
// pruning only: reapplying it to an already-reduced map changes nothing, and
// it performs no contradiction check of its own.
func nakedTwins(t *Topology, v *Values) {
	for _, unit := range t.Units {
		for i, b1 := range unit {
			pair := v.Get(b1)
			if len(pair) != 2 {
				continue
			}
			for _, b2 := range unit[i+1:] {
				if v.Get(b2) != pair {
					continue
				}
				for _, box := range unit {
					if box == b1 || box == b2 {
						continue
					}
					cur := v.Get(box)
					next := strings.Replace(cur, pair[:1], "", 1)
					next = strings.Replace(next, pair[1:], "", 1)
					v.Set(box, next)
				}
			}
		}
	}
}
