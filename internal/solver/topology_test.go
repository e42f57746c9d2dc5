package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopologyUnitCounts(t *testing.T) {
	cases := []struct {
		name     string
		diagonal bool
		units    int
	}{
		{"classic", false, 27},
		{"diagonal", true, 29},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			topo := NewTopology(tc.diagonal)
			require.Len(t, topo.Boxes, 81)
			require.Len(t, topo.Units, tc.units)
			for _, u := range topo.Units {
				assert.Len(t, u, 9)
			}
		})
	}
}

func TestTopologyUnitsOf(t *testing.T) {
	t.Run("classic is three units everywhere", func(t *testing.T) {
		topo := NewTopology(false)
		for _, b := range topo.Boxes {
			assert.Len(t, topo.UnitsOf[b], 3, "box %s", b)
		}
	})

	t.Run("diagonal membership", func(t *testing.T) {
		topo := NewTopology(true)
		// Corner and center sit on one and two diagonals respectively.
		assert.Len(t, topo.UnitsOf["A1"], 4)
		assert.Len(t, topo.UnitsOf["A9"], 4)
		assert.Len(t, topo.UnitsOf["E5"], 5)
		// Off-diagonal boxes keep row/column/block only.
		assert.Len(t, topo.UnitsOf["A2"], 3)
	})
}

func TestTopologyPeers(t *testing.T) {
	t.Run("classic peer count", func(t *testing.T) {
		topo := NewTopology(false)
		for _, b := range topo.Boxes {
			assert.Len(t, topo.Peers[b], 20, "box %s", b)
		}
	})

	t.Run("diagonal peer counts", func(t *testing.T) {
		topo := NewTopology(true)
		assert.Len(t, topo.Peers["A2"], 20)
		assert.Len(t, topo.Peers["A1"], 26)
		assert.Len(t, topo.Peers["E5"], 32)
	})

	t.Run("symmetric and never self", func(t *testing.T) {
		topo := NewTopology(true)
		peerSet := make(map[string]map[string]bool, len(topo.Boxes))
		for _, b := range topo.Boxes {
			peerSet[b] = make(map[string]bool)
			for _, p := range topo.Peers[b] {
				require.NotEqual(t, b, p, "box %s lists itself as a peer", b)
				require.False(t, peerSet[b][p], "box %s lists peer %s twice", b, p)
				peerSet[b][p] = true
			}
		}
		for _, b := range topo.Boxes {
			for p := range peerSet[b] {
				assert.True(t, peerSet[p][b], "peer relation %s->%s is not symmetric", b, p)
			}
		}
	})
}
