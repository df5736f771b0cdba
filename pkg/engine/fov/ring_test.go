package fov

import (
	"testing"

	"lightcast/pkg/engine/world"
)

func TestRing_Sizes(t *testing.T) {
	tests := []struct {
		topology world.Topology
		perRing  int
	}{
		{world.Topology4, 4},
		{world.Topology6, 6},
		{world.Topology8, 8},
	}
	for _, tt := range tests {
		for r := 1; r <= 5; r++ {
			cells := ring(tt.topology, 0, 0, r)
			if len(cells) != tt.perRing*r {
				t.Errorf("topology %d ring %d: %d cells, want %d", tt.topology, r, len(cells), tt.perRing*r)
			}
			seen := make(map[world.Point]bool)
			for _, c := range cells {
				if seen[c] {
					t.Errorf("topology %d ring %d: %v listed twice", tt.topology, r, c)
				}
				seen[c] = true
				if tt.topology != world.Topology6 {
					if d := world.Distance(tt.topology, world.Pt(0, 0), c); d != r {
						t.Errorf("topology %d ring %d: %v is at distance %d", tt.topology, r, c, d)
					}
				}
			}
		}
	}
}

func TestRing_EightStartsSouthWest(t *testing.T) {
	cells := ring(world.Topology8, 10, 10, 1)
	want := []world.Point{{9, 11}, {9, 10}, {9, 9}, {10, 9}, {11, 9}, {11, 10}, {11, 11}, {10, 11}}
	for i, p := range want {
		if cells[i] != p {
			t.Errorf("ring cell %d = %v, want %v", i, cells[i], p)
		}
	}
}

func TestRing_TopologyFourDiamond(t *testing.T) {
	grid := world.NewOpenGrid(9, 9)
	opts := Options{Topology: world.Topology4}
	for _, f := range []FOV{NewDiscrete(grid.LightPasses, opts), NewPrecise(grid.LightPasses, opts)} {
		got := Collect(f, 4, 4, 2)
		if len(got) != 13 {
			t.Errorf("%T topology 4 radius 2 saw %d cells, want 13", f, len(got))
		}
		if _, ok := got[world.Pt(6, 6)]; ok {
			t.Errorf("%T topology 4 should not reach the diagonal (6,6) at radius 2", f)
		}
	}
}

func TestOptions_InvalidTopologyFallsBack(t *testing.T) {
	f := NewDiscrete(nil, Options{Topology: 5})
	if f.Topology() != world.Topology8 {
		t.Errorf("topology = %d, want 8", f.Topology())
	}
}
