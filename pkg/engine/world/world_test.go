// Package world tests grid predicates, map parsing, directions, topologies
// and RevealFOV.
package world

import (
	"errors"
	"strings"
	"testing"
)

func TestParseMap_Symbols(t *testing.T) {
	mf, err := ParseMapString("#.5\n@*#\n#")
	if err != nil {
		t.Fatalf("ParseMapString: %v", err)
	}
	g := mf.Grid
	if g.Width() != 3 || g.Height() != 3 {
		t.Fatalf("size = %dx%d, want 3x3", g.Width(), g.Height())
	}

	tests := []struct {
		x, y   int
		passes bool
		refl   float64
	}{
		{0, 0, false, 0},
		{1, 0, true, 0},
		{2, 0, true, 0.5},
		{0, 1, true, 0},
		{1, 1, true, 0},
		{2, 1, false, 0},
		{1, 2, false, 0}, // padded
	}
	for _, tt := range tests {
		if got := g.LightPasses(tt.x, tt.y); got != tt.passes {
			t.Errorf("LightPasses(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.passes)
		}
		if got := g.Reflectivity(tt.x, tt.y); got != tt.refl {
			t.Errorf("Reflectivity(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.refl)
		}
	}

	if !mf.HasOrigin || mf.Origin != Pt(0, 1) {
		t.Errorf("origin = %v (has=%v), want 0,1", mf.Origin, mf.HasOrigin)
	}
	if len(mf.Lights) != 1 || mf.Lights[0] != Pt(1, 1) {
		t.Errorf("lights = %v, want [1,1]", mf.Lights)
	}
}

func TestParseMap_TrimsBlankLines(t *testing.T) {
	mf, err := ParseMap(strings.NewReader("\n\n..\n..\n\n"))
	if err != nil {
		t.Fatalf("ParseMap: %v", err)
	}
	if mf.Grid.Height() != 2 {
		t.Errorf("height = %d, want 2", mf.Grid.Height())
	}
}

func TestParseMap_Empty(t *testing.T) {
	if _, err := ParseMapString("\n\n"); !errors.Is(err, ErrEmptyMap) {
		t.Errorf("error = %v, want ErrEmptyMap", err)
	}
}

func TestGrid_OutOfBoundsBlocksAndReflectsNothing(t *testing.T) {
	g := NewOpenGrid(2, 2)
	if g.LightPasses(-1, 0) || g.LightPasses(2, 0) {
		t.Error("out of bounds cells must block light")
	}
	if g.Reflectivity(5, 5) != 0 {
		t.Error("out of bounds cells must not reflect")
	}
	if g.SetWall(3, 3) || g.SetFloor(-1, 0) || g.SetReflectivity(9, 9, 1) {
		t.Error("setters must refuse out of bounds positions")
	}
}

func TestGrid_ReflectivityClamped(t *testing.T) {
	g := NewOpenGrid(1, 1)
	g.SetReflectivity(0, 0, 1.7)
	if got := g.Reflectivity(0, 0); got != 1 {
		t.Errorf("reflectivity = %v, want clamp to 1", got)
	}
	g.SetReflectivity(0, 0, -0.2)
	if got := g.Reflectivity(0, 0); got != 0 {
		t.Errorf("reflectivity = %v, want clamp to 0", got)
	}
	if msg := g.Validate(); msg != "" {
		t.Errorf("Validate() = %q, want valid", msg)
	}
}

func TestGrid_CountTransparent(t *testing.T) {
	g := NewOpenGrid(4, 3)
	g.SetWall(1, 1)
	if got := g.CountTransparent(); got != 11 {
		t.Errorf("CountTransparent = %d, want 11", got)
	}
}

func TestGrid_GetCellRelative(t *testing.T) {
	g := NewOpenGrid(3, 3)
	c := g.GetCell(1, 1)
	if n := g.GetCellRelative(c, NorthEast); n == nil || n.X != 2 || n.Y != 0 {
		t.Errorf("NorthEast of 1,1 = %+v, want 2,0", n)
	}
	if n := g.GetCellRelative(g.GetCell(0, 0), West); n != nil {
		t.Errorf("West of 0,0 = %+v, want nil", n)
	}
}

func TestDirection_OppositeAndRotate(t *testing.T) {
	for _, d := range AllDirections() {
		if d.Opposite().Opposite() != d {
			t.Errorf("%s: double opposite = %s", d, d.Opposite().Opposite())
		}
		if d.RotateCW().RotateCCW() != d {
			t.Errorf("%s: CW then CCW = %s", d, d.RotateCW().RotateCCW())
		}
		v, o := d.Vector(), d.Opposite().Vector()
		if v.Add(o) != (Point{}) {
			t.Errorf("%s: vector %v and opposite %v do not cancel", d, v, o)
		}
	}
	if North.Rotate(-1) != NorthWest {
		t.Errorf("North.Rotate(-1) = %s, want NorthWest", North.Rotate(-1))
	}
	if Direction(9).IsValid() || Direction(9).String() != "Unknown" {
		t.Error("Direction(9) must be invalid and Unknown")
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range AllDirections() {
		got, ok := ParseDirection(d.String())
		if !ok || got != d {
			t.Errorf("ParseDirection(%q) = %s, %v", d.String(), got, ok)
		}
	}
	if d, ok := ParseDirection("se"); !ok || d != SouthEast {
		t.Errorf("ParseDirection(se) = %s, %v", d, ok)
	}
	if _, ok := ParseDirection("up"); ok {
		t.Error("ParseDirection(up) should fail")
	}
}

func TestDistances(t *testing.T) {
	a, b := Pt(1, 2), Pt(4, -2)
	if got := Chebyshev(a, b); got != 4 {
		t.Errorf("Chebyshev = %d, want 4", got)
	}
	if got := Manhattan(a, b); got != 7 {
		t.Errorf("Manhattan = %d, want 7", got)
	}
	if got := EuclideanSq(a, b); got != 25 {
		t.Errorf("EuclideanSq = %d, want 25", got)
	}
	if got := Distance(Topology6, Pt(0, 0), Pt(4, 0)); got != 2 {
		t.Errorf("hex distance (0,0)-(4,0) = %d, want 2", got)
	}
	if got := Distance(Topology6, Pt(0, 0), Pt(1, 1)); got != 1 {
		t.Errorf("hex distance (0,0)-(1,1) = %d, want 1", got)
	}
}

func TestTopology_Dirs(t *testing.T) {
	if n := len(Topology8.Dirs()); n != 8 {
		t.Errorf("Topology8 dirs = %d", n)
	}
	d := Topology4.Dirs()
	d[0] = Point{9, 9}
	if Topology4.Dirs()[0] == d[0] {
		t.Error("Dirs must return a copy")
	}
	if Topology(5).Dirs() != nil || Topology(5).IsValid() {
		t.Error("topology 5 must be invalid")
	}
	if n := len(Topology6.Neighbors(Pt(0, 0))); n != 6 {
		t.Errorf("hex neighbours = %d, want 6", n)
	}
}

func TestPoint_HashDistinguishesSigns(t *testing.T) {
	if Pt(-1, 0).Hash() == Pt(1, 0).Hash() || Pt(0, -1).Hash() == Pt(0, 1).Hash() {
		t.Error("Hash collides on sign")
	}
	if Pt(3, -4).String() != "3,-4" {
		t.Errorf("String = %q", Pt(3, -4).String())
	}
}

// stubScanner reports a fixed list of visits
type stubScanner []Point

func (s stubScanner) Compute(x, y, radius int, visit func(x, y, ring int, visibility float64)) {
	visit(x, y, 0, 1)
	for _, p := range s {
		visit(p.X, p.Y, Chebyshev(Pt(x, y), p), 1)
	}
}

func TestRevealFOV_MarksVisibleAndDiscovered(t *testing.T) {
	g := NewOpenGrid(4, 4)
	g.GetCell(3, 3).Visible = true

	n := RevealFOV(g, stubScanner{{1, 1}, {2, 2}, {9, 9}, {1, 1}}, 0, 0, 3)
	if n != 3 {
		t.Errorf("revealed %d, want 3", n)
	}
	for _, p := range []Point{{0, 0}, {1, 1}, {2, 2}} {
		c := g.GetCell(p.X, p.Y)
		if !c.Visible || !c.Discovered {
			t.Errorf("%v: visible=%v discovered=%v", p, c.Visible, c.Discovered)
		}
	}
	if g.GetCell(3, 3).Visible {
		t.Error("stale visibility must be cleared")
	}
	if RevealFOV(nil, stubScanner{}, 0, 0, 1) != 0 {
		t.Error("nil grid must reveal nothing")
	}
}
