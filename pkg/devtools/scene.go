// Package devtools provides debug dumps and terminal previews of field of
// view and lighting results.
package devtools

import (
	"cmp"
	"math"
	"slices"

	"lightcast/pkg/engine/fov"
	"lightcast/pkg/engine/lighting"
	"lightcast/pkg/engine/world"
)

// LightSource is a configured light
type LightSource struct {
	At    world.Point
	Color lighting.Color
}

// Scene is one computed view of a grid: what the origin sees and how every
// cell is lit.
type Scene struct {
	Grid    *world.Grid
	Origin  world.Point
	Radius  int
	Kind    fov.Kind
	Lights  []LightSource
	Visible map[world.Point]fov.Visit
	Lit     map[world.Point]lighting.Color

	// Revealed counts cells seen for the first time by this scene
	Revealed int
}

// NewScene runs f from origin, marking the grid's cells visible and
// discovered, then computes light with l. A nil l leaves the scene unlit.
func NewScene(grid *world.Grid, origin world.Point, radius int, kind fov.Kind, f fov.FOV, l *lighting.Lighting, lights []LightSource) *Scene {
	s := &Scene{
		Grid:    grid,
		Origin:  origin,
		Radius:  radius,
		Kind:    kind,
		Lights:  lights,
		Visible: fov.Collect(f, origin.X, origin.Y, radius),
		Lit:     map[world.Point]lighting.Color{},
	}
	s.Revealed = world.RevealFOV(grid, f, origin.X, origin.Y, radius)
	if l != nil {
		s.Lit = l.Lit()
	}
	return s
}

// IsLight reports whether a light source sits on p
func (s *Scene) IsLight(p world.Point) bool {
	return slices.ContainsFunc(s.Lights, func(ls LightSource) bool { return ls.At == p })
}

// LightLevel maps the light on p to 0..9, or -1 when p is unlit
func (s *Scene) LightLevel(p world.Point) int {
	c, ok := s.Lit[p]
	if !ok {
		return -1
	}
	return int(math.Round(c.Clamp().Intensity() / (3 * 255) * 9))
}

// LitCells returns the lit cells in row-major order
func (s *Scene) LitCells() []world.Point {
	out := make([]world.Point, 0, len(s.Lit))
	for p := range s.Lit {
		out = append(out, p)
	}
	slices.SortFunc(out, comparePoints)
	return out
}

func comparePoints(a, b world.Point) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.X, b.X)
}

// visibilitySymbol returns the single-character symbol for a cell in the
// visibility map
func (s *Scene) visibilitySymbol(x, y int) rune {
	p := world.Pt(x, y)
	cell := s.Grid.GetCell(x, y)
	switch {
	case cell == nil:
		return world.SymbolWall
	case p == s.Origin:
		return world.SymbolOrigin
	case !cell.Visible:
		return ' '
	case s.IsLight(p):
		return world.SymbolLight
	case cell.IsWall():
		return '+'
	default:
		return world.SymbolFloor
	}
}

// lightSymbol returns the symbol for a cell in the light-level map
func (s *Scene) lightSymbol(x, y int) rune {
	p := world.Pt(x, y)
	if lvl := s.LightLevel(p); lvl >= 0 {
		return rune('0' + lvl)
	}
	if s.Grid.LightPasses(x, y) {
		return world.SymbolFloor
	}
	return world.SymbolWall
}
