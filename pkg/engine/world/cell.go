// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game: integer
// coordinates, compass directions, topologies and distance metrics, plus a
// reference grid that answers the light-transmission and reflectivity
// questions asked by the FOV and lighting packages.
package world

// Cell represents a single cell/tile in the grid.
type Cell struct {
	// Basic identification
	Name string

	// Grid position
	X int
	Y int

	// Optics
	Transparent  bool    // Does light pass through this cell?
	Reflectivity float64 // Fraction of incident light re-emitted, 0..1

	// Visibility state
	Visible    bool // Seen by the most recent RevealFOV
	Discovered bool // Seen at least once
}

// NewCell creates a new opaque, non-reflective cell at the given position
func NewCell(x, y int, name string) *Cell {
	return &Cell{
		Name: name,
		X:    x,
		Y:    y,
	}
}

// Point returns the cell's coordinate
func (c *Cell) Point() Point {
	return Point{X: c.X, Y: c.Y}
}

// IsWall returns true if the cell blocks light
func (c *Cell) IsWall() bool {
	return c != nil && !c.Transparent
}

// SetReflectivity stores r clamped to [0,1]
func (c *Cell) SetReflectivity(r float64) {
	switch {
	case r < 0:
		r = 0
	case r > 1:
		r = 1
	}
	c.Reflectivity = r
}
