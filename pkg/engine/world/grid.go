package world

import "fmt"

// Grid is a rectangular map with encapsulated cell storage
type Grid struct {
	cells  []*Cell
	width  int
	height int
}

// NewGrid creates a new grid of opaque cells with the given dimensions
func NewGrid(width, height int) *Grid {
	g := &Grid{}
	g.Build(width, height)
	return g
}

// NewOpenGrid creates a grid where every cell is transparent floor
func NewOpenGrid(width, height int) *Grid {
	g := NewGrid(width, height)
	g.ForEachCell(func(x, y int, cell *Cell) {
		cell.Transparent = true
		cell.Name = "Floor"
	})
	return g
}

// Build initializes the grid with the given dimensions
func (g *Grid) Build(width, height int) {
	if width <= 0 || height <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.width = width
	g.height = height
	g.cells = make([]*Cell, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.cells[y*width+x] = NewCell(x, y, "Wall")
		}
	}
}

// Width returns the number of columns in the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *Grid) Height() int {
	return g.height
}

// InBounds checks if an x/y position is within grid bounds
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// GetCell returns the cell at the given position, or nil if out of bounds
func (g *Grid) GetCell(x, y int) *Cell {
	if !g.InBounds(x, y) {
		return nil
	}
	return g.cells[y*g.width+x]
}

// GetCellRelative returns the cell adjacent to c in the specified direction
func (g *Grid) GetCellRelative(c *Cell, dir Direction) *Cell {
	if c == nil || !dir.IsValid() {
		return nil
	}
	dx, dy := dir.Delta()
	return g.GetCell(c.X+dx, c.Y+dy)
}

// SetWall makes the cell at x/y opaque. Returns false if out of bounds.
func (g *Grid) SetWall(x, y int) bool {
	cell := g.GetCell(x, y)
	if cell == nil {
		return false
	}
	cell.Transparent = false
	cell.Name = "Wall"
	return true
}

// SetFloor makes the cell at x/y transparent. Returns false if out of bounds.
func (g *Grid) SetFloor(x, y int) bool {
	cell := g.GetCell(x, y)
	if cell == nil {
		return false
	}
	cell.Transparent = true
	cell.Name = "Floor"
	return true
}

// SetReflectivity sets the reflectivity of the cell at x/y. Returns false if out of bounds.
func (g *Grid) SetReflectivity(x, y int, r float64) bool {
	cell := g.GetCell(x, y)
	if cell == nil {
		return false
	}
	cell.SetReflectivity(r)
	return true
}

// LightPasses is the light-transmission predicate for this grid. Cells
// outside the grid block light.
func (g *Grid) LightPasses(x, y int) bool {
	cell := g.GetCell(x, y)
	return cell != nil && cell.Transparent
}

// Reflectivity is the reflectivity predicate for this grid. Cells outside
// the grid reflect nothing.
func (g *Grid) Reflectivity(x, y int) float64 {
	cell := g.GetCell(x, y)
	if cell == nil {
		return 0
	}
	return cell.Reflectivity
}

// ForEachCell iterates over all cells in row-major order
func (g *Grid) ForEachCell(fn func(x, y int, cell *Cell)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(x, y, g.cells[y*g.width+x])
		}
	}
}

// CountTransparent returns the number of cells that let light through
func (g *Grid) CountTransparent() int {
	n := 0
	for _, c := range g.cells {
		if c.Transparent {
			n++
		}
	}
	return n
}

// Validate checks the grid for common issues and returns an error description or empty string if valid
func (g *Grid) Validate() string {
	if g.width <= 0 || g.height <= 0 {
		return "Grid has invalid dimensions"
	}

	if len(g.cells) != g.width*g.height {
		return fmt.Sprintf("Grid has %d cells, want %d", len(g.cells), g.width*g.height)
	}

	for i, c := range g.cells {
		if c == nil {
			return fmt.Sprintf("Grid cell %d is nil", i)
		}
		if c.Reflectivity < 0 || c.Reflectivity > 1 {
			return fmt.Sprintf("Cell %d,%d has reflectivity %v outside [0,1]", c.X, c.Y, c.Reflectivity)
		}
	}

	return ""
}
