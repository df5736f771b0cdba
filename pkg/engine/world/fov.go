package world

// Scanner is the part of a field-of-view algorithm RevealFOV needs. The
// implementations live in package fov.
type Scanner interface {
	Compute(x, y, radius int, visit func(x, y, ring int, visibility float64))
}

// RevealFOV clears the Visible flag on every cell, then marks every cell the
// scanner reports from x/y as Visible and Discovered. It returns the number of
// in-bounds cells revealed.
func RevealFOV(grid *Grid, scanner Scanner, x, y, radius int) int {
	if grid == nil || scanner == nil {
		return 0
	}

	grid.ForEachCell(func(_, _ int, cell *Cell) {
		cell.Visible = false
	})

	revealed := 0
	scanner.Compute(x, y, radius, func(cx, cy, _ int, visibility float64) {
		if visibility <= 0 {
			return
		}
		cell := grid.GetCell(cx, cy)
		if cell == nil {
			return
		}
		if !cell.Visible {
			revealed++
		}
		cell.Visible = true
		cell.Discovered = true
	})
	return revealed
}
