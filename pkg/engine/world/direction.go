package world

// Direction is one of the eight compass directions, numbered clockwise from
// North. The numbering matches the octant table of the recursive
// shadowcaster, so a facing direction selects octants directly.
type Direction int

// Direction constants
const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// DirectionCount is the number of valid directions
const DirectionCount = 8

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}
}

// CardinalDirections returns the four axis-aligned directions
func CardinalDirections() []Direction {
	return []Direction{North, East, South, West}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case NorthEast:
		return "NorthEast"
	case East:
		return "East"
	case SouthEast:
		return "SouthEast"
	case South:
		return "South"
	case SouthWest:
		return "SouthWest"
	case West:
		return "West"
	case NorthWest:
		return "NorthWest"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is one of the eight compass points
func (d Direction) IsValid() bool {
	return d >= North && d <= NorthWest
}

// IsCardinal returns true for North, East, South and West
func (d Direction) IsCardinal() bool {
	return d.IsValid() && d%2 == 0
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	if !d.IsValid() {
		return d
	}
	return (d + 4) % DirectionCount
}

// Rotate turns the direction by steps eighths of a turn, clockwise for
// positive steps.
func (d Direction) Rotate(steps int) Direction {
	if !d.IsValid() {
		return d
	}
	n := (int(d) + steps) % DirectionCount
	if n < 0 {
		n += DirectionCount
	}
	return Direction(n)
}

// RotateCW returns the next direction clockwise
func (d Direction) RotateCW() Direction {
	return d.Rotate(1)
}

// RotateCCW returns the next direction counter-clockwise
func (d Direction) RotateCCW() Direction {
	return d.Rotate(-1)
}

// Delta returns the x and y offsets for this direction. Y grows southwards.
func (d Direction) Delta() (dx, dy int) {
	if !d.IsValid() {
		return 0, 0
	}
	v := dirs8[d]
	return v.X, v.Y
}

// Vector returns Delta as a Point
func (d Direction) Vector() Point {
	dx, dy := d.Delta()
	return Point{X: dx, Y: dy}
}

// ParseDirection accepts the long names returned by String as well as the
// short compass abbreviations (n, ne, e, ...).
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "n", "N", "north", "North":
		return North, true
	case "ne", "NE", "northeast", "NorthEast":
		return NorthEast, true
	case "e", "E", "east", "East":
		return East, true
	case "se", "SE", "southeast", "SouthEast":
		return SouthEast, true
	case "s", "S", "south", "South":
		return South, true
	case "sw", "SW", "southwest", "SouthWest":
		return SouthWest, true
	case "w", "W", "west", "West":
		return West, true
	case "nw", "NW", "northwest", "NorthWest":
		return NorthWest, true
	default:
		return North, false
	}
}
