package world

// Topology is the neighbourhood shape of the grid: 4 (orthogonal), 8
// (orthogonal and diagonal) or 6 (hexagonal, doubled-width coordinates).
type Topology int

// Supported topologies
const (
	Topology4 Topology = 4
	Topology6 Topology = 6
	Topology8 Topology = 8
)

// Direction tables. Ordering is significant: ring enumeration walks them in
// this order.
var (
	dirs4 = []Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	dirs8 = []Point{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	dirs6 = []Point{{-1, -1}, {1, -1}, {2, 0}, {1, 1}, {-1, 1}, {-2, 0}}
)

// IsValid reports whether t is 4, 6 or 8
func (t Topology) IsValid() bool {
	return t == Topology4 || t == Topology6 || t == Topology8
}

// Dirs returns a copy of the direction table for the topology, or nil for an
// unknown topology.
func (t Topology) Dirs() []Point {
	var src []Point
	switch t {
	case Topology4:
		src = dirs4
	case Topology6:
		src = dirs6
	case Topology8:
		src = dirs8
	default:
		return nil
	}
	out := make([]Point, len(src))
	copy(out, src)
	return out
}

// Neighbors returns the cells adjacent to p under the topology
func (t Topology) Neighbors(p Point) []Point {
	dirs := t.Dirs()
	out := make([]Point, 0, len(dirs))
	for _, d := range dirs {
		out = append(out, p.Add(d))
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Chebyshev returns the chessboard distance between a and b
func Chebyshev(a, b Point) int {
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)
	if dx > dy {
		return dx
	}
	return dy
}

// Manhattan returns the taxicab distance between a and b
func Manhattan(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// EuclideanSq returns the squared straight-line distance between a and b
func EuclideanSq(a, b Point) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx + dy*dy
}

// Distance returns the step distance implied by the topology: Manhattan for
// 4, Chebyshev for 8, and hex steps for 6 (where x is doubled).
func Distance(t Topology, a, b Point) int {
	switch t {
	case Topology4:
		return Manhattan(a, b)
	case Topology6:
		dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)
		if dx <= dy {
			return dy
		}
		return dy + (dx-dy)/2
	default:
		return Chebyshev(a, b)
	}
}
