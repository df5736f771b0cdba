package fov

import "lightcast/pkg/engine/world"

// ringShape describes how to walk one ring for a topology
type ringShape struct {
	dirs        []world.Point
	countFactor int
	start       world.Point
}

var (
	ring4 = ringShape{
		dirs:        []world.Point{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}},
		countFactor: 1,
		start:       world.Point{X: 0, Y: 1},
	}
	ring6 = ringShape{
		dirs:        world.Topology6.Dirs(),
		countFactor: 1,
		start:       world.Point{X: -1, Y: 1},
	}
	ring8 = ringShape{
		dirs:        world.Topology4.Dirs(),
		countFactor: 2,
		start:       world.Point{X: -1, Y: 1},
	}
)

func shapeFor(t world.Topology) ringShape {
	switch t {
	case world.Topology4:
		return ring4
	case world.Topology6:
		return ring6
	default:
		return ring8
	}
}

// ring returns the cells at distance r from cx/cy in angular order. The walk
// starts at the topology's start offset scaled by r and follows the direction
// table, r*countFactor steps per side.
func ring(t world.Topology, cx, cy, r int) []world.Point {
	shape := shapeFor(t)
	out := make([]world.Point, 0, len(shape.dirs)*r*shape.countFactor)

	p := world.Point{X: cx + shape.start.X*r, Y: cy + shape.start.Y*r}
	for _, d := range shape.dirs {
		for j := 0; j < r*shape.countFactor; j++ {
			out = append(out, p)
			p = p.Add(d)
		}
	}
	return out
}
