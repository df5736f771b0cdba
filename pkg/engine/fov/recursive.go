package fov

import (
	"iter"

	"github.com/zyedidia/generic/mapset"

	"lightcast/pkg/engine/world"
)

// octants maps canonical (column, row) offsets to world offsets for each of
// the eight octants:
//
//	worldX = x + dx*xx + dy*xy
//	worldY = y + dx*yx + dy*yy
//
// Octant d spans from direction d clockwise to direction d+1, so octants d
// and d-1 together form the 90 degree cone centred on direction d.
var octants = [world.DirectionCount][4]int{
	{-1, 0, 0, 1},
	{0, -1, 1, 0},
	{0, -1, -1, 0},
	{-1, 0, 0, -1},
	{1, 0, 0, -1},
	{0, 1, -1, 0},
	{0, 1, 1, 0},
	{1, 0, 0, 1},
}

var allOctants = []int{0, 1, 2, 3, 4, 5, 6, 7}

// Recursive is octant-based recursive shadowcasting. It only models square
// grids; a hexagonal topology in Options is ignored.
type Recursive struct {
	base
}

// NewRecursive creates a recursive shadowcaster over lightPasses
func NewRecursive(lightPasses LightPasses, opts Options) *Recursive {
	return &Recursive{base: newBase(lightPasses, opts)}
}

// Compute implements FOV over the full circle
func (r *Recursive) Compute(x, y, radius int, visit Visitor) {
	r.scan(x, y, radius, allOctants).compute(visit)
}

// Visits implements FOV over the full circle
func (r *Recursive) Visits(x, y, radius int) iter.Seq[Visit] {
	return r.scan(x, y, radius, allOctants).seq()
}

// Compute180 scans the half circle facing dir
func (r *Recursive) Compute180(x, y, radius int, dir world.Direction, visit Visitor) {
	r.scan(x, y, radius, octants180(dir)).compute(visit)
}

// Visits180 is the sequence form of Compute180
func (r *Recursive) Visits180(x, y, radius int, dir world.Direction) iter.Seq[Visit] {
	return r.scan(x, y, radius, octants180(dir)).seq()
}

// Compute90 scans the quarter circle facing dir
func (r *Recursive) Compute90(x, y, radius int, dir world.Direction, visit Visitor) {
	r.scan(x, y, radius, octants90(dir)).compute(visit)
}

// Visits90 is the sequence form of Compute90
func (r *Recursive) Visits90(x, y, radius int, dir world.Direction) iter.Seq[Visit] {
	return r.scan(x, y, radius, octants90(dir)).seq()
}

// octants180 returns the four octants around dir, or none for an invalid direction
func octants180(dir world.Direction) []int {
	if !dir.IsValid() {
		return nil
	}
	d := int(dir)
	return []int{(d + 6) % 8, (d + 7) % 8, d, (d + 1) % 8}
}

// octants90 returns the two octants around dir, or none for an invalid direction
func octants90(dir world.Direction) []int {
	if !dir.IsValid() {
		return nil
	}
	d := int(dir)
	return []int{d, (d + 7) % 8}
}

func (r *Recursive) scan(x, y, radius int, which []int) scanFunc {
	return func(yield func(Visit) bool) {
		if radius < 0 {
			return
		}
		if !yield(Visit{X: x, Y: y, Ring: 0, Visibility: 1}) {
			return
		}

		s := &octantScan{
			base:  r.base,
			x:     x,
			y:     y,
			yield: yield,
			seen:  mapset.New[world.Point](),
		}
		s.seen.Put(world.Point{X: x, Y: y})

		for _, o := range which {
			s.oct = octants[o]
			// Radius widened by one so coverage matches the ring variants.
			if !s.cast(1, 1.0, 0.0, radius+1) {
				return
			}
		}
	}
}

// octantScan is the state of one Compute call. Axis and diagonal cells belong
// to two octants; seen keeps them from being reported twice.
type octantScan struct {
	base
	x, y  int
	oct   [4]int
	yield func(Visit) bool
	seen  mapset.Set[world.Point]
}

func (s *octantScan) report(x, y, ring int) bool {
	p := world.Point{X: x, Y: y}
	if s.seen.Has(p) {
		return true
	}
	s.seen.Put(p)
	return s.yield(Visit{X: x, Y: y, Ring: ring, Visibility: 1})
}

// cast scans rows from row outwards while the visible slope interval
// [start, end] is non-empty. It returns false once the consumer stops.
func (s *octantScan) cast(row int, start, end float64, radius int) bool {
	if start < end {
		return true
	}
	xx, xy, yx, yy := s.oct[0], s.oct[1], s.oct[2], s.oct[3]

	for i := row; i <= radius; i++ {
		dy := -i
		blocked := false
		newStart := 0.0

		for dx := -i; dx <= 0; dx++ {
			mapX := s.x + dx*xx + dy*xy
			mapY := s.y + dx*yx + dy*yy

			slopeStart := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			slopeEnd := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			// not yet at the left edge of the interval
			if slopeEnd > start {
				continue
			}
			// past the right edge
			if slopeStart < end {
				break
			}

			if dx*dx+dy*dy < radius*radius {
				if !s.report(mapX, mapY, i) {
					return false
				}
			}

			opaque := !s.passes(mapX, mapY)
			switch {
			case !blocked && opaque && i < radius:
				// first wall of a run: cast around it
				blocked = true
				if !s.cast(i+1, start, slopeStart, radius) {
					return false
				}
				newStart = slopeEnd
			case blocked && opaque:
				newStart = slopeEnd
			case blocked:
				// wall run ended
				blocked = false
				start = newStart
			}
		}
		if blocked {
			break
		}
	}
	return true
}

// Cone returns r narrowed to a fixed view facing dir. degrees selects the
// width: 90 or 180; anything else is the full circle.
func (r *Recursive) Cone(dir world.Direction, degrees int) FOV {
	return cone{r: r, dir: dir, degrees: degrees}
}

type cone struct {
	r       *Recursive
	dir     world.Direction
	degrees int
}

func (c cone) octants() []int {
	switch c.degrees {
	case 90:
		return octants90(c.dir)
	case 180:
		return octants180(c.dir)
	default:
		return allOctants
	}
}

func (c cone) Compute(x, y, radius int, visit Visitor) {
	c.r.scan(x, y, radius, c.octants()).compute(visit)
}

func (c cone) Visits(x, y, radius int) iter.Seq[Visit] {
	return c.r.scan(x, y, radius, c.octants()).seq()
}
