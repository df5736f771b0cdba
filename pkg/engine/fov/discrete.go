package fov

import (
	"iter"
	"math"
	"slices"
)

// Discrete is ring-based shadowcasting with shadows kept as integer degree
// intervals. Interval ends are widened to whole degrees, so it can disagree
// with Precise on cells that only graze a shadow edge.
type Discrete struct {
	base
}

// NewDiscrete creates a discrete shadowcaster over lightPasses
func NewDiscrete(lightPasses LightPasses, opts Options) *Discrete {
	return &Discrete{base: newBase(lightPasses, opts)}
}

// Compute implements FOV
func (d *Discrete) Compute(x, y, radius int, visit Visitor) {
	d.scan(x, y, radius).compute(visit)
}

// Visits implements FOV
func (d *Discrete) Visits(x, y, radius int) iter.Seq[Visit] {
	return d.scan(x, y, radius).seq()
}

func (d *Discrete) scan(x, y, radius int) scanFunc {
	return func(yield func(Visit) bool) {
		if radius < 0 {
			return
		}
		if !yield(Visit{X: x, Y: y, Ring: 0, Visibility: 1}) {
			return
		}
		// Standing inside an opaque cell: nothing else can be seen.
		if !d.passes(x, y) {
			return
		}

		var shadows degreeShadows
		for r := 1; r <= radius; r++ {
			cells := ring(d.topology, x, y, r)
			step := 360 / float64(len(cells))

			for i, c := range cells {
				a := step * (float64(i) - 0.5)
				b := a + step

				blocks := !d.passes(c.X, c.Y)
				if shadows.check(int(math.Floor(a)), int(math.Ceil(b)), blocks) {
					if !yield(Visit{X: c.X, Y: c.Y, Ring: r, Visibility: 1}) {
						return
					}
				}

				if shadows.full() {
					return
				}
			}
		}
	}
}

// degreeShadows is a sorted list of shadow boundaries in degrees, read as
// alternating [start, end) pairs.
type degreeShadows []int

func (s degreeShadows) full() bool {
	return len(s) == 2 && s[0] == 0 && s[1] == 360
}

// check reports whether any part of [a, b) is outside the current shadows and,
// when blocks is set, merges the interval into them. Intervals starting below
// zero wrap around to the end of the circle.
func (s *degreeShadows) check(a, b int, blocks bool) bool {
	if a < 0 {
		v1 := s.check(0, b, blocks)
		v2 := s.check(360+a, 360, blocks)
		return v1 || v2
	}

	data := *s
	index := 0
	for index < len(data) && data[index] < a {
		index++
	}

	// Beyond every known shadow.
	if index == len(data) {
		if blocks {
			*s = append(data, a, b)
		}
		return true
	}

	count := 0

	// Starts inside an existing shadow or on its end boundary.
	if index%2 == 1 {
		for index < len(data) && data[index] < b {
			index++
			count++
		}

		if count == 0 {
			return false
		}

		if blocks {
			if count%2 == 1 {
				*s = slices.Replace(data, index-count, index, b)
			} else {
				*s = slices.Replace(data, index-count, index)
			}
		}
		return true
	}

	// Starts outside every shadow or on a start boundary.
	for index < len(data) && data[index] < b {
		index++
		count++
	}

	if count == 1 && a == data[index-count] {
		return false
	}

	if blocks {
		if count%2 == 1 {
			*s = slices.Replace(data, index-count, index, a)
		} else {
			*s = slices.Replace(data, index-count, index, a, b)
		}
	}
	return true
}
