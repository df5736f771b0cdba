package fov

import (
	"iter"
	"slices"
)

// Precise is ring-based shadowcasting with shadows kept as exact fractions of
// a full turn. Comparisons cross-multiply, so there is no rounding anywhere.
type Precise struct {
	base
}

// NewPrecise creates a precise shadowcaster over lightPasses
func NewPrecise(lightPasses LightPasses, opts Options) *Precise {
	return &Precise{base: newBase(lightPasses, opts)}
}

// Compute implements FOV
func (p *Precise) Compute(x, y, radius int, visit Visitor) {
	p.scan(x, y, radius).compute(visit)
}

// Visits implements FOV
func (p *Precise) Visits(x, y, radius int) iter.Seq[Visit] {
	return p.scan(x, y, radius).seq()
}

func (p *Precise) scan(x, y, radius int) scanFunc {
	return func(yield func(Visit) bool) {
		if radius < 0 {
			return
		}
		if !yield(Visit{X: x, Y: y, Ring: 0, Visibility: 1}) {
			return
		}
		if !p.passes(x, y) {
			return
		}

		var shadows arcShadows
		for r := 1; r <= radius; r++ {
			cells := ring(p.topology, x, y, r)
			n := len(cells)

			for i, c := range cells {
				// Shifted half a cell back so cell 0 straddles angle zero.
				a1 := arc{num: 2*n - 1, den: 2 * n}
				if i > 0 {
					a1 = arc{num: 2*i - 1, den: 2 * n}
				}
				a2 := arc{num: 2*i + 1, den: 2 * n}

				blocks := !p.passes(c.X, c.Y)
				if shadows.check(a1, a2, blocks) {
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

// arc is the fraction num/den of a full turn
type arc struct {
	num int
	den int
}

// cmp returns the sign of a - b
func (a arc) cmp(b arc) int {
	d := a.num*b.den - b.num*a.den
	switch {
	case d < 0:
		return -1
	case d > 0:
		return 1
	default:
		return 0
	}
}

// arcShadows is a sorted list of shadow boundaries, read as alternating
// [start, end] pairs.
type arcShadows []arc

func (s arcShadows) full() bool {
	return len(s) == 2 && s[0].num == 0 && s[1].num == s[1].den
}

// check reports whether the arc [a1, a2] is at least partly outside the
// current shadows and, when blocks is set, merges it into them. An arc whose
// start lies past its end wraps through zero and is checked as two halves.
func (s *arcShadows) check(a1, a2 arc, blocks bool) bool {
	if a1.num > a2.num {
		v1 := s.check(a1, arc{num: a1.den, den: a1.den}, blocks)
		v2 := s.check(arc{num: 0, den: 1}, a2, blocks)
		return v1 || v2
	}

	data := *s

	// index1: first boundary >= a1
	index1, edge1 := 0, false
	for index1 < len(data) {
		if c := data[index1].cmp(a1); c >= 0 {
			if c == 0 && index1%2 == 0 {
				edge1 = true
			}
			break
		}
		index1++
	}

	// index2: last boundary <= a2
	index2, edge2 := len(data)-1, false
	for ; index2 >= 0; index2-- {
		if c := a2.cmp(data[index2]); c >= 0 {
			if c == 0 && index2%2 == 1 {
				edge2 = true
			}
			break
		}
	}

	visible := true
	switch {
	case index1 == index2 && (edge1 || edge2):
		// inside one shadow, touching one of its edges
		visible = false
	case edge1 && edge2 && index1+1 == index2 && index2%2 == 1:
		// exactly an existing shadow
		visible = false
	case index1 > index2 && index1%2 == 1:
		// strictly inside one shadow
		visible = false
	}

	if !visible || !blocks {
		return visible
	}

	remove := index2 - index1 + 1
	switch {
	case remove%2 == 1 && index1%2 == 1:
		// first edge inside a shadow, second outside
		*s = slices.Replace(data, index1, index1+remove, a2)
	case remove%2 == 1:
		// second edge inside a shadow, first outside
		*s = slices.Replace(data, index1, index1+remove, a1)
	case index1%2 == 1:
		// both edges inside shadows
		*s = slices.Replace(data, index1, index1+remove)
	default:
		// both edges outside shadows
		*s = slices.Replace(data, index1, index1+remove, a1, a2)
	}
	return true
}
