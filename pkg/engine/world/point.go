package world

import "strconv"

// Point is an integer grid coordinate. It is comparable and used as the key
// of every coordinate map and cache in the engine.
type Point struct {
	X int
	Y int
}

// Pt is shorthand for Point{x, y}
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by q
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the offset from q to p
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale multiplies both components by k
func (p Point) Scale(k int) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// String formats the point as "x,y" for display. It is never used for identity.
func (p Point) String() string {
	return strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y)
}

// Hash mixes both components into a single 64-bit value for hash tables
// that need an explicit hash function.
func (p Point) Hash() uint64 {
	return uint64(uint32(p.X))<<32 | uint64(uint32(p.Y))
}
