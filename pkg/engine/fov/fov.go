// Package fov computes which grid cells are visible from an origin.
//
// Three shadowcasting variants share the FOV interface:
//
//   - Discrete scans concentric rings and tracks shadows as integer degree
//     intervals.
//   - Precise scans the same rings but tracks shadows as exact rational arcs.
//     It is the reference for correctness.
//   - Recursive casts slopes through eight octants, and can also scan a 180 or
//     90 degree cone.
//
// All of them consult a caller-supplied LightPasses predicate and never store
// the grid themselves.
package fov

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"lightcast/pkg/engine/world"
)

// LightPasses reports whether light passes through the cell at x/y. It must
// be stable for the duration of one Compute call.
type LightPasses func(x, y int) bool

// Visitor receives one discovered cell: its coordinate, its ring (distance
// step from the origin) and its visibility, which is 1 for a visible cell.
type Visitor = func(x, y, ring int, visibility float64)

// Visit is one discovered cell, the record form of a Visitor call
type Visit struct {
	X          int
	Y          int
	Ring       int
	Visibility float64
}

// Point returns the visited coordinate
func (v Visit) Point() world.Point {
	return world.Point{X: v.X, Y: v.Y}
}

// FOV is a field-of-view algorithm.
//
// Compute reports the origin at ring 0 and then every visible cell within
// radius, each at most once, in an order that is deterministic for a given
// variant and input. A negative radius reports nothing. Visits is the same scan
// as a lazy sequence: stopping the range loop stops the scan, and every new
// range restarts it from scratch.
type FOV interface {
	Compute(x, y, radius int, visit Visitor)
	Visits(x, y, radius int) iter.Seq[Visit]
}

// Options configures the ring shape used by the ring-based variants
type Options struct {
	Topology world.Topology
}

// DefaultOptions returns the 8-topology configuration
func DefaultOptions() Options {
	return Options{Topology: world.Topology8}
}

func (o Options) normalized() Options {
	if !o.Topology.IsValid() {
		o.Topology = world.Topology8
	}
	return o
}

// base is the read-only context shared by every variant
type base struct {
	lightPasses LightPasses
	topology    world.Topology
}

func newBase(lightPasses LightPasses, opts Options) base {
	opts = opts.normalized()
	return base{lightPasses: lightPasses, topology: opts.Topology}
}

// passes treats a missing predicate as a world where nothing lets light through
func (b base) passes(x, y int) bool {
	return b.lightPasses != nil && b.lightPasses(x, y)
}

// Topology returns the configured topology
func (b base) Topology() world.Topology {
	return b.topology
}

// scanFunc is a push iterator over one FOV computation
type scanFunc func(yield func(Visit) bool)

func (s scanFunc) compute(visit Visitor) {
	if visit == nil {
		return
	}
	s(func(v Visit) bool {
		visit(v.X, v.Y, v.Ring, v.Visibility)
		return true
	})
}

func (s scanFunc) seq() iter.Seq[Visit] {
	return iter.Seq[Visit](s)
}

// Collect runs f and returns every visit keyed by coordinate
func Collect(f FOV, x, y, radius int) map[world.Point]Visit {
	out := make(map[world.Point]Visit)
	for v := range f.Visits(x, y, radius) {
		out[v.Point()] = v
	}
	return out
}

// Kind names an FOV variant
type Kind string

// Known variants
const (
	KindDiscrete  Kind = "discrete"
	KindPrecise   Kind = "precise"
	KindRecursive Kind = "recursive"
)

// Kinds returns every known variant
func Kinds() []Kind {
	return []Kind{KindDiscrete, KindPrecise, KindRecursive}
}

// ErrUnknownKind is returned by ParseKind and New for an unrecognised variant
var ErrUnknownKind = errors.New("unknown fov kind")

// ParseKind maps a case-insensitive name to a Kind
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds() {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// New builds the variant named by kind
func New(kind Kind, lightPasses LightPasses, opts Options) (FOV, error) {
	switch kind {
	case KindDiscrete:
		return NewDiscrete(lightPasses, opts), nil
	case KindPrecise:
		return NewPrecise(lightPasses, opts), nil
	case KindRecursive:
		return NewRecursive(lightPasses, opts), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}
