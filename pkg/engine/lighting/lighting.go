// Package lighting computes coloured light from point sources on top of any
// field-of-view algorithm. With more than one pass it approximates radiosity:
// lit cells with enough reflected intensity become emitters themselves.
//
// A Lighting value caches per-origin form factors and per-cell reflectivity.
// Call Reset whenever the map's transparency or reflectivity changes. A
// Lighting value is not safe for concurrent use.
package lighting

import (
	"fmt"
	"log/slog"

	g "github.com/zyedidia/generic"
	"github.com/zyedidia/generic/cache"
	"github.com/zyedidia/generic/hashmap"
	"github.com/zyedidia/generic/mapset"

	"lightcast/pkg/engine/fov"
	"lightcast/pkg/engine/world"
)

// Reflectivity returns how much incident light the cell at x/y re-emits, 0..1
type Reflectivity func(x, y int) float64

// formFactor is the share of an emitter's light that reaches target
type formFactor struct {
	target world.Point
	factor float64
}

// newPointMap returns an open-addressed map keyed by coordinate. Unlike a Go
// map its iteration order depends only on the sequence of writes.
func newPointMap[V any](capacity int) *hashmap.Map[world.Point, V] {
	return hashmap.New[world.Point, V](uint64(capacity), g.Equals[world.Point], hashPoint)
}

func hashPoint(p world.Point) uint64 {
	return g.HashUint64(p.Hash())
}

// Lighting is a multi-pass lighting engine
type Lighting struct {
	reflectivity Reflectivity
	opts         Options
	fov          fov.FOV

	lights *hashmap.Map[world.Point, Color]

	reflectivityCache map[world.Point]float64
	fovCache          *cache.Cache[world.Point, []formFactor]
}

// New creates a lighting engine. Set an FOV with SetFOV before computing.
func New(reflectivity Reflectivity, opts Options) *Lighting {
	l := &Lighting{
		reflectivity:      reflectivity,
		opts:              opts,
		lights:            newPointMap[Color](8),
		reflectivityCache: make(map[world.Point]float64),
	}
	l.fovCache = l.newFOVCache()
	return l
}

func (l *Lighting) newFOVCache() *cache.Cache[world.Point, []formFactor] {
	c := cache.New[world.Point, []formFactor](l.opts.cacheSize())
	c.SetEvictCallback(func(origin world.Point, ff []formFactor) {
		Logger().Debug("fov cache evicted origin", slog.String("origin", origin.String()), slog.Int("cells", len(ff)))
	})
	return c
}

// Options returns the current options
func (l *Lighting) Options() Options {
	return l.opts
}

// SetOptions replaces the options. Changing Range discards cached form factors.
func (l *Lighting) SetOptions(opts Options) *Lighting {
	rangeChanged := opts.Range != l.opts.Range
	l.opts = opts
	if rangeChanged {
		l.fovCache = l.newFOVCache()
		return l
	}
	l.fovCache.Resize(l.opts.cacheSize())
	return l
}

// SetFOV sets the field-of-view algorithm and discards cached form factors
func (l *Lighting) SetFOV(f fov.FOV) *Lighting {
	l.fov = f
	l.fovCache = l.newFOVCache()
	return l
}

// SetLight places a light at x/y, replacing any light already there. The zero
// colour removes the light.
func (l *Lighting) SetLight(x, y int, c Color) *Lighting {
	p := world.Point{X: x, Y: y}
	if c.IsZero() {
		l.lights.Remove(p)
		return l
	}
	l.lights.Put(p, c)
	return l
}

// SetLightString is SetLight with a colour parsed by ParseColor
func (l *Lighting) SetLightString(x, y int, s string) error {
	c, err := ParseColor(s)
	if err != nil {
		return fmt.Errorf("light at %d,%d: %w", x, y, err)
	}
	l.SetLight(x, y, c)
	return nil
}

// RemoveLight removes the light at x/y, if any
func (l *Lighting) RemoveLight(x, y int) *Lighting {
	l.lights.Remove(world.Point{X: x, Y: y})
	return l
}

// ClearLights removes every light source
func (l *Lighting) ClearLights() *Lighting {
	l.lights.Clear()
	return l
}

// Lights returns the number of light sources
func (l *Lighting) Lights() int {
	return l.lights.Size()
}

// Reset discards cached reflectivity and form factors. Call it whenever the
// underlying map changes; results are unaffected, only cost.
func (l *Lighting) Reset() *Lighting {
	l.reflectivityCache = make(map[world.Point]float64)
	l.fovCache = l.newFOVCache()
	Logger().Debug("lighting caches reset")
	return l
}

// CachedOrigins returns how many emitter origins have cached form factors
func (l *Lighting) CachedOrigins() int {
	return l.fovCache.Size()
}

// CachedReflectivity returns how many cells have a cached reflectivity
func (l *Lighting) CachedReflectivity() int {
	return len(l.reflectivityCache)
}

// Compute runs every pass and calls cb once per lit cell with its final
// colour. The call order is deterministic for identical inputs.
func (l *Lighting) Compute(cb func(x, y int, c Color)) {
	if cb == nil {
		return
	}
	l.compute().Each(func(p world.Point, c Color) {
		cb(p.X, p.Y, c)
	})
}

// Lit runs Compute and collects the result into a map
func (l *Lighting) Lit() map[world.Point]Color {
	out := make(map[world.Point]Color)
	l.Compute(func(x, y int, c Color) {
		out[world.Point{X: x, Y: y}] = c
	})
	return out
}

func (l *Lighting) compute() *hashmap.Map[world.Point, Color] {
	lit := newPointMap[Color](64)
	if !l.opts.Valid() || l.fov == nil || l.lights.Size() == 0 {
		return lit
	}

	done := mapset.New[world.Point]()
	emitters := newPointMap[Color](atLeastOne(l.lights.Size()))
	l.lights.Each(func(p world.Point, c Color) {
		emitters.Put(p, c)
	})

	for pass := 1; pass <= l.opts.Passes; pass++ {
		emitted := l.emitLight(emitters, lit, done)
		Logger().Debug("lighting pass",
			slog.Int("pass", pass),
			slog.Int("emitters", emitted),
			slog.Int("lit", lit.Size()),
		)

		if pass == l.opts.Passes {
			break
		}
		emitters = l.computeEmitters(lit, done)
		if emitters.Size() == 0 {
			break
		}
	}
	return lit
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// emitLight adds the light of every pending emitter to lit and marks the
// emitter done. It returns how many cells emitted.
func (l *Lighting) emitLight(emitters, lit *hashmap.Map[world.Point, Color], done mapset.Set[world.Point]) int {
	n := 0
	emitters.Each(func(p world.Point, c Color) {
		if done.Has(p) {
			return
		}
		l.emitFromCell(p, c, lit)
		done.Put(p)
		n++
	})
	return n
}

// computeEmitters picks the lit cells that reflect enough light to emit in
// the next pass
func (l *Lighting) computeEmitters(lit *hashmap.Map[world.Point, Color], done mapset.Set[world.Point]) *hashmap.Map[world.Point, Color] {
	next := newPointMap[Color](16)
	lit.Each(func(p world.Point, c Color) {
		if done.Has(p) {
			return
		}
		refl := l.cellReflectivity(p)
		if refl == 0 {
			return
		}
		emission := c.Scale(refl).Round()
		if emission.Intensity() > l.opts.EmissionThreshold {
			next.Put(p, emission)
		}
	})
	return next
}

func (l *Lighting) cellReflectivity(p world.Point) float64 {
	if r, ok := l.reflectivityCache[p]; ok {
		return r
	}
	r := 0.0
	if l.reflectivity != nil {
		r = l.reflectivity(p.X, p.Y)
	}
	l.reflectivityCache[p] = r
	return r
}

// emitFromCell adds c, weighted by each target's form factor, to lit
func (l *Lighting) emitFromCell(origin world.Point, c Color, lit *hashmap.Map[world.Point, Color]) {
	for _, ff := range l.formFactors(origin) {
		cur, _ := lit.Get(ff.target)
		lit.Put(ff.target, cur.Add(c.Scale(ff.factor).Round()))
	}
}

// formFactors returns the cached form factors for origin, computing them on a
// miss. Unreached and zero-weight cells are omitted.
func (l *Lighting) formFactors(origin world.Point) []formFactor {
	if ff, ok := l.fovCache.Get(origin); ok {
		return ff
	}

	rng := l.opts.Range
	var ff []formFactor
	l.fov.Compute(origin.X, origin.Y, rng, func(x, y, ring int, visibility float64) {
		f := visibility * (1 - float64(ring)/float64(rng))
		if f == 0 {
			return
		}
		ff = append(ff, formFactor{target: world.Point{X: x, Y: y}, factor: f})
	})

	l.fovCache.Put(origin, ff)
	return ff
}
