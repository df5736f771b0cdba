package lighting

import "math"

// Default option values
const (
	DefaultPasses            = 1
	DefaultEmissionThreshold = 100
	DefaultRange             = 10
	DefaultCacheSize         = 1024
)

// Options configures a Lighting engine
type Options struct {
	// Passes is the number of emission passes. 1 is plain FOV lighting from
	// the light sources; more passes let reflective cells re-emit.
	Passes int

	// EmissionThreshold is the intensity a reflected colour must exceed for
	// its cell to emit in the next pass.
	EmissionThreshold float64

	// Range is the maximum light range, also the FOV radius.
	Range int

	// CacheSize bounds how many emitter origins keep cached form factors.
	// Zero or negative means DefaultCacheSize.
	CacheSize int
}

// DefaultOptions returns {Passes: 1, EmissionThreshold: 100, Range: 10}
func DefaultOptions() Options {
	return Options{
		Passes:            DefaultPasses,
		EmissionThreshold: DefaultEmissionThreshold,
		Range:             DefaultRange,
		CacheSize:         DefaultCacheSize,
	}
}

// Valid reports whether Compute can do any work with these options. Invalid
// options are not an error: Compute simply lights nothing.
func (o Options) Valid() bool {
	return o.Passes >= 1 && o.Range > 0 && !math.IsNaN(o.EmissionThreshold)
}

func (o Options) cacheSize() int {
	if o.CacheSize <= 0 {
		return DefaultCacheSize
	}
	return o.CacheSize
}
