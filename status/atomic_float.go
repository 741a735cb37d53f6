package status

import (
	"math"
	"sync/atomic"
)

// Gauge is an atomic float64 for values that move both ways (speed, interval)
// Zero value is ready to use
type Gauge struct {
	bits atomic.Uint64
}

// Set stores a value
func (g *Gauge) Set(val float64) {
	g.bits.Store(math.Float64bits(val))
}

// Get loads the value
func (g *Gauge) Get() float64 {
	return math.Float64frombits(g.bits.Load())
}
