package effect

import (
	"math"
	"math/rand/v2"
	"time"
)

// Rand is the subset of *rand.Rand the effect draws from.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// NewRand returns a PCG-backed source. A zero seed uses the clock.
func NewRand(seed uint64) Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// randRange returns a uniform value in [min, max).
func randRange(r Rand, min, max float64) float64 {
	return min + r.Float64()*(max-min)
}

// jitter returns a uniform offset in [-span/2, span/2).
func jitter(r Rand, span float64) float64 {
	return (r.Float64() - 0.5) * span
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
