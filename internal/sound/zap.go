package sound

import (
	"math"
	"math/rand/v2"

	"github.com/faiface/beep"
)

// zap is a short burst of decaying noise with sparse crackles on top, the
// sound of one arc.
type zap struct {
	rng    *rand.Rand
	pos    int
	length int
	last   float64
}

func newZap(sr beep.SampleRate, seconds float64, rng *rand.Rand) *zap {
	return &zap{
		rng:    rng,
		length: max(1, int(seconds*float64(sr))),
	}
}

func (z *zap) Stream(samples [][2]float64) (int, bool) {
	if z.pos >= z.length {
		return 0, false
	}
	n := 0
	for i := range samples {
		if z.pos >= z.length {
			break
		}
		t := float64(z.pos) / float64(z.length)
		env := math.Exp(-6 * t)

		// one pole high-pass on white noise gives the hiss
		noise := z.rng.Float64()*2 - 1
		hiss := noise - 0.7*z.last
		z.last = noise

		v := 0.4 * hiss
		if z.rng.Float64() < 0.02 {
			v += math.Copysign(1, noise)
		}
		v = clamp(v*env, -1, 1)
		samples[i] = [2]float64{v, v}
		z.pos++
		n++
	}
	return n, true
}

func (z *zap) Err() error { return nil }

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
