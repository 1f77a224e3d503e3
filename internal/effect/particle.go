package effect

import (
	"math"

	"github.com/iburimskiy/electric-background/internal/config"
)

type Particle struct {
	X, Y         float64
	BaseX, BaseY float64
	VX, VY       float64
	Radius       float64
	Opacity      float64
	PulseSpeed   float64
	PulseOffset  float64
}

// Field owns the particle population. It is regenerated wholesale on resize.
type Field struct {
	particles []Particle
}

// EffectiveSpawnLimit clamps the requested limit to [20, height]. A missing
// limit falls back to 60% of the height.
func EffectiveSpawnLimit(height, spawnLimit float64, hasLimit bool) float64 {
	if !hasLimit {
		spawnLimit = height * config.DefaultSpawnRatio
	}
	return math.Max(config.MinSpawnLimit, math.Min(spawnLimit, height))
}

// ParticleCount is one particle per 15000 square pixels of spawn region.
func ParticleCount(width, limit float64) int {
	n := int(math.Floor(width * limit / config.ParticleArea))
	if n < 0 {
		return 0
	}
	return n
}

func spawnParticles(r Rand, width, height, spawnLimit float64, hasLimit bool) []Particle {
	limit := EffectiveSpawnLimit(height, spawnLimit, hasLimit)
	n := ParticleCount(width, limit)
	particles := make([]Particle, n)
	for i := range particles {
		x := r.Float64() * width
		y := r.Float64() * limit
		particles[i] = Particle{
			X:           x,
			Y:           y,
			BaseX:       x,
			BaseY:       y,
			VX:          jitter(r, 2*config.ParticleMaxSpeed),
			VY:          jitter(r, 2*config.ParticleMaxSpeed),
			Radius:      randRange(r, config.ParticleMinRadius, config.ParticleMaxRadius),
			Opacity:     randRange(r, config.ParticleMinOpacity, config.ParticleMaxOpacity),
			PulseSpeed:  randRange(r, config.PulseMinSpeed, config.PulseMaxSpeed),
			PulseOffset: r.Float64() * 2 * math.Pi,
		}
	}
	return particles
}

func (f *Field) reset(r Rand, width, height, spawnLimit float64, hasLimit bool) {
	f.particles = spawnParticles(r, width, height, spawnLimit, hasLimit)
}

func (f *Field) Len() int { return len(f.particles) }

// Particles exposes the live population; callers must not retain it across a resize.
func (f *Field) Particles() []Particle { return f.particles }

// frame is the per-frame input shared by every particle update.
type frame struct {
	width, maxY float64
	in          Interaction
	time        float64
	rng         Rand
	arcs        *ArcPool
}

// update advances particle i by one frame and returns its transient glow
// intensity and render opacity.
func (f *Field) update(i int, fr *frame) (glow, opacity float64) {
	p := &f.particles[i]

	p.X += p.VX
	p.Y += p.VY

	// Reflect without clamping; a one-frame overshoot is part of the motion.
	if p.X < 0 || p.X > fr.width {
		p.VX = -p.VX
	}
	if p.Y < 0 || p.Y > fr.maxY {
		p.VY = -p.VY
	}

	glow = 1
	if !fr.in.Muted {
		dx := fr.in.PointerX - p.X
		dy := fr.in.PointerY - p.Y
		d := math.Hypot(dx, dy)
		if d > 0 && d < config.AttractionRadius {
			force := (config.AttractionRadius - d) / config.AttractionRadius
			p.X += dx * force * config.AttractionStrength
			p.Y += dy * force * config.AttractionStrength
			glow = 1 + force*config.GlowBoost

			if fr.rng.Float64() < config.ParticleArcChance*force {
				f.arcToNeighbor(i, fr.arcs)
			}
		}
	}

	p.X += (p.BaseX - p.X) * config.HomingRate
	p.Y += (p.BaseY - p.Y) * config.HomingRate

	pulse := math.Sin(fr.time*p.PulseSpeed*config.PulseTimeScale + p.PulseOffset)
	opacity = p.Opacity * (config.PulseBase + config.PulseAmplitude*pulse) * glow
	return glow, opacity
}

// arcToNeighbor links particle i to the first later particle within arcing range.
func (f *Field) arcToNeighbor(i int, arcs *ArcPool) {
	p := f.particles[i]
	for j := i + 1; j < len(f.particles); j++ {
		other := f.particles[j]
		d := distance(p.X, p.Y, other.X, other.Y)
		if d > config.ParticleArcMinDist && d < config.ParticleArcMaxDist {
			arcs.create(Point{p.X, p.Y}, Point{other.X, other.Y}, config.ParticleArcOpacity)
			return
		}
	}
}

func (f *Field) draw(i int, s Surface, glow, opacity float64) {
	p := f.particles[i]
	s.Glow(p.X, p.Y, p.Radius*config.GlowRadiusFactor*glow, opacity)
	s.Disc(p.X, p.Y, p.Radius*glow, opacity)
}
