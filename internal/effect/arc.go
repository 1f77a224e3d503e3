package effect

import "github.com/iburimskiy/electric-background/internal/config"

// Arc is a lightning discharge between two points fixed at creation.
type Arc struct {
	Start, End Point
	Life       float64
	MaxLife    float64
	Opacity    float64
}

// step decays the arc by one frame and reports whether it is still alive.
func (a *Arc) step() bool {
	a.Life -= config.ArcDecay
	return a.Life > 0
}

// CurrentOpacity is the base opacity scaled by remaining life.
func (a Arc) CurrentOpacity() float64 {
	return a.Opacity * (a.Life / a.MaxLife)
}

// path fills buf with a jittered polyline from Start to End. Interior joints
// get fresh displacement on every call.
func (a Arc) path(r Rand, buf []Point) []Point {
	buf = append(buf[:0], a.Start)
	dx := (a.End.X - a.Start.X) / config.ArcSegments
	dy := (a.End.Y - a.Start.Y) / config.ArcSegments
	for i := 1; i < config.ArcSegments; i++ {
		x := a.Start.X + dx*float64(i) + jitter(r, config.ArcDisplacement)
		y := a.Start.Y + dy*float64(i) + jitter(r, config.ArcDisplacement)
		buf = append(buf, Point{x, y})
	}
	return append(buf, a.End)
}

// ArcPool owns the live arcs.
type ArcPool struct {
	arcs     []Arc
	path     []Point
	onCreate func(Arc)
}

func (p *ArcPool) Len() int { return len(p.arcs) }

func (p *ArcPool) Arcs() []Arc { return p.arcs }

func (p *ArcPool) create(start, end Point, opacity float64) Arc {
	a := Arc{
		Start:   start,
		End:     end,
		Life:    config.ArcMaxLife,
		MaxLife: config.ArcMaxLife,
		Opacity: opacity,
	}
	p.arcs = append(p.arcs, a)
	if p.onCreate != nil {
		p.onCreate(a)
	}
	return a
}

func (p *ArcPool) clear() {
	clear(p.arcs)
	p.arcs = p.arcs[:0]
}

// stepAndDraw decays every arc, drops the dead ones and draws the survivors.
// Iterating in reverse lets a dead arc be swapped with the already visited tail.
func (p *ArcPool) stepAndDraw(s Surface, r Rand) {
	for i := len(p.arcs) - 1; i >= 0; i-- {
		if !p.arcs[i].step() {
			last := len(p.arcs) - 1
			p.arcs[i] = p.arcs[last]
			p.arcs = p.arcs[:last]
			continue
		}
		p.draw(p.arcs[i], s, r)
	}
}

func (p *ArcPool) draw(a Arc, s Surface, r Rand) {
	opacity := a.CurrentOpacity()
	if opacity <= 0 {
		return
	}
	p.path = a.path(r, p.path)
	s.Stroke(p.path, config.ArcGlowWidth, config.ArcGlowBlur, TintGlow, opacity)
	s.Stroke(p.path, config.ArcCoreWidth, config.ArcCoreBlur, TintCore, opacity*config.ArcCoreIntensity)
}

// ambient occasionally throws an arc from around the pointer to a particle in
// reach. The pointer must be inside the spawn region.
func (p *ArcPool) ambient(r Rand, in Interaction, maxY float64, particles []Particle) {
	if in.Muted || r.Float64() >= config.AmbientArcChance {
		return
	}
	if in.PointerX <= 0 || in.PointerY <= 0 || in.PointerY >= maxY {
		return
	}

	var candidates []int
	for i, q := range particles {
		d := distance(q.X, q.Y, in.PointerX, in.PointerY)
		if d > config.AmbientArcMinDist && d < config.AmbientArcMaxDist {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return
	}

	target := particles[candidates[r.IntN(len(candidates))]]
	start := Point{
		X: in.PointerX + jitter(r, config.AmbientArcSpread),
		Y: in.PointerY + jitter(r, config.AmbientArcSpread),
	}
	p.create(start, Point{target.X, target.Y}, config.AmbientArcOpacity)
}
