package page

import (
	"github.com/charmbracelet/harmonica"

	"github.com/iburimskiy/electric-background/internal/config"
)

// fade eases the effect layer in after mounting.
type fade struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
}

func newFade() fade {
	return fade{
		spring: harmonica.NewSpring(harmonica.FPS(config.FadeFPS), config.FadeFrequency, config.FadeDamping),
		target: 1,
	}
}

// step advances one tick and returns the layer alpha in [0, 1].
func (f *fade) step() float64 {
	f.pos, f.vel = f.spring.Update(f.pos, f.vel, f.target)
	return f.alpha()
}

func (f *fade) alpha() float64 {
	return min(max(f.pos, 0), 1)
}
