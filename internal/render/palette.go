package render

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/electric-background/internal/config"
	"github.com/iburimskiy/electric-background/internal/effect"
)

// Palette holds the effect's colors. Glow is the halo center and arc glow,
// Deep the outer halo, Core the particle and arc cores.
type Palette struct {
	Glow colorful.Color
	Deep colorful.Color
	Core colorful.Color
}

func ParsePalette(glow, deep, core string) (Palette, error) {
	var p Palette
	var err error
	if p.Glow, err = colorful.Hex(glow); err != nil {
		return Palette{}, fmt.Errorf("glow color %q: %w", glow, err)
	}
	if p.Deep, err = colorful.Hex(deep); err != nil {
		return Palette{}, fmt.Errorf("deep color %q: %w", deep, err)
	}
	if p.Core, err = colorful.Hex(core); err != nil {
		return Palette{}, fmt.Errorf("core color %q: %w", core, err)
	}
	return p, nil
}

// DefaultPalette is the violet theme of the landing page.
func DefaultPalette() Palette {
	p, err := ParsePalette(config.ColorGlow, config.ColorDeep, config.ColorCore)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Palette) Tint(t effect.Tint) colorful.Color {
	if t == effect.TintCore {
		return p.Core
	}
	return p.Glow
}

// NRGBA converts c to a non-premultiplied color with the given alpha, saturating at 1.
func NRGBA(c colorful.Color, alpha float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(clamp01(alpha)*255 + 0.5)}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
