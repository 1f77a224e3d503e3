package render

import (
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/electric-background/internal/config"
)

// GlowGradient bakes the particle halo: Glow at full alpha in the center,
// Deep at half alpha at 40% of the radius, transparent at the edge. Pixels
// are premultiplied so the sprite can be scaled by alpha at draw time.
func GlowGradient(p Palette, size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	half := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			t := math.Hypot(float64(x)+0.5-half, float64(y)+0.5-half) / half
			c, a := gradientAt(p, t)
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(c.R*a*255 + 0.5),
				G: uint8(c.G*a*255 + 0.5),
				B: uint8(c.B*a*255 + 0.5),
				A: uint8(a*255 + 0.5),
			})
		}
	}
	return img
}

// gradientAt returns the color and alpha at normalized radius t.
func gradientAt(p Palette, t float64) (colorful.Color, float64) {
	mid := config.GlowMidStop
	switch {
	case t >= 1:
		return p.Deep.Clamped(), 0
	case t < mid:
		k := t / mid
		return p.Glow.BlendRgb(p.Deep, k).Clamped(), 1 - 0.5*k
	default:
		k := (t - mid) / (1 - mid)
		return p.Deep.Clamped(), 0.5 * (1 - k)
	}
}
