package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/electric-background/internal/config"
	"github.com/iburimskiy/electric-background/internal/effect"
)

const (
	// blurPasses approximates a shadow blur with progressively wider, fainter strokes.
	blurPasses = 3
	blurAlpha  = 0.35
	maxBoost   = 3 // highest glow intensity the field produces
)

// BlendScreen lightens the destination: result = src + dst*(1-src).
var BlendScreen = ebiten.Blend{
	BlendFactorSourceRGB:        ebiten.BlendFactorOne,
	BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
	BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceColor,
	BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
	BlendOperationRGB:           ebiten.BlendOperationAdd,
	BlendOperationAlpha:         ebiten.BlendOperationAdd,
}

// Canvas is an offscreen Ebitengine image implementing effect.Surface.
type Canvas struct {
	image   *ebiten.Image
	sprite  *ebiten.Image
	palette Palette
	width   int
	height  int
}

var _ effect.Surface = (*Canvas)(nil)

func NewCanvas(p Palette) *Canvas {
	return &Canvas{
		palette: p,
		sprite:  ebiten.NewImageFromImage(GlowGradient(p, config.GlowSprite)),
	}
}

// Image is the layer to composite onto the screen, nil before the first resize.
func (c *Canvas) Image() *ebiten.Image { return c.image }

func (c *Canvas) Size() (int, int) { return c.width, c.height }

func (c *Canvas) Resize(width, height int) {
	if c.image != nil && width == c.width && height == c.height {
		return
	}
	if c.image != nil {
		c.image.Deallocate()
		c.image = nil
	}
	c.width, c.height = width, height
	if width > 0 && height > 0 {
		c.image = ebiten.NewImage(width, height)
	}
}

func (c *Canvas) Clear() {
	if c.image != nil {
		c.image.Clear()
	}
}

func (c *Canvas) Glow(x, y, radius, opacity float64) {
	if c.image == nil || radius <= 0 || opacity <= 0 {
		return
	}
	size := float64(config.GlowSprite)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-size/2, -size/2)
	op.GeoM.Scale(2*radius/size, 2*radius/size)
	op.GeoM.Translate(x, y)
	// Scaling past 1 saturates the premultiplied sprite per pixel, which is
	// how an over-bright gradient stop behaves.
	op.ColorScale.ScaleAlpha(float32(min(opacity, maxBoost)))
	op.Filter = ebiten.FilterLinear
	c.image.DrawImage(c.sprite, op)
}

func (c *Canvas) Disc(x, y, radius, opacity float64) {
	if c.image == nil || radius <= 0 || opacity <= 0 {
		return
	}
	vector.DrawFilledCircle(c.image, float32(x), float32(y), float32(radius), NRGBA(c.palette.Core, opacity), true)
}

func (c *Canvas) Stroke(path []effect.Point, width, blur float64, tint effect.Tint, opacity float64) {
	if c.image == nil || len(path) < 2 || opacity <= 0 {
		return
	}
	col := c.palette.Tint(tint)
	for i := blurPasses; i >= 1; i-- {
		w := width + blur*float64(i)/blurPasses
		c.polyline(path, w, NRGBA(col, opacity*blurAlpha/float64(i)))
	}
	c.polyline(path, width, NRGBA(col, opacity))
}

func (c *Canvas) polyline(path []effect.Point, width float64, clr color.Color) {
	for i := 1; i < len(path); i++ {
		a, b := path[i-1], path[i]
		vector.StrokeLine(c.image, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(width), clr, true)
	}
}
