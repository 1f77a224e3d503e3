package page

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/electric-background/internal/config"
	"github.com/iburimskiy/electric-background/internal/render"
)

const maxCachedText = 64

var (
	colorText     = colorful.Color{R: 1, G: 1, B: 1}
	colorHeadline = mustHex(config.ColorGlow)
	colorButton   = mustHex(config.ColorDeep)
	colorBorder   = mustHex("#c084fc")
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// textCache keeps one rendered image per string drawn with the debug font.
type textCache map[string]*ebiten.Image

func (c textCache) get(s string) *ebiten.Image {
	if img, ok := c[s]; ok {
		return img
	}
	if len(c) >= maxCachedText {
		c.reset()
	}
	img := ebiten.NewImage(max(textWidth(s, 1), 1), config.GlyphHeight)
	ebitenutil.DebugPrint(img, s)
	c[s] = img
	return img
}

func (c textCache) reset() {
	for s, img := range c {
		img.Deallocate()
		delete(c, s)
	}
}

func (c textCache) draw(dst *ebiten.Image, s string, x, y, scale int, clr colorful.Color, alpha float64) {
	if s == "" {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(float64(x), float64(y))
	a := float32(alpha)
	op.ColorScale.Scale(float32(clr.R)*a, float32(clr.G)*a, float32(clr.B)*a, a)
	dst.DrawImage(c.get(s), op)
}

func (p *Page) drawContent(screen *ebiten.Image) {
	l := p.layout
	drawLogo(screen, l.Logo)

	p.text.draw(screen, Tagline, l.Tagline.Min.X, l.Tagline.Min.Y, 1, colorText, 0.8)
	p.text.draw(screen, Headline, l.Headline.Min.X, l.Headline.Min.Y, l.HeadlineScale, colorHeadline, 1)
	for i, line := range l.SubtitleLines {
		x := l.Subtitle.Min.X + (l.Subtitle.Dx()-textWidth(line, 1))/2
		p.text.draw(screen, line, x, l.Subtitle.Min.Y+i*config.GlyphHeight, 1, colorText, 0.7)
	}

	p.drawInput(screen, l.Input)
	drawButton(screen, l.Button)
	p.text.draw(screen, ButtonLabel, l.Button.Min.X+(l.Button.Dx()-textWidth(ButtonLabel, 1))/2,
		l.Button.Min.Y+(l.Button.Dy()-config.GlyphHeight)/2, 1, colorText, 1)

	p.text.draw(screen, Copyright, l.Footer.Min.X, l.Footer.Min.Y, 1, colorText, 0.5)
}

// drawLogo paints a ring with a bolt through it.
func drawLogo(screen *ebiten.Image, r image.Rectangle) {
	cx, cy := float32(r.Min.X+r.Dx()/2), float32(r.Min.Y+r.Dy()/2)
	radius := float32(r.Dx()) / 2
	vector.StrokeCircle(screen, cx, cy, radius-2, 2, colorHeadline, true)

	bolt := []float32{0, -0.6, -0.2, 0.05, 0.1, 0.05, -0.05, 0.6}
	for i := 2; i < len(bolt); i += 2 {
		vector.StrokeLine(screen,
			cx+bolt[i-2]*radius, cy+bolt[i-1]*radius,
			cx+bolt[i]*radius, cy+bolt[i+1]*radius,
			3, colorText, true)
	}
}

func (p *Page) drawInput(screen *ebiten.Image, r image.Rectangle) {
	border, alpha := colorBorder, 0.5
	if p.input.inputFocused {
		alpha = 1
	}
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Max.Y-2), float32(r.Dx()), 2, render.NRGBA(border, alpha), false)

	x := r.Min.X + 16
	y := r.Min.Y + (r.Dy()-config.GlyphHeight)/2
	if len(p.email) == 0 {
		p.text.draw(screen, Placeholder, x, y, 1, colorText, 0.5)
		return
	}
	s := string(p.email)
	if p.input.inputFocused && (p.ticks/30)%2 == 0 {
		s += "_"
	}
	p.text.draw(screen, s, x, y, 1, colorText, 1)
}

func drawButton(screen *ebiten.Image, r image.Rectangle) {
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), render.NRGBA(colorButton, 1), false)
}
