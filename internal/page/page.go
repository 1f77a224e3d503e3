package page

import (
	"context"
	"image"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/electric-background/internal/effect"
	"github.com/iburimskiy/electric-background/internal/render"
)

const maxEmailLength = 64

type Options struct {
	Background image.Image
	// SafeZone flags the subtitle as the region particles stay above.
	SafeZone bool
	// MuteZone flags the email input as muting pointer interaction.
	MuteZone bool
	Effect   effect.Options
}

// Page is the landing page game. It hosts the electric background layer
// behind its content.
type Page struct {
	ctx  context.Context
	opts Options

	width, height int
	resized       bool
	layout        Layout

	window *Registry
	mute   *Registry
	frames Frames
	input  inputTracker
	fade   fade

	canvas *render.Canvas
	effect *effect.Effect
	bg     *background
	text   textCache

	email []rune
	start time.Time
	ticks int
	alpha float64
}

var _ effect.Host = (*Page)(nil)

func New(ctx context.Context, opts Options) *Page {
	return &Page{
		ctx:    ctx,
		opts:   opts,
		window: NewRegistry(),
		mute:   NewRegistry(),
		input:  newInputTracker(),
		fade:   newFade(),
		text:   textCache{},
		start:  time.Now(),
	}
}

func (p *Page) Listen(kind effect.EventKind, fn func(effect.Event)) func() {
	return p.window.Listen(kind, fn)
}

func (p *Page) RequestFrame(fn func(time.Time)) effect.FrameID { return p.frames.RequestFrame(fn) }

func (p *Page) CancelFrame(id effect.FrameID) { p.frames.CancelFrame(id) }

func (p *Page) Viewport() (int, int) { return p.width, p.height }

func (p *Page) SafeZone() (image.Rectangle, bool) {
	if !p.opts.SafeZone || p.layout.Subtitle.Empty() {
		return image.Rectangle{}, false
	}
	return p.layout.Subtitle, true
}

func (p *Page) MuteZone() effect.EventSource {
	if !p.opts.MuteZone {
		return nil
	}
	return p.mute
}

func (p *Page) muteRect() image.Rectangle {
	if !p.opts.MuteZone {
		return image.Rectangle{}
	}
	return p.layout.Input
}

func (p *Page) muteRegistry() *Registry {
	if !p.opts.MuteZone {
		return nil
	}
	return p.mute
}

func (p *Page) Update() error {
	select {
	case <-p.ctx.Done():
		return ebiten.Termination
	default:
	}
	if p.width <= 0 || p.height <= 0 {
		return nil
	}

	if p.effect == nil {
		p.mount()
	}
	p.syncSize()

	in := pollInput()
	if !p.input.inputFocused && (in.escape || inpututil.IsKeyJustPressed(ebiten.KeyQ)) {
		return ebiten.Termination
	}
	p.input.process(in, image.Rect(0, 0, p.width, p.height), p.muteRect(), p.window, p.muteRegistry())
	if p.input.inputFocused {
		p.typeEmail()
	}

	p.frames.Run(time.Now())
	p.alpha = p.fade.step()
	p.ticks++
	return nil
}

func (p *Page) mount() {
	p.canvas = render.NewCanvas(render.DefaultPalette())
	p.bg = newBackground(p.opts.Background)
	p.effect = effect.Mount(p, p.canvas, p.opts.Effect)
	p.resized = false
	log.Printf("page: mounted at %dx%d (safe zone %t, mute zone %t)", p.width, p.height, p.opts.SafeZone, p.opts.MuteZone)
}

// syncSize tells the effect about a window resize seen by Layout.
func (p *Page) syncSize() {
	if !p.resized {
		return
	}
	p.resized = false
	p.window.Dispatch(effect.Event{Kind: effect.EventResize})
}

func (p *Page) typeEmail() {
	p.email = ebiten.AppendInputChars(p.email)
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(p.email) > 0 {
		p.email = p.email[:len(p.email)-1]
	}
	if len(p.email) > maxEmailLength {
		p.email = p.email[:maxEmailLength]
	}
}

func (p *Page) Draw(screen *ebiten.Image) {
	if p.bg != nil {
		p.bg.draw(screen, time.Since(p.start).Seconds())
	}
	if p.canvas != nil {
		if layer := p.canvas.Image(); layer != nil {
			op := &ebiten.DrawImageOptions{Blend: render.BlendScreen}
			op.ColorScale.ScaleAlpha(float32(p.alpha))
			screen.DrawImage(layer, op)
		}
	}
	p.drawContent(screen)
}

func (p *Page) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != p.width || outsideHeight != p.height {
		p.width, p.height = outsideWidth, outsideHeight
		p.layout = NewLayout(outsideWidth, outsideHeight)
		p.resized = true
	}
	return outsideWidth, outsideHeight
}

// Close unmounts the effect.
func (p *Page) Close() {
	if p.effect != nil {
		p.effect.Unmount()
	}
}
