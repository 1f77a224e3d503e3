package page

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"
)

var ErrUnsupportedImage = errors.New("unsupported background image")

const backgroundBand = 4 // gradient row height in pixels

// LoadBackground decodes a PNG or JPEG file.
func LoadBackground(path string) (image.Image, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg":
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedImage, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// PickBackground asks for an image with a native file dialog. A cancelled
// dialog returns an empty path and no error.
func PickBackground() (string, error) {
	path, err := zenity.SelectFile(
		zenity.Title("Choose Background Image"),
		zenity.FileFilters{{
			Name:     "Images",
			Patterns: []string{"*.png", "*.jpg", "*.jpeg"},
		}},
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return "", nil
	}
	return path, err
}

// cover scales an image to fill the viewport, centered horizontally and
// anchored to the bottom edge.
func cover(imgW, imgH, width, height int) (scale, tx, ty float64) {
	if imgW <= 0 || imgH <= 0 {
		return 0, 0, 0
	}
	scale = math.Max(float64(width)/float64(imgW), float64(height)/float64(imgH))
	tx = (float64(width) - float64(imgW)*scale) / 2
	ty = float64(height) - float64(imgH)*scale
	return scale, tx, ty
}

type background struct {
	image *ebiten.Image
}

func newBackground(img image.Image) *background {
	if img == nil {
		return &background{}
	}
	return &background{image: ebiten.NewImageFromImage(img)}
}

func (b *background) draw(screen *ebiten.Image, t float64) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	if b.image == nil {
		drawNightGradient(screen, width, height, t)
		return
	}
	bounds := b.image.Bounds()
	scale, tx, ty := cover(bounds.Dx(), bounds.Dy(), width, height)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(tx, ty)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(b.image, op)
}

// drawNightGradient paints a slowly shifting dusk sky, darkest at the top.
func drawNightGradient(screen *ebiten.Image, width, height int, t float64) {
	for y := 0; y < height; y += backgroundBand {
		ratio := float64(y) / float64(height)
		c := skyColor(ratio, t)
		vector.DrawFilledRect(screen, 0, float32(y), float32(width), backgroundBand, c, false)
	}
}

func skyColor(ratio, t float64) color.RGBA {
	r := 12 + 28*ratio + 6*math.Sin(t*0.5+ratio*math.Pi)
	g := 8 + 14*ratio + 4*math.Cos(t*0.3+ratio*math.Pi)
	b := 24 + 40*ratio + 8*math.Sin(t*0.7+ratio*math.Pi)
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
}
