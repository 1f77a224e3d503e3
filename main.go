package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/electric-background/internal/config"
	"github.com/iburimskiy/electric-background/internal/effect"
	"github.com/iburimskiy/electric-background/internal/page"
	"github.com/iburimskiy/electric-background/internal/sound"
)

const appVersion = "0.1.0"

func main() {
	cfg, err := config.ParseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if cfg.ShowVersion {
		fmt.Printf("electric-background %s\n", appVersion)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := page.Options{
		Background: loadBackground(cfg),
		SafeZone:   !cfg.NoSafeZone,
		MuteZone:   !cfg.NoMuteZone,
		Effect:     effect.Options{Rand: effect.NewRand(cfg.Seed)},
	}

	var pg *page.Page
	if cfg.Sound {
		player, err := sound.Open(cfg.Volume, cfg.Seed)
		if err != nil {
			log.Printf("sound: disabled: %v", err)
		} else {
			defer player.Close()
			opts.Effect.OnArc = func(a effect.Arc) {
				w, _ := pg.Viewport()
				player.Zap(sound.PanFor(a.End.X, w))
			}
		}
	}

	pg = page.New(ctx, opts)
	defer pg.Close()

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(pg); err != nil && !errors.Is(err, ebiten.Termination) {
		_ = zenity.Error(err.Error(), zenity.Title(config.WindowTitle), zenity.ErrorIcon)
		log.Fatal(err)
	}
}

// loadBackground returns the configured background image, or nil for the
// default gradient. Failures are logged and fall back to the gradient.
func loadBackground(cfg *config.Config) image.Image {
	path := cfg.Background
	if cfg.PickBackground {
		picked, err := page.PickBackground()
		if err != nil {
			log.Printf("page: background picker: %v", err)
		} else if picked != "" {
			path = picked
		}
	}
	if path == "" {
		return nil
	}
	img, err := page.LoadBackground(path)
	if err != nil {
		log.Printf("page: %v", err)
		return nil
	}
	return img
}
