package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
)

var (
	ErrInvalidSize   = errors.New("window size must be positive")
	ErrInvalidVolume = errors.New("volume must be between -8 and 2")
)

type Config struct {
	Width          int
	Height         int
	Background     string
	PickBackground bool
	Sound          bool
	Volume         float64
	NoSafeZone     bool
	NoMuteZone     bool
	Seed           uint64
	ShowVersion    bool
}

// ParseFlags parses args (without the program name) into a Config.
func ParseFlags(args []string, output io.Writer) (*Config, error) {
	flags := flag.NewFlagSet("electric-background", flag.ContinueOnError)
	flags.SetOutput(output)

	cfg := &Config{}
	flags.IntVar(&cfg.Width, "width", WindowWidth, "Initial window width")
	flags.IntVar(&cfg.Height, "height", WindowHeight, "Initial window height")
	flags.StringVar(&cfg.Background, "background", "", "Background image (PNG or JPEG)")
	flags.BoolVar(&cfg.PickBackground, "pick-background", false, "Choose the background image with a file dialog")
	flags.BoolVar(&cfg.Sound, "sound", false, "Play a crackle whenever an arc spawns")
	flags.Float64Var(&cfg.Volume, "volume", DefaultVolume, "Crackle volume (log2 scale, 0 is unchanged)")
	flags.BoolVar(&cfg.NoSafeZone, "no-safezone", false, "Do not flag the subtitle as the safe zone")
	flags.BoolVar(&cfg.NoMuteZone, "no-mutezone", false, "Do not flag the email input as the mute zone")
	flags.Uint64Var(&cfg.Seed, "seed", 0, "Random seed (0 uses the clock)")
	flags.BoolVar(&cfg.ShowVersion, "version", false, "Show version information")
	flags.BoolVar(&cfg.ShowVersion, "v", false, "Show version information")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, c.Width, c.Height)
	}
	if c.Volume < -8 || c.Volume > 2 {
		return fmt.Errorf("%w: %g", ErrInvalidVolume, c.Volume)
	}
	return nil
}
