package sound

import (
	"fmt"
	"log"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/electric-background/internal/config"
)

// Player mixes arc zaps into the speaker. It is safe to call Zap from the
// game loop; the speaker pulls samples on its own goroutine.
type Player struct {
	sr     beep.SampleRate
	volume float64
	play   func(beep.Streamer)
	close  func()

	mu     sync.Mutex
	rng    *rand.Rand
	voices atomic.Int32
}

// Open initialises the speaker. volume is a log2 gain applied to every zap.
func Open(volume float64, seed uint64) (*Player, error) {
	sr := beep.SampleRate(config.SampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	p := newPlayer(sr, volume, seed, func(s beep.Streamer) { speaker.Play(s) })
	p.close = speaker.Close
	log.Printf("sound: speaker ready at %d Hz, volume %.1f", sr, volume)
	return p, nil
}

func newPlayer(sr beep.SampleRate, volume float64, seed uint64, play func(beep.Streamer)) *Player {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Player{
		sr:     sr,
		volume: volume,
		play:   play,
		rng:    rand.New(rand.NewPCG(seed, seed>>1|1)),
	}
}

// Zap starts one crackle panned to pan in [-1, 1]. It reports false when the
// voice limit is reached and the zap was dropped.
func (p *Player) Zap(pan float64) bool {
	if p.voices.Add(1) > config.ZapMaxVoices {
		p.voices.Add(-1)
		return false
	}

	p.mu.Lock()
	src := newZap(p.sr, config.ZapDuration, rand.New(rand.NewPCG(p.rng.Uint64(), p.rng.Uint64())))
	p.mu.Unlock()

	var s beep.Streamer = &effects.Pan{Streamer: src, Pan: clamp(pan, -1, 1)}
	s = &effects.Volume{Streamer: s, Base: 2, Volume: p.volume}
	p.play(newVoice(s, func() { p.voices.Add(-1) }))
	return true
}

// Voices is the number of zaps still playing.
func (p *Player) Voices() int { return int(p.voices.Load()) }

func (p *Player) Close() {
	if p.close != nil {
		p.close()
	}
}

// PanFor maps a horizontal position in a window of the given width to a pan.
func PanFor(x float64, width int) float64 {
	if width <= 0 {
		return 0
	}
	return clamp(2*x/float64(width)-1, -1, 1)
}
