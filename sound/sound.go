// Package sound wraps the ebiten audio stack: one process-wide mixer context,
// WAV/Ogg loading, looped music and synthesized tones.
package sound

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// Context owns the audio device. The underlying ebiten context is
// process-wide, so repeated NewContext calls share it; the first call fixes
// the sample rate.
type Context struct {
	ctx        *audio.Context
	sampleRate int
}

// NewContext opens (or joins) the audio device at the given sample rate.
func NewContext(sampleRate int) *Context {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}
	return &Context{ctx: ctx, sampleRate: sampleRate}
}

// Player is a playable sound. Play restarts from the beginning each time,
// which is the semantics short effects want; Resume continues after a Pause.
type Player struct {
	p *audio.Player
}

// Play rewinds and starts playback.
func (p *Player) Play() {
	if err := p.p.Rewind(); err != nil {
		return
	}
	p.p.Play()
}

// Resume continues playback without rewinding.
func (p *Player) Resume() { p.p.Play() }

// Pause suspends playback, keeping the position.
func (p *Player) Pause() { p.p.Pause() }

// IsPlaying reports whether the player is currently audible.
func (p *Player) IsPlaying() bool { return p.p.IsPlaying() }

// SetVolume sets playback volume in [0, 1].
func (p *Player) SetVolume(v float64) { p.p.SetVolume(v) }

// LoadWAV decodes a WAV file into a player.
func (c *Context) LoadWAV(path string) (*Player, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sound: read %s: %w", path, err)
	}
	stream, err := wav.DecodeWithSampleRate(c.sampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("sound: decode %s: %w", path, err)
	}
	return c.fromStream(stream)
}

// LoadOGG decodes an Ogg/Vorbis file into a player.
func (c *Context) LoadOGG(path string) (*Player, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sound: read %s: %w", path, err)
	}
	stream, err := vorbis.DecodeWithSampleRate(c.sampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("sound: decode %s: %w", path, err)
	}
	return c.fromStream(stream)
}

// LoopOGG decodes an Ogg/Vorbis file into a player that repeats forever,
// for background music.
func (c *Context) LoopOGG(path string) (*Player, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sound: read %s: %w", path, err)
	}
	stream, err := vorbis.DecodeWithSampleRate(c.sampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("sound: decode %s: %w", path, err)
	}
	loop := audio.NewInfiniteLoop(stream, stream.Length())
	p, err := c.ctx.NewPlayer(loop)
	if err != nil {
		return nil, fmt.Errorf("sound: player: %w", err)
	}
	return &Player{p: p}, nil
}

// Tone synthesizes a square-wave beep. durationMs of silence-free signal at
// the given frequency, volume in [0, 1]. No asset files needed.
func (c *Context) Tone(freq float64, durationMs int, volume float64) *Player {
	pcm := squareWave(c.sampleRate, freq, durationMs, volume)
	return &Player{p: c.ctx.NewPlayerFromBytes(pcm)}
}

func (c *Context) fromStream(stream io.Reader) (*Player, error) {
	p, err := c.ctx.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("sound: player: %w", err)
	}
	return &Player{p: p}, nil
}
