// SPDX-License-Identifier: EPL-2.0

// Package ebitenaudio plays decoded tracks through ebiten's audio context and
// exposes them as a transport.Controller.
package ebitenaudio

import (
	"bytes"
	"fmt"
	"os"
	"sync"
	"time"

	ebitaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/ik5/waveloop/audio"
	"github.com/sirupsen/logrus"
)

var (
	contextOnce sync.Once
	sharedCtx   *ebitaudio.Context
	sharedRate  int
)

// Context returns the process-wide ebiten audio context, creating it at rate
// on first use. ebiten allows only one context per process.
func Context(rate int) (*ebitaudio.Context, error) {
	contextOnce.Do(func() {
		sharedRate = rate
		sharedCtx = ebitaudio.NewContext(rate)
	})
	if sharedRate != rate {
		return nil, fmt.Errorf("audio context already initialized at %d Hz (requested %d Hz)", sharedRate, rate)
	}

	return sharedCtx, nil
}

// Player holds a fully decoded track in memory.
type Player struct {
	player   *ebitaudio.Player
	duration time.Duration
}

// Open decodes path with a decoder from reg and prepares it for playback at
// the context's sample rate.
func Open(ctx *ebitaudio.Context, reg *audio.Registry, path string) (*Player, error) {
	dec, err := reg.Lookup(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", path, err)
	}
	defer src.Close()

	p, err := FromSource(ctx, src)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"function": "Open",
		"path":     path,
		"duration": p.duration.String(),
	}).Info("Track ready for playback")

	return p, nil
}

func FromSource(ctx *ebitaudio.Context, src audio.Source) (*Player, error) {
	rate := ctx.SampleRate()

	pcm, frames, err := encodeStereoF32(src, rate)
	if err != nil {
		return nil, err
	}

	pl, err := ctx.NewPlayerF32(bytes.NewReader(pcm))
	if err != nil {
		return nil, fmt.Errorf("creating player: %w", err)
	}

	return &Player{
		player:   pl,
		duration: time.Duration(frames) * time.Second / time.Duration(rate),
	}, nil
}

func (p *Player) Position() (time.Duration, bool) {
	return p.player.Position(), true
}

func (p *Player) Duration() (time.Duration, bool) {
	return p.duration, p.duration > 0
}

func (p *Player) Seek(pos time.Duration) error {
	pos = min(max(pos, 0), p.duration)
	if err := p.player.SetPosition(pos); err != nil {
		return fmt.Errorf("seeking to %s: %w", pos, err)
	}
	return nil
}

func (p *Player) Play()           { p.player.Play() }
func (p *Player) Pause()          { p.player.Pause() }
func (p *Player) IsPlaying() bool { return p.player.IsPlaying() }

func (p *Player) Close() error {
	p.player.Pause()
	return p.player.Close()
}
