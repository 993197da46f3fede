// SPDX-License-Identifier: EPL-2.0

package transport

import (
	"errors"
	"fmt"
	"time"
)

// ErrEmptyLoop is returned by KeepInLoop when end does not lie after start.
var ErrEmptyLoop = errors.New("loop end is not after loop start")

// LoopRestart is how far past the loop start KeepInLoop seeks.
const LoopRestart = 10 * time.Millisecond

// Transport reports playback progress. Either value may be unknown, for
// example before the media has been prerolled.
type Transport interface {
	Position() (time.Duration, bool)
	Duration() (time.Duration, bool)
}

type Seeker interface {
	Seek(pos time.Duration) error
}

// Controller is a Transport the host can also steer.
type Controller interface {
	Transport
	Seeker
	Play()
	Pause()
	IsPlaying() bool
}

// PlaybackFraction maps the transport position onto [0, 1]. An unknown
// position counts as 0 and an unknown or zero duration is replaced by
// fallback. A nil transport yields 0.
func PlaybackFraction(t Transport, fallback time.Duration) float64 {
	if t == nil {
		return 0
	}

	pos, ok := t.Position()
	if !ok {
		pos = 0
	}

	dur, ok := t.Duration()
	if !ok || dur <= 0 {
		dur = fallback
	}
	total := max(dur, time.Millisecond)

	return min(1, max(0, float64(pos)/float64(total)))
}

// LoopState is the outcome of KeepInLoop.
type LoopState int

const (
	// LoopUnknown: the position could not be queried; nothing was done.
	LoopUnknown LoopState = iota
	// LoopInside: playback is within [start, end).
	LoopInside
	// LoopRestarted: playback had left the loop and was sent back.
	LoopRestarted
)

func (s LoopState) String() string {
	switch s {
	case LoopInside:
		return "inside"
	case LoopRestarted:
		return "restarted"
	default:
		return "unknown"
	}
}

// KeepInLoop sends playback back to start+LoopRestart whenever it is outside
// [start, end). An empty loop returns ErrEmptyLoop so the host can stop
// playback.
func KeepInLoop(t interface {
	Transport
	Seeker
}, start, end time.Duration) (LoopState, error) {
	if end <= start {
		return LoopUnknown, ErrEmptyLoop
	}

	pos, ok := t.Position()
	if !ok {
		return LoopUnknown, nil
	}

	if pos >= start && pos < end {
		return LoopInside, nil
	}

	if err := t.Seek(start + LoopRestart); err != nil {
		return LoopUnknown, fmt.Errorf("seeking to loop start: %w", err)
	}

	return LoopRestarted, nil
}

// Seconds converts a float seconds value, as kept by selections, into a
// Duration.
func Seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
