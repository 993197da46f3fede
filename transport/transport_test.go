// SPDX-License-Identifier: EPL-2.0

package transport

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTransport struct {
	pos, dur     time.Duration
	posOK, durOK bool
	seeks        []time.Duration
	seekErr      error
}

func (f *fakeTransport) Position() (time.Duration, bool) { return f.pos, f.posOK }
func (f *fakeTransport) Duration() (time.Duration, bool) { return f.dur, f.durOK }

func (f *fakeTransport) Seek(pos time.Duration) error {
	if f.seekErr != nil {
		return f.seekErr
	}
	f.seeks = append(f.seeks, pos)
	f.pos = pos
	return nil
}

func TestPlaybackFraction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		tr       *fakeTransport
		fallback time.Duration
		want     float64
	}{
		{name: "known", tr: &fakeTransport{pos: 2 * time.Second, posOK: true, dur: 8 * time.Second, durOK: true}, want: 0.25},
		{name: "unknown position", tr: &fakeTransport{pos: 5 * time.Second, dur: 8 * time.Second, durOK: true}, want: 0},
		{name: "unknown duration", tr: &fakeTransport{pos: time.Second, posOK: true}, fallback: 4 * time.Second, want: 0.25},
		{name: "zero duration", tr: &fakeTransport{pos: time.Second, posOK: true, durOK: true}, fallback: 2 * time.Second, want: 0.5},
		{name: "no fallback", tr: &fakeTransport{pos: time.Millisecond / 2, posOK: true}, want: 0.5},
		{name: "past the end", tr: &fakeTransport{pos: 9 * time.Second, posOK: true, dur: 8 * time.Second, durOK: true}, want: 1},
		{name: "negative", tr: &fakeTransport{pos: -time.Second, posOK: true, dur: 8 * time.Second, durOK: true}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, PlaybackFraction(tt.tr, tt.fallback), 1e-9)
		})
	}
}

func TestPlaybackFraction_NilTransport(t *testing.T) {
	t.Parallel()
	assert.Zero(t, PlaybackFraction(nil, time.Second))
}

func TestKeepInLoop(t *testing.T) {
	t.Parallel()

	start, end := 2*time.Second, 4*time.Second
	tests := []struct {
		name      string
		pos       time.Duration
		posOK     bool
		want      LoopState
		wantSeeks []time.Duration
	}{
		{name: "inside", pos: 3 * time.Second, posOK: true, want: LoopInside},
		{name: "at start", pos: start, posOK: true, want: LoopInside},
		{name: "at end", pos: end, posOK: true, want: LoopRestarted, wantSeeks: []time.Duration{start + LoopRestart}},
		{name: "before start", pos: time.Second, posOK: true, want: LoopRestarted, wantSeeks: []time.Duration{start + LoopRestart}},
		{name: "unknown", want: LoopUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tr := &fakeTransport{pos: tt.pos, posOK: tt.posOK}
			got, err := KeepInLoop(tr, start, end)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantSeeks, tr.seeks)
		})
	}
}

func TestKeepInLoop_Errors(t *testing.T) {
	t.Parallel()

	_, err := KeepInLoop(&fakeTransport{posOK: true}, time.Second, time.Second)
	assert.ErrorIs(t, err, ErrEmptyLoop)

	boom := errors.New("boom")
	state, err := KeepInLoop(&fakeTransport{posOK: true, seekErr: boom}, time.Second, 2*time.Second)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, LoopUnknown, state)
}

func TestLoopState_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "inside", LoopInside.String())
	assert.Equal(t, "restarted", LoopRestarted.String())
	assert.Equal(t, "unknown", LoopUnknown.String())
}

func TestSeconds(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1500*time.Millisecond, Seconds(1.5))
	assert.Equal(t, 10*time.Millisecond, Seconds(0.01))
}
