// SPDX-License-Identifier: EPL-2.0

package waveview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkers_Press(t *testing.T) {
	t.Parallel()

	sel := NewSelection(10, 0.01)
	sel.SetRange(2, 3)
	// 100 px per second: start at x=200, end at x=300.
	mp := Mapper{View: FullViewport(), Width: 1000, Duration: 10}

	tests := []struct {
		name string
		x    float64
		want DragState
	}{
		{name: "on start", x: 200, want: DragStart},
		{name: "start slop edge", x: 205, want: DragStart},
		{name: "start slop outside", x: 205.5, want: DragNone},
		{name: "on end", x: 300, want: DragEnd},
		{name: "end slop edge", x: 295, want: DragEnd},
		{name: "between", x: 250, want: DragNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var m Markers
			assert.Equal(t, tt.want, m.Press(tt.x, mp, sel))
			assert.Equal(t, tt.want, m.State())
		})
	}
}

func TestMarkers_PressNearestWins(t *testing.T) {
	t.Parallel()

	// 128 px per second puts the markers at x=256 and x=261.
	sel := NewSelection(8, 0.01)
	sel.SetRange(2, 2+5.0/128)
	mp := Mapper{View: FullViewport(), Width: 1024, Duration: 8}

	m := Markers{HitSlop: 5}
	assert.Equal(t, DragStart, m.Press(257, mp, sel))
	assert.Equal(t, DragEnd, m.Press(260, mp, sel))
	assert.Equal(t, DragStart, m.Press(258.5, mp, sel), "tie goes to start")
	assert.Equal(t, DragNone, m.Press(600, mp, sel), "last press wins")
}

func TestMarkers_PressUnknownDuration(t *testing.T) {
	t.Parallel()

	var m Markers
	assert.Equal(t, DragNone, m.Press(0, Mapper{View: FullViewport(), Width: 100}, NewSelection(0, 0.01)))
}

func TestMarkers_DragClampsStart(t *testing.T) {
	t.Parallel()

	sel := NewSelection(10, 0.01)
	sel.SetRange(0, 4.995)
	vp := FullViewport()
	mp := Mapper{View: vp, Width: 1000, Duration: 10}

	var m Markers
	assert.Equal(t, DragStart, m.Press(2, mp, sel))
	// x=500 is t=5.0, past the end marker.
	assert.True(t, m.Motion(500, mp, &sel, &vp))

	assert.InDelta(t, 4.985, sel.Start(), 1e-12)
	assert.InDelta(t, 4.995, sel.End(), 1e-12)
}

func TestMarkers_DragRecentresView(t *testing.T) {
	t.Parallel()

	sel := NewSelection(10, 0.01)
	vp := FullViewport()
	mp := Mapper{View: vp, Width: 1000, Duration: 10}

	var m Markers
	assert.Equal(t, DragEnd, m.Press(1000, mp, sel))
	assert.True(t, m.Motion(400, mp, &sel, &vp))

	assert.InDelta(t, 4.0, sel.End(), 1e-9)
	assert.InDelta(t, 0, vp.Start, 1e-9)
	assert.InDelta(t, 0.5, vp.End, 1e-9)
}

func TestMarkers_MotionWithoutDrag(t *testing.T) {
	t.Parallel()

	sel := NewSelection(10, 0.01)
	vp := Viewport{0.2, 0.4}
	mp := Mapper{View: vp, Width: 1000, Duration: 10}

	var m Markers
	assert.False(t, m.Motion(500, mp, &sel, &vp))
	assert.Equal(t, Viewport{0.2, 0.4}, vp)

	m.Press(0, Mapper{View: FullViewport(), Width: 1000, Duration: 10}, sel)
	m.Release()
	assert.Equal(t, DragNone, m.State())
	assert.False(t, m.Motion(500, mp, &sel, &vp))
}

func TestDragState_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "none", DragNone.String())
	assert.Equal(t, "start", DragStart.String())
	assert.Equal(t, "end", DragEnd.String())
}
