// SPDX-License-Identifier: EPL-2.0

package waveview

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewport_ZoomAt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		from           Viewport
		cursor, factor float64
		want           Viewport
	}{
		{name: "centre zoom in", from: FullViewport(), cursor: 0.5, factor: 0.8, want: Viewport{0.1, 0.9}},
		{name: "left edge shifts", from: FullViewport(), cursor: 0, factor: 0.5, want: Viewport{0, 0.5}},
		{name: "right edge shifts", from: FullViewport(), cursor: 1, factor: 0.5, want: Viewport{0.5, 1}},
		{name: "zoom out clamps to full", from: Viewport{0.4, 0.6}, cursor: 0.5, factor: 100, want: FullViewport()},
		{name: "zoom out near edge shifts", from: Viewport{0.8, 1}, cursor: 0.5, factor: 2, want: Viewport{0.6, 1}},
		{name: "min width", from: Viewport{0.5, 0.5002}, cursor: 0.5, factor: 0.01, want: Viewport{0.5001 - MinViewWidth/2, 0.5001 + MinViewWidth/2}},
		{name: "zero factor ignored", from: Viewport{0.2, 0.4}, cursor: 0.5, factor: 0, want: Viewport{0.2, 0.4}},
		{name: "nan factor ignored", from: Viewport{0.2, 0.4}, cursor: 0.5, factor: math.NaN(), want: Viewport{0.2, 0.4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			vp := tt.from
			vp.ZoomAt(tt.cursor, tt.factor)
			assert.InDelta(t, tt.want.Start, vp.Start, 1e-9)
			assert.InDelta(t, tt.want.End, vp.End, 1e-9)
			assert.True(t, vp.Valid())
		})
	}
}

func TestViewport_ZoomToSelection(t *testing.T) {
	t.Parallel()

	// Selection [2, 3] s of a 10 s track.
	vp := FullViewport()
	vp.ZoomToSelection(2.0/10, 3.0/10)
	assert.InDelta(t, 0.1875, vp.Start, 1e-9)
	assert.InDelta(t, 0.3125, vp.End, 1e-9)

	vp.ZoomToSelection(0.95, 1)
	assert.InDelta(t, 1-0.0625, vp.Start, 1e-9)
	assert.InDelta(t, 1.0, vp.End, 1e-9)

	vp.ZoomToSelection(0, 1)
	assert.Equal(t, FullViewport(), vp)

	vp.ZoomToSelection(0.3, 0.3)
	assert.InDelta(t, MinViewWidth/SelectionFill, vp.Width(), 1e-12)

	vp.ZoomToSelection(0.6, 0.4)
	assert.InDelta(t, 0.5, (vp.Start+vp.End)/2, 1e-9)
	assert.InDelta(t, 0.25, vp.Width(), 1e-9)
}

func TestViewport_PanAndReset(t *testing.T) {
	t.Parallel()

	vp := Viewport{0.2, 0.4}
	vp.Pan(0.5)
	assert.InDelta(t, 0.3, vp.Start, 1e-9)
	assert.InDelta(t, 0.5, vp.End, 1e-9)

	vp.Pan(-10)
	assert.InDelta(t, 0, vp.Start, 1e-9)
	assert.InDelta(t, 0.2, vp.End, 1e-9)

	vp.Pan(10)
	assert.InDelta(t, 0.8, vp.Start, 1e-9)
	assert.InDelta(t, 1, vp.End, 1e-9)

	vp.Reset()
	assert.Equal(t, FullViewport(), vp)
}

func TestViewport_InvariantUnderRandomOperations(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(7, 11))
	vp := FullViewport()

	for i := range 20000 {
		switch r.IntN(5) {
		case 0:
			vp.ZoomAt(r.Float64()*1.4-0.2, r.Float64()*3)
		case 1:
			a, b := r.Float64(), r.Float64()
			vp.ZoomToSelection(a, b)
		case 2:
			vp.Pan(r.Float64()*4 - 2)
		case 3:
			vp.ZoomAt(0.5, 0.1)
		case 4:
			if r.IntN(50) == 0 {
				vp.Reset()
			}
		}
		require.True(t, vp.Valid(), "step %d: %+v", i, vp)
		require.GreaterOrEqual(t, vp.Width(), MinViewWidth*(1-1e-9), "step %d", i)
	}
}
