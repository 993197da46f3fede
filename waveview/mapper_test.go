// SPDX-License-Identifier: EPL-2.0

package waveview

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapper_Basics(t *testing.T) {
	t.Parallel()

	m := Mapper{View: Viewport{0.2, 0.6}, Width: 800, Duration: 10}

	f, ok := m.TimeToFraction(3)
	require.True(t, ok)
	assert.InDelta(t, 0.3, f, 1e-12)

	assert.InDelta(t, 200, m.FractionToX(0.3), 1e-9)
	assert.InDelta(t, 0, m.FractionToX(0.2), 1e-9)
	assert.InDelta(t, 800, m.FractionToX(0.6), 1e-9)
	assert.Less(t, m.FractionToX(0.1), 0.0)

	assert.InDelta(t, 0.4, m.XToFraction(400), 1e-12)
	assert.InDelta(t, 4, m.XToTime(400), 1e-9)

	x, ok := m.TimeToX(3)
	require.True(t, ok)
	assert.InDelta(t, 200, x, 1e-9)
}

func TestMapper_Guards(t *testing.T) {
	t.Parallel()

	m := Mapper{View: Viewport{0.2, 0.6}, Width: 0, Duration: 0}

	_, ok := m.TimeToFraction(1)
	assert.False(t, ok)
	_, ok = m.TimeToX(1)
	assert.False(t, ok)
	assert.Equal(t, 0.2, m.XToFraction(100))

	degenerate := Mapper{View: Viewport{0.5, 0.5}, Width: 100, Duration: 1}
	assert.Zero(t, degenerate.FractionToX(0.7))
}

func TestMapper_RoundTrip(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(13, 17))
	for range 5000 {
		vp := FullViewport()
		vp.ZoomAt(r.Float64(), 0.0001+r.Float64())
		m := Mapper{View: vp, Width: float64(1 + r.IntN(4000)), Duration: 1 + r.Float64()*600}

		f := vp.Start + r.Float64()*vp.Width()
		require.InDelta(t, f, m.XToFraction(m.FractionToX(f)), 1e-9)

		x := r.Float64() * m.Width
		require.InDelta(t, x, m.FractionToX(m.XToFraction(x)), 1e-6)
	}
}
