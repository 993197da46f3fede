// SPDX-License-Identifier: EPL-2.0

package ebitenaudio

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/ik5/waveloop/internal/audiotest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frameAt(pcm []byte, f int) (float32, float32) {
	l := math.Float32frombits(binary.LittleEndian.Uint32(pcm[f*bytesPerFrame:]))
	r := math.Float32frombits(binary.LittleEndian.Uint32(pcm[f*bytesPerFrame+4:]))
	return l, r
}

func TestEncodeStereoF32_Stereo(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSliceSource(48000, 2, []float32{0.1, -0.1, 0.2, -0.2})
	pcm, frames, err := encodeStereoF32(src, 48000)
	require.NoError(t, err)

	require.Equal(t, 2, frames)
	require.Len(t, pcm, 2*bytesPerFrame)
	l, r := frameAt(pcm, 1)
	assert.Equal(t, float32(0.2), l)
	assert.Equal(t, float32(-0.2), r)
}

func TestEncodeStereoF32_MonoDuplicated(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSliceSource(48000, 1, []float32{0.5, -0.25})
	pcm, frames, err := encodeStereoF32(src, 48000)
	require.NoError(t, err)

	require.Equal(t, 2, frames)
	l, r := frameAt(pcm, 0)
	assert.Equal(t, float32(0.5), l)
	assert.Equal(t, float32(0.5), r)
}

func TestEncodeStereoF32_Surround(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(48000, 6, 10, 0.3)
	pcm, frames, err := encodeStereoF32(src, 48000)
	require.NoError(t, err)

	require.Equal(t, 10, frames)
	l, r := frameAt(pcm, 9)
	assert.InDelta(t, 0.3, l, 1e-6)
	assert.InDelta(t, 0.3, r, 1e-6)
}

func TestEncodeStereoF32_Resamples(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(24000, 2, 100, 0.5)
	pcm, frames, err := encodeStereoF32(src, 48000)
	require.NoError(t, err)

	assert.Equal(t, 199, frames)
	assert.Len(t, pcm, 199*bytesPerFrame)
	l, _ := frameAt(pcm, 100)
	assert.InDelta(t, 0.5, l, 1e-5)
}

func TestEncodeStereoF32_Error(t *testing.T) {
	t.Parallel()

	_, _, err := encodeStereoF32(audiotest.NewFailingSource(48000, 2, 10), 48000)
	assert.ErrorIs(t, err, audiotest.ErrBroken)
}
