// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"testing"

	"github.com/ik5/waveloop/internal/audiotest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResampler_InvalidRate(t *testing.T) {
	t.Parallel()

	_, err := NewResampler(audiotest.NewSilentSource(8000, 1, 10), 0)
	assert.ErrorIs(t, err, ErrInvalidRate)

	_, err = NewResampler(audiotest.NewSilentSource(0, 1, 10), 8000)
	assert.ErrorIs(t, err, ErrInvalidRate)
}

func TestResampler_FrameCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		srcRate  int
		dstRate  int
		frames   int
		channels int
		want     int
	}{
		{name: "same rate", srcRate: 8000, dstRate: 8000, frames: 100, channels: 1, want: 100},
		{name: "halving", srcRate: 16000, dstRate: 8000, frames: 100, channels: 1, want: 50},
		{name: "doubling", srcRate: 8000, dstRate: 16000, frames: 100, channels: 2, want: 199},
		{name: "single frame", srcRate: 44100, dstRate: 48000, frames: 1, channels: 2, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := audiotest.NewSineSource(tt.srcRate, tt.channels, tt.frames, 440)
			r, err := NewResampler(src, tt.dstRate)
			require.NoError(t, err)

			out, err := ReadAll(r, 64*tt.channels)
			require.NoError(t, err)
			assert.Len(t, out, tt.want*tt.channels)
		})
	}
}

func TestResampler_SameRateIsIdentity(t *testing.T) {
	t.Parallel()

	data := []float32{0, 0.25, 0.5, -0.5, 1, -1, 0.125}
	r, err := NewResampler(audiotest.NewSliceSource(8000, 1, data), 8000)
	require.NoError(t, err)

	out, err := ReadAll(r, 4)
	require.NoError(t, err)
	require.Len(t, out, len(data))
	for i := range data {
		assert.InDelta(t, data[i], out[i], 1e-6, "sample %d", i)
	}
}

func TestResampler_ConstantPreserved(t *testing.T) {
	t.Parallel()

	r, err := NewResampler(audiotest.NewConstantSource(44100, 2, 4410, 0.3), 48000)
	require.NoError(t, err)

	out, err := ReadAll(r, 1024)
	require.NoError(t, err)
	for i, v := range out {
		assert.InDelta(t, 0.3, v, 1e-5, "sample %d", i)
	}
}

func TestResampler_InvalidDstSize(t *testing.T) {
	t.Parallel()

	r, err := NewResampler(audiotest.NewSilentSource(8000, 2, 10), 8000)
	require.NoError(t, err)

	_, err = r.ReadSamples(make([]float32, 3))
	assert.ErrorIs(t, err, ErrInvalidDstSize)
}

func TestResampler_EmptySource(t *testing.T) {
	t.Parallel()

	r, err := NewResampler(audiotest.NewSilentSource(8000, 1, 0), 16000)
	require.NoError(t, err)

	n, err := r.ReadSamples(make([]float32, 8))
	assert.Zero(t, n)
	assert.ErrorIs(t, err, io.EOF)
}

func TestResampler_PropagatesErrors(t *testing.T) {
	t.Parallel()

	r, err := NewResampler(audiotest.NewFailingSource(8000, 1, 5), 8000)
	require.NoError(t, err)

	_, err = ReadAll(r, 2)
	assert.ErrorIs(t, err, audiotest.ErrBroken)
}

func BenchmarkResampler_Downsample(b *testing.B) {
	buf := make([]float32, 4096)
	b.ReportAllocs()

	for range b.N {
		r, _ := NewResampler(audiotest.NewSineSource(44100, 2, 44100, 440), 8000)
		for {
			if _, err := r.ReadSamples(buf); err != nil {
				break
			}
		}
	}
}
