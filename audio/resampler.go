// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/waveloop/utils"
)

// Resampler streams src at a new sample rate using Catmull-Rom
// interpolation. Channel count is preserved. When downsampling, a one-pole
// low-pass smooths incoming frames before interpolation.
//
// Output frame k sits at source position k*SrcRate/DstRate; the stream ends
// once that position passes the last source frame.
type Resampler struct {
	src      Source
	dstRate  int
	step     float64 // source frames advanced per output frame
	channels int

	// history holds source frames index-1 .. index+2, edge frames repeated.
	history [4][]float32
	index   int     // source index of history[1]
	pos     float64 // fractional offset from index, in [0,1)
	read    int     // source frames consumed so far
	primed  bool
	eof     bool

	srcBuf  []float32
	bufPos  int
	bufLen  int
	lowpass bool
	state   []float32
}

const resampleChunk = 1024

func NewResampler(src Source, dstRate int) (*Resampler, error) {
	if dstRate <= 0 || src.SampleRate() <= 0 {
		return nil, ErrInvalidRate
	}

	channels := max(1, src.Channels())
	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		step:     float64(src.SampleRate()) / float64(dstRate),
		channels: channels,
		srcBuf:   make([]float32, channels*resampleChunk),
		state:    make([]float32, channels),
	}
	r.lowpass = r.step > 1
	for i := range r.history {
		r.history[i] = make([]float32, channels)
	}

	return r, nil
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("closing resampler source: %w", err)
	}
	return nil
}

// next reads one source frame into dst. It returns false once the source is
// exhausted, leaving dst untouched.
func (r *Resampler) next(dst []float32) (bool, error) {
	if r.bufPos+r.channels > r.bufLen {
		if r.eof {
			return false, nil
		}
		if err := r.fill(); err != nil {
			return false, err
		}
		if r.bufLen < r.channels {
			return false, nil
		}
	}

	frame := r.srcBuf[r.bufPos : r.bufPos+r.channels]
	r.bufPos += r.channels

	if r.lowpass {
		const alpha = 0.5
		for c := range r.channels {
			if r.read == 0 {
				r.state[c] = frame[c]
			}
			r.state[c] = alpha*frame[c] + (1-alpha)*r.state[c]
		}
		copy(dst, r.state)
	} else {
		copy(dst, frame)
	}
	r.read++

	return true, nil
}

func (r *Resampler) fill() error {
	r.bufPos, r.bufLen = 0, 0

	for r.bufLen < r.channels && !r.eof {
		n, err := r.src.ReadSamples(r.srcBuf)
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("resampler read: %w", err)
		}
		if errors.Is(err, io.EOF) || n == 0 {
			r.eof = true
		}
		r.bufLen = n - n%r.channels
	}

	return nil
}

func (r *Resampler) prime() error {
	r.primed = true

	ok, err := r.next(r.history[1])
	if err != nil {
		return err
	}
	if !ok {
		return io.EOF
	}
	copy(r.history[0], r.history[1])

	for i := 2; i < 4; i++ {
		ok, err := r.next(r.history[i])
		if err != nil {
			return err
		}
		if !ok {
			copy(r.history[i], r.history[i-1])
		}
	}

	return nil
}

func (r *Resampler) advance() error {
	r.index++
	r.history[0], r.history[1], r.history[2], r.history[3] =
		r.history[1], r.history[2], r.history[3], r.history[0]

	ok, err := r.next(r.history[3])
	if err != nil {
		return err
	}
	if !ok {
		copy(r.history[3], r.history[2])
	}

	return nil
}

// ReadSamples produces interleaved samples at the destination rate.
// len(dst) must be a multiple of Channels().
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0

	for written < frames {
		for r.pos >= 1 {
			r.pos--
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}

		if r.eof && float64(r.index)+r.pos > float64(r.read-1) {
			return written * r.channels, io.EOF
		}

		x := float32(r.pos)
		base := written * r.channels
		for c := range r.channels {
			dst[base+c] = utils.CubicInterpolate(
				r.history[0][c], r.history[1][c], r.history[2][c], r.history[3][c], x,
			)
		}

		written++
		r.pos += r.step
	}

	return written * r.channels, nil
}
