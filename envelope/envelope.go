// SPDX-License-Identifier: EPL-2.0

package envelope

import "time"

// DefaultResolution is the pair count requested when none is given.
const DefaultResolution = 50000

// Envelope is an immutable min/max summary of a track. Values are stored
// interleaved: min0, max0, min1, max1, ...
type Envelope struct {
	values     []float32
	step       int
	frames     int
	sampleRate int
}

// New wraps already decimated values. It is mostly useful to tests and
// hosts that build envelopes elsewhere.
func New(values []float32, step, frames, sampleRate int) *Envelope {
	return &Envelope{
		values:     values[:len(values)-len(values)%2],
		step:       step,
		frames:     frames,
		sampleRate: sampleRate,
	}
}

// Len returns the number of (min, max) pairs. A nil Envelope is empty.
func (e *Envelope) Len() int {
	if e == nil {
		return 0
	}
	return len(e.values) / 2
}

func (e *Envelope) Pair(i int) (lo, hi float32) {
	return e.values[2*i], e.values[2*i+1]
}

// Values exposes the interleaved sequence. Callers must not modify it.
func (e *Envelope) Values() []float32 {
	if e == nil {
		return nil
	}
	return e.values
}

// Step is the number of samples summarised by each pair.
func (e *Envelope) Step() int { return e.step }

// Frames is the length of the mono track the envelope was built from.
func (e *Envelope) Frames() int { return e.frames }

func (e *Envelope) SampleRate() int { return e.sampleRate }

func (e *Envelope) Duration() time.Duration {
	if e == nil {
		return 0
	}
	return framesToDuration(e.frames, e.sampleRate)
}

func framesToDuration(frames, rate int) time.Duration {
	if rate <= 0 {
		return 0
	}
	return time.Duration(frames) * time.Second / time.Duration(rate)
}

// Decimate reduces samples to interleaved per-window minima and maxima.
// The window size is max(1, len/resolution); a trailing partial window is
// dropped. Resolution below 1 selects DefaultResolution.
func Decimate(samples []float32, resolution int) (values []float32, step int) {
	if resolution < 1 {
		resolution = DefaultResolution
	}

	step = max(1, len(samples)/resolution)
	pairs := len(samples) / step
	values = make([]float32, 2*pairs)

	for p := range pairs {
		window := samples[p*step : (p+1)*step]
		lo, hi := window[0], window[0]
		for _, v := range window[1:] {
			lo = min(lo, v)
			hi = max(hi, v)
		}
		values[2*p], values[2*p+1] = lo, hi
	}

	return values, step
}

// Smooth applies a 3-tap moving average to the min lane and the max lane
// separately and returns a new slice of the same length. The first and last
// pair are kept as is. min <= max still holds for every pair afterwards.
func Smooth(values []float32) []float32 {
	out := make([]float32, len(values))
	copy(out, values)

	pairs := len(values) / 2
	for lane := range 2 {
		for p := 1; p < pairs-1; p++ {
			i := 2*p + lane
			out[i] = (values[i-2] + values[i] + values[i+2]) / 3
		}
	}

	return out
}
