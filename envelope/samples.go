// SPDX-License-Identifier: EPL-2.0

package envelope

import "time"

// Samples is a decoded mono track with amplitudes in [-1, 1].
type Samples struct {
	Data       []float32
	SampleRate int
}

func (s Samples) Len() int { return len(s.Data) }

// Duration is zero when the sample rate is unknown.
func (s Samples) Duration() time.Duration {
	return framesToDuration(len(s.Data), s.SampleRate)
}

// Normalize scales data in place so its largest absolute value becomes 1 and
// returns the peak it divided by. Silence (peak 0) is left untouched.
func Normalize(data []float32) float32 {
	var peak float32
	for _, v := range data {
		if v < 0 {
			v = -v
		}
		peak = max(peak, v)
	}

	if peak == 0 {
		return 0
	}

	inv := 1 / peak
	for i := range data {
		data[i] *= inv
	}

	return peak
}
