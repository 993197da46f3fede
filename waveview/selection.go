// SPDX-License-Identifier: EPL-2.0

package waveview

import "math"

// DefaultMinGap is the shortest selection, in seconds.
const DefaultMinGap = 0.01

// Selection is the loop range in seconds. While the duration is known every
// method keeps 0 <= Start, Start+gap <= End and End <= Duration. With an
// unknown (zero) duration the setters do nothing.
type Selection struct {
	start, end, duration float64
	gap                  float64
}

// NewSelection spans the whole track.
func NewSelection(duration, minGap float64) Selection {
	if minGap <= 0 {
		minGap = DefaultMinGap
	}
	duration = max(0, duration)

	return Selection{end: duration, duration: duration, gap: minGap}
}

func (s Selection) Start() float64    { return s.start }
func (s Selection) End() float64      { return s.end }
func (s Selection) Duration() float64 { return s.duration }
func (s Selection) MinGap() float64   { return s.gap }

// Fractions returns the range as track fractions; ok is false while the
// duration is unknown.
func (s Selection) Fractions() (start, end float64, ok bool) {
	if s.duration <= 0 {
		return 0, 0, false
	}
	return s.start / s.duration, s.end / s.duration, true
}

// SetStart moves the start marker to t, keeping it at least the minimum gap
// before the end marker.
func (s *Selection) SetStart(t float64) {
	if s.duration <= 0 || math.IsNaN(t) {
		return
	}
	s.start = max(0, min(t, s.end-s.gap))
}

// SetEnd moves the end marker to t, keeping it at least the minimum gap
// after the start marker.
func (s *Selection) SetEnd(t float64) {
	if s.duration <= 0 || math.IsNaN(t) {
		return
	}
	s.end = min(s.duration, max(t, s.start+s.gap))
}

// SetRange replaces both markers. When the range is shorter than the
// minimum gap the end is pushed out first, then the start pulled in.
func (s *Selection) SetRange(start, end float64) {
	if s.duration <= 0 || math.IsNaN(start) || math.IsNaN(end) {
		return
	}
	if end < start {
		start, end = end, start
	}

	start = min(max(0, start), s.duration)
	end = min(max(0, end), s.duration)
	if end < start+s.gap {
		end = min(s.duration, start+s.gap)
	}
	if start > end-s.gap {
		start = max(0, end-s.gap)
	}

	s.start, s.end = start, end
}

// SetDuration adopts a newly known track length. The end marker keeps its
// distance from the track end, so an end marker sitting on the old end stays
// pinned to the new one. A distance that no longer fits resets the end to
// the track end.
func (s *Selection) SetDuration(d float64) {
	if d <= 0 {
		return
	}

	delta := s.end - s.duration
	if delta <= -d {
		delta = 0
	}

	s.duration = d
	s.end = min(d, max(0, d+delta))
	s.start = min(max(0, s.start), d)
	if s.end < s.start+s.gap {
		s.start = max(0, s.end-s.gap)
	}
	if s.end < s.start+s.gap {
		s.end = min(d, s.start+s.gap)
	}
}
