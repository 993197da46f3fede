// SPDX-License-Identifier: EPL-2.0

package waveview

// Mapper converts between track time (seconds), track fractions and widget
// pixels for one viewport, widget width and track duration.
type Mapper struct {
	View     Viewport
	Width    float64
	Duration float64
}

// TimeToFraction reports false when the duration is unknown.
func (m Mapper) TimeToFraction(t float64) (float64, bool) {
	if m.Duration <= 0 {
		return 0, false
	}
	return t / m.Duration, true
}

func (m Mapper) FractionToTime(f float64) float64 {
	return f * m.Duration
}

// FractionToX maps a track fraction to a pixel column. Fractions outside the
// view map outside [0, Width].
func (m Mapper) FractionToX(f float64) float64 {
	w := m.View.Width()
	if w <= 0 {
		return 0
	}
	return (f - m.View.Start) / w * m.Width
}

// XToFraction is the inverse of FractionToX. A zero-width widget maps
// everything to the view start.
func (m Mapper) XToFraction(x float64) float64 {
	if m.Width <= 0 {
		return m.View.Start
	}
	return m.View.Start + x/m.Width*m.View.Width()
}

func (m Mapper) XToTime(x float64) float64 {
	return m.FractionToTime(m.XToFraction(x))
}

func (m Mapper) TimeToX(t float64) (float64, bool) {
	f, ok := m.TimeToFraction(t)
	if !ok {
		return 0, false
	}
	return m.FractionToX(f), true
}
