// SPDX-License-Identifier: EPL-2.0

package waveview

import "math"

// DefaultHitSlop is how close, in pixels, a press must land to grab a marker.
const DefaultHitSlop = 5.0

// DragState is the marker being dragged, if any.
type DragState int

const (
	DragNone DragState = iota
	DragStart
	DragEnd
)

func (d DragState) String() string {
	switch d {
	case DragStart:
		return "start"
	case DragEnd:
		return "end"
	default:
		return "none"
	}
}

// Markers is the press/motion/release state machine for the two loop
// markers.
type Markers struct {
	HitSlop float64
	state   DragState
}

func (m *Markers) State() DragState { return m.state }

// Press picks the marker within HitSlop pixels of x. When both are in reach
// the nearer one wins and ties go to the start marker. A press away from
// both markers, or with an unknown duration, ends any drag.
func (m *Markers) Press(x float64, mp Mapper, sel Selection) DragState {
	m.state = DragNone

	startF, endF, ok := sel.Fractions()
	if !ok || mp.Width <= 0 {
		return m.state
	}

	slop := m.HitSlop
	if slop <= 0 {
		slop = DefaultHitSlop
	}

	ds := math.Abs(x - mp.FractionToX(startF))
	de := math.Abs(x - mp.FractionToX(endF))

	switch {
	case ds <= slop && ds <= de:
		m.state = DragStart
	case de <= slop:
		m.state = DragEnd
	}

	return m.state
}

// Motion moves the dragged marker to the time under x and recentres vp on
// the new selection. It reports whether anything changed.
func (m *Markers) Motion(x float64, mp Mapper, sel *Selection, vp *Viewport) bool {
	if m.state == DragNone || sel.Duration() <= 0 || mp.Width <= 0 {
		return false
	}

	t := mp.XToFraction(x) * sel.Duration()
	switch m.state {
	case DragStart:
		sel.SetStart(t)
	case DragEnd:
		sel.SetEnd(t)
	}

	if start, end, ok := sel.Fractions(); ok {
		vp.ZoomToSelection(start, end)
	}

	return true
}

// Release ends the drag wherever the pointer is.
func (m *Markers) Release() { m.state = DragNone }
