// SPDX-License-Identifier: EPL-2.0

package waveview

import "math"

const (
	// MinViewWidth is the narrowest visible fraction of the track.
	MinViewWidth = 1e-4
	// SelectionFill is the share of the view a zoomed selection occupies.
	SelectionFill = 0.8
)

// Viewport is the visible window [Start, End] over the whole track, in track
// fractions. Every method keeps 0 <= Start < End <= 1.
type Viewport struct {
	Start, End float64
}

func FullViewport() Viewport { return Viewport{Start: 0, End: 1} }

func (v Viewport) Width() float64 { return v.End - v.Start }

func (v Viewport) Valid() bool {
	return v.Start >= 0 && v.Start < v.End && v.End <= 1
}

func (v *Viewport) Reset() { *v = FullViewport() }

// ZoomAt scales the window width by factor around the point cursor, given
// as a fraction of the current view. factor < 1 zooms in.
func (v *Viewport) ZoomAt(cursor, factor float64) {
	if !(factor > 0) || math.IsInf(factor, 0) || math.IsNaN(cursor) {
		return
	}

	width := v.Width()
	center := v.Start + cursor*width
	v.place(center, width*factor)
}

// ZoomToSelection centres the track fractions [start, end] in the view and
// sizes it so the range fills SelectionFill of the width.
func (v *Viewport) ZoomToSelection(start, end float64) {
	if math.IsNaN(start) || math.IsNaN(end) {
		return
	}
	if end < start {
		start, end = end, start
	}

	width := max(MinViewWidth, end-start) / SelectionFill
	v.place((start+end)/2, width)
}

// Pan shifts the window by delta view widths.
func (v *Viewport) Pan(delta float64) {
	if math.IsNaN(delta) || math.IsInf(delta, 0) {
		return
	}

	width := v.Width()
	v.place(v.Start+width/2+delta*width, width)
}

// place sets a window of the given width around center. The width is
// clamped first; the window is then shifted, never resized, back inside
// [0, 1].
func (v *Viewport) place(center, width float64) {
	width = min(1, max(MinViewWidth, width))

	start := center - width/2
	end := start + width
	if end > 1 {
		start, end = 1-width, 1
	}
	if start < 0 {
		start, end = 0, width
	}

	v.Start, v.End = start, end
}
