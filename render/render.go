// SPDX-License-Identifier: EPL-2.0

package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"
)

// cursorDot is the radius in pixels of the dot drawn on the cursor line.
const cursorDot = 2

// Input is everything one frame depends on. Fractions are relative to the
// whole track.
type Input struct {
	// Values is the interleaved min/max envelope.
	Values []float32

	ViewStart, ViewEnd float64

	// Selection is drawn only when HasSelection is set.
	HasSelection     bool
	SelStart, SelEnd float64

	// Cursor is the playback position.
	Cursor float64

	VerticalZoom float64
}

// Draw paints one frame into dst.Bounds(). It reads in and writes only dst,
// so identical inputs give identical pixels.
func Draw(dst draw.Image, in Input, theme Theme) {
	r := dst.Bounds()
	draw.Draw(dst, r, &image.Uniform{theme.Background}, image.Point{}, draw.Src)

	w, h := r.Dx(), r.Dy()
	if w <= 0 || h <= 0 || !(in.ViewEnd > in.ViewStart) {
		return
	}

	points := Visible(in.Values, in.ViewStart, in.ViewEnd, w)
	if points == nil {
		return
	}

	mid := h / 2
	amp := int(float64(h/2-2) * in.VerticalZoom)
	drawPolyline(dst, r, points, mid, amp, theme.Waveform)

	toX := func(f float64) float64 {
		return (f - in.ViewStart) / (in.ViewEnd - in.ViewStart) * float64(w)
	}

	var x1, x2 float64
	if in.HasSelection {
		x1, x2 = toX(in.SelStart), toX(in.SelEnd)
		left, right := min(x1, x2), max(x1, x2)
		fill(dst, image.Rect(pixel(left), 0, pixel(right), h).Add(r.Min), theme.Selection)
	}

	cx := toX(in.Cursor)
	if cx > 0 {
		fill(dst, image.Rect(0, 0, pixel(min(cx, float64(w))), h).Add(r.Min), theme.Played)

		if cx <= float64(w) {
			x := min(pixel(cx), w-1)
			vline(dst, r, x, theme.Cursor)
			dot(dst, r, image.Pt(x, mid), theme.Cursor)
		}
	}

	if in.HasSelection {
		for _, x := range []float64{x1, x2} {
			if x >= 0 && x <= float64(w) {
				vline(dst, r, min(pixel(x), w-1), theme.Marker)
			}
		}
	}
}

// Visible resamples the part of values inside [viewStart, viewEnd) to
// exactly width points, interpolating linearly over the index. It returns
// nil when fewer than two values are visible.
func Visible(values []float32, viewStart, viewEnd float64, width int) []float32 {
	n := len(values)
	if n == 0 || width <= 0 {
		return nil
	}

	lo := max(0, int(viewStart*float64(n)))
	hi := min(int(viewEnd*float64(n)), n-1)
	if hi-lo < 2 {
		return nil
	}
	visible := values[lo:hi]

	out := make([]float32, width)
	if width == 1 {
		out[0] = visible[0]
		return out
	}

	last := float64(len(visible) - 1)
	for i := range out {
		pos := float64(i) * last / float64(width-1)
		j := int(pos)
		if j >= len(visible)-1 {
			out[i] = visible[len(visible)-1]
			continue
		}
		frac := float32(pos - float64(j))
		out[i] = visible[j] + (visible[j+1]-visible[j])*frac
	}

	return out
}

// drawPolyline joins consecutive points with vertical spans, one column per
// point.
func drawPolyline(dst draw.Image, r image.Rectangle, points []float32, mid, amp int, c color.Color) {
	src := &image.Uniform{c}
	prev := mid - int(points[0]*float32(amp))

	for x, v := range points {
		y := mid - int(v*float32(amp))
		top, bottom := min(prev, y), max(prev, y)
		span := image.Rect(x, top, x+1, bottom+1).Add(r.Min)
		draw.Draw(dst, span.Intersect(r), src, image.Point{}, draw.Src)
		prev = y
	}
}

func fill(dst draw.Image, rect image.Rectangle, c color.Color) {
	draw.Draw(dst, rect.Intersect(dst.Bounds()), &image.Uniform{c}, image.Point{}, draw.Over)
}

func vline(dst draw.Image, r image.Rectangle, x int, c color.Color) {
	line := image.Rect(x, 0, x+1, r.Dy()).Add(r.Min)
	draw.Draw(dst, line.Intersect(r), &image.Uniform{c}, image.Point{}, draw.Src)
}

func dot(dst draw.Image, r image.Rectangle, center image.Point, c color.Color) {
	for dy := -cursorDot; dy <= cursorDot; dy++ {
		for dx := -cursorDot; dx <= cursorDot; dx++ {
			if dx*dx+dy*dy > cursorDot*cursorDot {
				continue
			}
			p := center.Add(image.Pt(dx, dy)).Add(r.Min)
			if p.In(r) {
				dst.Set(p.X, p.Y, c)
			}
		}
	}
}

func pixel(x float64) int {
	return int(math.Floor(x))
}
