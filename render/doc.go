// SPDX-License-Identifier: EPL-2.0

// Package render draws waveform frames into any draw.Image.
//
// A frame is, in paint order: background, the visible envelope resampled to
// one point per column, the selection rectangle, the played overlay, the
// playback cursor with its dot and the two marker lines. The cursor is
// skipped when it falls outside the widget and the whole frame collapses to
// background when fewer than two envelope values are visible.
//
//	img := image.NewRGBA(image.Rect(0, 0, 800, 200))
//	render.Draw(img, render.Input{
//	    Values:       env.Values(),
//	    ViewStart:    0,
//	    ViewEnd:      1,
//	    Cursor:       0.25,
//	    VerticalZoom: 1,
//	}, render.DefaultTheme())
package render
