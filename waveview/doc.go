// SPDX-License-Identifier: EPL-2.0

// Package waveview holds the interactive state of a waveform widget and
// turns pointer and wheel input into viewport and loop selection changes.
//
// Three coordinate spaces meet here: track fractions in [0, 1], seconds
// within the track, and pixel columns of the widget. A Mapper converts
// between them for the current Viewport.
//
//	v := waveview.New(waveview.DefaultConfig(), nil)
//	v.Resize(800, 120)
//	v.Load(ctx, "take1.wav")
//
//	// once per UI tick
//	if done, err := v.Poll(); done && err != nil {
//	    // the widget stays empty
//	}
//	frame, _ := v.Render(player)
//
// The loop markers are grabbed within Config.HitSlop pixels. Dragging one
// keeps at least Config.MinGap seconds between them and recentres the view
// on the selection.
package waveview
