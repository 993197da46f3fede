// SPDX-License-Identifier: EPL-2.0

// Package transport defines the playback boundary the waveform view reads
// from, plus the two helpers that sit on it: the loop guard and the repaint
// ticker.
//
// Transports answer with comma-ok values because position and duration are
// often unknown right after a file is opened:
//
//	pos, ok := t.Position()
//	if !ok {
//	    // not prerolled yet
//	}
//
// PlaybackFraction folds those cases into a cursor fraction and KeepInLoop
// keeps playback inside the selected range. Refresher drives repaints no
// faster than MinRefreshInterval.
//
// The ebitenaudio subpackage provides a Controller backed by
// github.com/hajimehoshi/ebiten/v2/audio.
package transport
