// SPDX-License-Identifier: EPL-2.0

// Package waveloop draws the amplitude envelope of an audio track and lets
// the user pick a loop range on it.
//
// The work is split over a few packages:
//
//   - audio: the Source stream, the codec Registry, mixing and resampling
//   - formats: WAV, AIFF, MP3 and Ogg Vorbis decoders; formats.NewRegistry
//     bundles them
//   - envelope: decimation of a decoded track into min/max pairs
//   - waveview: viewport, selection and marker drag state of the widget
//   - render: rasterises one frame into any draw.Image
//   - transport: playback position contract, loop enforcement and the
//     repaint ticker; transport/ebitenaudio plays tracks through ebiten
//   - clip: writes a selected range as a WAV file
//
// # Quick Start
//
//	env, err := envelope.Extract("take1.wav", 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	v := waveview.New(waveview.DefaultConfig(), nil)
//	v.SetEnvelope(env)
//	v.Resize(800, 200)
//	v.SetSelection(2, 6)
//	v.ZoomToSelection()
//
//	frame, _ := v.Render(nil)
//	png.Encode(out, frame)
//
// The cmd/waveloop binary wraps the same pieces in an ebiten window and a
// few headless subcommands.
package waveloop
