// SPDX-License-Identifier: EPL-2.0

// Package envelope reduces decoded audio to a compact min/max summary that
// can be redrawn at interactive rates.
//
// Extraction runs four steps: decode through an audio.Registry, downmix to
// mono by averaging, normalise by the global peak and decimate into
// fixed-size windows. A zero peak skips normalisation and an empty track
// yields an empty Envelope, never an error.
//
//	env, err := envelope.Extract("take1.wav", 50000)
//	var de *envelope.DecodeError
//	if errors.As(err, &de) {
//	    // unreadable or unsupported file
//	}
//
// For a host window, ExtractAsync decodes on a worker goroutine and hands
// over the finished Envelope through a channel:
//
//	res := <-x.ExtractAsync(ctx, path)
//
// # Layout
//
// An Envelope stores 2*floor(n/step) values, min and max interleaved, where
// step = max(1, floor(n/resolution)). The optional smoothing pass averages
// the min lane and the max lane separately, so min <= max holds for every
// pair whether or not it ran.
package envelope
