// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF audio through github.com/go-audio/aiff.
//
// Integer PCM at 8, 16, 24 and 32 bits is supported. Samples are scaled to
// float32 in [-1, 1]; the channel layout and sample rate come from the COMM
// chunk.
//
//	src, err := aiff.Decoder{}.Decode(f)
//	if errors.Is(err, aiff.ErrNotAiffFile) {
//	    // wrong container
//	}
package aiff
