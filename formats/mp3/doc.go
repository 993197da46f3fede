// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1 Layer III audio through
// github.com/hajimehoshi/go-mp3.
//
// The decoder always produces two interleaved channels at the stream's
// sample rate; mono files are duplicated to both channels by go-mp3.
// Downstream mono mixing therefore sees identical channels and the envelope
// is unaffected.
//
//	src, err := mp3.Decoder{}.Decode(f)
package mp3
