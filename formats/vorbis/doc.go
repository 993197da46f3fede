// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio through
// github.com/jfreymuth/oggvorbis.
//
// Vorbis decodes natively to float32 so samples are passed through without
// conversion. Reads are trimmed to whole frames.
//
//	src, err := vorbis.Decoder{}.Decode(f)
package vorbis
