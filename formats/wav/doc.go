// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes RIFF/WAVE audio through github.com/go-audio/wav.
//
// The Decoder accepts integer PCM (format tag 1 or WAVE_FORMAT_EXTENSIBLE)
// at 8, 16, 24 or 32 bits. Chunks before and between fmt and data are
// skipped. A file whose data chunk is empty decodes to a Source that reports
// io.EOF on the first read.
//
//	src, err := wav.Decoder{}.Decode(f)
//	if errors.Is(err, wav.ErrUnsupportedBitDepth) {
//	    // e.g. 12-bit or float data
//	}
//
// WriteMono16 is the inverse used by clip export:
//
//	err := wav.WriteMono16(out, 44100, samples)
package wav
