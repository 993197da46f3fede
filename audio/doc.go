// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives every decoder and consumer
// in waveloop builds on.
//
//   - Source: an interleaved float32 PCM stream in [-1, 1]
//   - Decoder: builds a Source from an io.Reader
//   - Registry: finds a Decoder by file extension
//   - MonoMixer: downmixes to one channel by averaging
//   - Resampler: cubic sample rate conversion
//   - ReadAll / ReadAllMono: drain a Source into memory
//
// # Registry
//
//	reg := audio.NewRegistry()
//	reg.Register(wav.Decoder{}, "wav", "wave")
//	dec, err := reg.Lookup("/music/take1.WAV")
//	if errors.Is(err, audio.ErrUnsupportedFormat) {
//	    // unknown extension
//	}
//
// Keys are case-insensitive and may be given with or without the leading dot.
//
// # Sample Format
//
// Samples are float32 values where 0.0 is silence and ±1.0 is full scale.
// ReadSamples returns the number of float32 values written, not frames, and
// io.EOF once the stream is exhausted (possibly together with the last
// samples).
//
// # Draining
//
// The envelope extractor needs the whole track in memory:
//
//	mono, err := audio.ReadAllMono(src, 4096)
//
// Streams that finish without any audio produce an empty slice, not an error.
package audio
