// SPDX-License-Identifier: EPL-2.0

// Package clip writes the loop selection of a track to a new file.
//
//	f, _ := os.Create("loop.wav")
//	info, err := clip.NewExporter().Export(ctx, "take1.mp3", 2*time.Second, 6*time.Second, f)
//
// The clip is mixed down to mono and encoded as 16-bit PCM WAV at the rate
// of the source.
package clip
