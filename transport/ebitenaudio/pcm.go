// SPDX-License-Identifier: EPL-2.0

package ebitenaudio

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/ik5/waveloop/audio"
)

// bytesPerFrame is one stereo float32 frame as ebiten's F32 players expect.
const bytesPerFrame = 8

// encodeStereoF32 resamples src to rate when needed and lays it out as
// little-endian float32 stereo. Mono sources are duplicated to both
// channels; wider layouts are downmixed.
func encodeStereoF32(src audio.Source, rate int) ([]byte, int, error) {
	var stream audio.Source = src
	if src.Channels() > 2 {
		stream = audio.NewMonoMixer(stream)
	}
	if stream.SampleRate() != rate {
		rs, err := audio.NewResampler(stream, rate)
		if err != nil {
			return nil, 0, fmt.Errorf("resampling to %d Hz: %w", rate, err)
		}
		stream = rs
	}

	channels := stream.Channels()
	samples, err := audio.ReadAll(stream, 4096)
	if err != nil {
		return nil, 0, err
	}

	frames := len(samples) / channels
	pcm := make([]byte, frames*bytesPerFrame)
	for f := range frames {
		left := samples[f*channels]
		right := left
		if channels == 2 {
			right = samples[f*channels+1]
		}
		binary.LittleEndian.PutUint32(pcm[f*bytesPerFrame:], math.Float32bits(left))
		binary.LittleEndian.PutUint32(pcm[f*bytesPerFrame+4:], math.Float32bits(right))
	}

	return pcm, frames, nil
}
