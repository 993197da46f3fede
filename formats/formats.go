// SPDX-License-Identifier: EPL-2.0

// Package formats wires the bundled decoders into an audio.Registry.
package formats

import (
	"github.com/ik5/waveloop/audio"
	"github.com/ik5/waveloop/formats/aiff"
	"github.com/ik5/waveloop/formats/mp3"
	"github.com/ik5/waveloop/formats/vorbis"
	"github.com/ik5/waveloop/formats/wav"
)

// NewRegistry returns a registry knowing every bundled container.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register(wav.Decoder{}, "wav", "wave")
	reg.Register(aiff.Decoder{}, "aiff", "aif")
	reg.Register(mp3.Decoder{}, "mp3")
	reg.Register(vorbis.Decoder{}, "ogg", "oga")

	return reg
}
