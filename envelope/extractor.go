// SPDX-License-Identifier: EPL-2.0

package envelope

import (
	"context"
	"fmt"
	"os"

	"github.com/ik5/waveloop/audio"
	"github.com/ik5/waveloop/formats"
	"github.com/sirupsen/logrus"
)

// Option configures an Extractor.
type Option func(*Extractor)

// WithResolution sets the requested pair count. Values below 1 select
// DefaultResolution.
func WithResolution(pairs int) Option {
	return func(x *Extractor) {
		if pairs < 1 {
			pairs = DefaultResolution
		}
		x.resolution = pairs
	}
}

// WithSmoothing toggles the cosmetic 3-tap smoothing pass. It is on by
// default.
func WithSmoothing(enabled bool) Option {
	return func(x *Extractor) { x.smooth = enabled }
}

// WithRegistry replaces the bundled codec registry.
func WithRegistry(reg *audio.Registry) Option {
	return func(x *Extractor) {
		if reg != nil {
			x.registry = reg
		}
	}
}

// WithBufferSize sets the frames requested per decoder read.
func WithBufferSize(frames int) Option {
	return func(x *Extractor) { x.bufferSize = frames }
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(x *Extractor) {
		if log != nil {
			x.log = log
		}
	}
}

// Extractor turns audio files into envelopes. It holds no per-file state and
// may be shared between goroutines.
type Extractor struct {
	resolution int
	smooth     bool
	registry   *audio.Registry
	bufferSize int
	log        logrus.FieldLogger
}

func NewExtractor(opts ...Option) *Extractor {
	x := &Extractor{
		resolution: DefaultResolution,
		smooth:     true,
		bufferSize: 4096,
		log:        logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(x)
	}
	if x.registry == nil {
		x.registry = formats.NewRegistry()
	}

	return x
}

// Extract decodes path with the bundled codecs and reduces it to at most
// resolution pairs.
func Extract(path string, resolution int) (*Envelope, error) {
	return NewExtractor(WithResolution(resolution)).Extract(path)
}

func (x *Extractor) Extract(path string) (*Envelope, error) {
	return x.ExtractContext(context.Background(), path)
}

// ExtractContext is Extract with cancellation between decoder reads. Any
// failure to open or decode the file is returned as a *DecodeError.
func (x *Extractor) ExtractContext(ctx context.Context, path string) (*Envelope, error) {
	log := x.log.WithFields(logrus.Fields{
		"function": "ExtractContext",
		"path":     path,
	})

	dec, err := x.registry.Lookup(path)
	if err != nil {
		log.WithError(err).Error("No decoder for file")
		return nil, &DecodeError{Path: path, Err: err}
	}

	f, err := os.Open(path)
	if err != nil {
		log.WithError(err).Error("Failed to open file")
		return nil, &DecodeError{Path: path, Err: err}
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		log.WithError(err).Error("Failed to decode file")
		return nil, &DecodeError{Path: path, Err: err}
	}

	env, err := x.extract(ctx, src)
	if err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		log.WithError(err).Error("Failed to read samples")
		return nil, &DecodeError{Path: path, Err: err}
	}

	log.WithFields(logrus.Fields{
		"pairs":       env.Len(),
		"step":        env.Step(),
		"sample_rate": env.SampleRate(),
		"duration":    env.Duration().String(),
	}).Info("Envelope extracted")

	return env, nil
}

// ExtractSource builds an envelope from an already opened stream. The source
// is closed before returning.
func (x *Extractor) ExtractSource(src audio.Source) (*Envelope, error) {
	return x.extract(context.Background(), src)
}

func (x *Extractor) extract(ctx context.Context, src audio.Source) (*Envelope, error) {
	defer src.Close()

	mono, err := audio.ReadAllMonoContext(ctx, src, x.bufferSize)
	if err != nil {
		return nil, fmt.Errorf("decoding samples: %w", err)
	}

	return x.FromSamples(Samples{Data: mono, SampleRate: src.SampleRate()}), nil
}

// FromSamples normalises s.Data in place and decimates it.
func (x *Extractor) FromSamples(s Samples) *Envelope {
	peak := Normalize(s.Data)
	values, step := Decimate(s.Data, x.resolution)
	if x.smooth {
		values = Smooth(values)
	}

	x.log.WithFields(logrus.Fields{
		"function": "FromSamples",
		"frames":   s.Len(),
		"peak":     peak,
		"step":     step,
		"smoothed": x.smooth,
	}).Debug("Decimated samples")

	return New(values, step, s.Len(), s.SampleRate)
}
