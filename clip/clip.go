// SPDX-License-Identifier: EPL-2.0

package clip

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/ik5/waveloop/audio"
	"github.com/ik5/waveloop/formats"
	"github.com/ik5/waveloop/formats/wav"
	"github.com/sirupsen/logrus"
)

// Option configures an Exporter.
type Option func(*Exporter)

// WithRegistry replaces the bundled codec registry.
func WithRegistry(reg *audio.Registry) Option {
	return func(e *Exporter) {
		if reg != nil {
			e.registry = reg
		}
	}
}

// WithBufferSize sets the frames requested per decoder read.
func WithBufferSize(frames int) Option {
	return func(e *Exporter) {
		if frames > 0 {
			e.bufferSize = frames
		}
	}
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(e *Exporter) {
		if log != nil {
			e.log = log
		}
	}
}

// Info describes a written clip.
type Info struct {
	SampleRate int
	Frames     int
}

func (i Info) Duration() time.Duration {
	if i.SampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(i.Frames) / float64(i.SampleRate) * float64(time.Second))
}

// Exporter cuts a time range out of a track and writes it as mono 16-bit
// PCM WAV.
type Exporter struct {
	registry   *audio.Registry
	bufferSize int
	log        logrus.FieldLogger
}

func NewExporter(opts ...Option) *Exporter {
	e := &Exporter{
		bufferSize: 4096,
		log:        logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.registry == nil {
		e.registry = formats.NewRegistry()
	}

	return e
}

// Export decodes path and writes [start, end) to out. An end past the track
// is clipped to the track length.
func (e *Exporter) Export(ctx context.Context, path string, start, end time.Duration, out io.WriteSeeker) (Info, error) {
	log := e.log.WithFields(logrus.Fields{
		"function": "Export",
		"path":     path,
		"start":    start.String(),
		"end":      end.String(),
	})

	dec, err := e.registry.Lookup(path)
	if err != nil {
		log.WithField("error", err.Error()).Error("No decoder for clip source")
		return Info{}, fmt.Errorf("exporting %s: %w", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		log.WithField("error", err.Error()).Error("Failed to open clip source")
		return Info{}, fmt.Errorf("exporting %s: %w", path, err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		log.WithField("error", err.Error()).Error("Failed to decode clip source")
		return Info{}, fmt.Errorf("exporting %s: %w", path, err)
	}

	info, err := e.ExportSource(ctx, src, start, end, out)
	if err != nil {
		log.WithField("error", err.Error()).Error("Clip export failed")
		return Info{}, fmt.Errorf("exporting %s: %w", path, err)
	}

	log.WithFields(logrus.Fields{
		"frames":   info.Frames,
		"duration": info.Duration().String(),
	}).Info("Clip exported")

	return info, nil
}

// ExportSource writes the [start, end) window of src to out and closes src.
// Negative starts count from the beginning of the track.
func (e *Exporter) ExportSource(ctx context.Context, src audio.Source, start, end time.Duration, out io.WriteSeeker) (Info, error) {
	defer src.Close()

	start = max(0, start)
	if end <= start {
		return Info{}, ErrEmptyRange
	}

	rate := src.SampleRate()
	if rate <= 0 {
		return Info{}, audio.ErrInvalidRate
	}

	first := toFrame(start, rate)
	last := toFrame(end, rate)

	samples, err := window(ctx, audio.NewMonoMixer(src), first, last, e.bufferSize)
	if err != nil {
		return Info{}, err
	}
	if len(samples) == 0 {
		return Info{}, ErrOutOfRange
	}

	if err := wav.WriteMono16(out, rate, samples); err != nil {
		return Info{}, err
	}

	return Info{SampleRate: rate, Frames: len(samples)}, nil
}

func toFrame(d time.Duration, rate int) int {
	return int(math.Round(d.Seconds() * float64(rate)))
}

// window reads mono frames [first, last) from src, stopping early once the
// window is complete.
func window(ctx context.Context, src audio.Source, first, last, bufferSize int) ([]float32, error) {
	out := make([]float32, 0, min(last-first, 1<<20))
	buf := make([]float32, bufferSize)
	pos := 0

	for pos < last {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		n, err := src.ReadSamples(buf)
		if n > 0 {
			lo := min(max(first-pos, 0), n)
			hi := min(last-pos, n)
			if lo < hi {
				out = append(out, buf[lo:hi]...)
			}
			pos += n
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}
		if n == 0 {
			break
		}
	}

	return out, nil
}
