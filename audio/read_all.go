// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// ReadAllMono drains src through a MonoMixer and returns every frame as a
// single mono float32 slice. A source that ends immediately yields an empty,
// non-nil slice and no error.
//
// bufferSize is the number of frames requested per read; values below 1
// fall back to the source's own BufSize.
func ReadAllMono(src Source, bufferSize int) ([]float32, error) {
	return ReadAllMonoContext(context.Background(), src, bufferSize)
}

// ReadAllMonoContext is ReadAllMono that gives up between reads once ctx is
// done.
func ReadAllMonoContext(ctx context.Context, src Source, bufferSize int) ([]float32, error) {
	if bufferSize < 1 {
		bufferSize = src.BufSize()
	}
	if bufferSize < 1 {
		bufferSize = 4096
	}

	mono := NewMonoMixer(src)
	out := make([]float32, 0, bufferSize)
	buf := make([]float32, bufferSize)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		n, err := mono.ReadSamples(buf)
		if n > 0 {
			out = append(out, buf[:n]...)
		}

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}

		// Some codecs report (0, nil) at end of stream instead of io.EOF.
		if n == 0 {
			break
		}
	}

	return out, nil
}

// ReadAll drains src and returns its interleaved samples unchanged.
func ReadAll(src Source, bufferSize int) ([]float32, error) {
	channels := max(1, src.Channels())
	if bufferSize < channels {
		bufferSize = 4096
	}
	bufferSize -= bufferSize % channels

	out := make([]float32, 0, bufferSize)
	buf := make([]float32, bufferSize)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			out = append(out, buf[:n]...)
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
