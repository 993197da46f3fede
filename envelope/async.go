// SPDX-License-Identifier: EPL-2.0

package envelope

import "context"

// Result is the outcome of an asynchronous extraction.
type Result struct {
	Path     string
	Envelope *Envelope
	Err      error
}

// ExtractAsync runs ExtractContext on its own goroutine. The returned channel
// receives exactly one Result and is then closed. Cancelling ctx stops the
// decode between reads; the Result then carries ctx.Err().
func (x *Extractor) ExtractAsync(ctx context.Context, path string) <-chan Result {
	out := make(chan Result, 1)

	go func() {
		defer close(out)

		env, err := x.ExtractContext(ctx, path)
		out <- Result{Path: path, Envelope: env, Err: err}
	}()

	return out
}
