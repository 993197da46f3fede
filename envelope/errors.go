// SPDX-License-Identifier: EPL-2.0

package envelope

import (
	"fmt"

	"github.com/ik5/waveloop/audio"
)

// ErrUnsupportedFormat is returned (inside a DecodeError) when no decoder is
// registered for the file extension.
var ErrUnsupportedFormat = audio.ErrUnsupportedFormat

// DecodeError reports a file the codec layer could not turn into samples.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %q: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
