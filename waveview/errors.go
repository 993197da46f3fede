// SPDX-License-Identifier: EPL-2.0

package waveview

import "errors"

// ErrRender wraps a recovered failure while drawing a frame.
var ErrRender = errors.New("rendering waveform frame")
