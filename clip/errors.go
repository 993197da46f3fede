// SPDX-License-Identifier: EPL-2.0

package clip

import "errors"

var (
	ErrEmptyRange = errors.New("clip end is not after clip start")
	ErrOutOfRange = errors.New("clip starts past the end of the track")
)
