// SPDX-License-Identifier: EPL-2.0

package render

import "image/color"

// Theme holds the frame colours. Selection and Played are composited over
// the waveform; everything else is drawn opaque.
type Theme struct {
	Background color.RGBA
	Waveform   color.RGBA
	Selection  color.NRGBA
	Played     color.NRGBA
	Cursor     color.RGBA
	Marker     color.RGBA
}

func DefaultTheme() Theme {
	return Theme{
		Background: color.RGBA{R: 26, G: 26, B: 26, A: 255},
		Waveform:   color.RGBA{R: 51, G: 153, B: 255, A: 255},
		Selection:  color.NRGBA{R: 230, G: 77, B: 102, A: 64},
		Played:     color.NRGBA{R: 77, G: 153, B: 255, A: 64},
		Cursor:     color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Marker:     color.RGBA{R: 255, G: 153, B: 0, A: 255},
	}
}
