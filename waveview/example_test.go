// SPDX-License-Identifier: EPL-2.0

package waveview_test

import (
	"fmt"

	"github.com/ik5/waveloop/waveview"
)

func ExampleViewport_ZoomAt() {
	vp := waveview.FullViewport()
	vp.ZoomAt(0.5, 0.8)
	fmt.Printf("%.4f %.4f\n", vp.Start, vp.End)
	// Output: 0.1000 0.9000
}

func ExampleViewport_ZoomToSelection() {
	vp := waveview.FullViewport()
	vp.ZoomToSelection(0.2, 0.3)
	fmt.Printf("%.4f %.4f\n", vp.Start, vp.End)
	// Output: 0.1875 0.3125
}

func ExampleSelection_SetStart() {
	sel := waveview.NewSelection(10, 0.01)
	sel.SetEnd(4.995)

	// The start marker stops one minimum gap before the end marker.
	sel.SetStart(5)
	fmt.Printf("%.4f %.4f\n", sel.Start(), sel.End())
	// Output: 4.9850 4.9950
}
