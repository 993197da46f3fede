// SPDX-License-Identifier: EPL-2.0

package utils

func Float32ToInt16(x float32) int16 {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}

// Float32sToInts converts a float buffer into go-audio style int samples of
// 16-bit depth, reusing dst when it is large enough.
func Float32sToInts(dst []int, src []float32) []int {
	if cap(dst) < len(src) {
		dst = make([]int, len(src))
	}
	dst = dst[:len(src)]

	for i, x := range src {
		dst[i] = int(Float32ToInt16(x))
	}

	return dst
}
