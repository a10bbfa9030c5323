// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// FloatToPCM scales a normalized sample in [-1, 1] to a signed integer of
// the given bit depth. Values outside the range are clamped.
func FloatToPCM(x float32, bitDepth int) int {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	peak := float64(int64(1)<<(bitDepth-1) - 1)
	return int(float64(x) * peak)
}

// ClampInt16 saturates v into the int16 range.
func ClampInt16(v float64) int16 {
	switch {
	case v > math.MaxInt16:
		return math.MaxInt16
	case v < math.MinInt16:
		return math.MinInt16
	}
	return int16(v)
}

// PCMToInt16 rescales a sample of bitDepth bits to 16 bits. Depths below 16
// are shifted up, depths above are shifted down.
func PCMToInt16(v, bitDepth int) int16 {
	switch {
	case bitDepth < 16:
		return int16(v << (16 - bitDepth))
	case bitDepth > 16:
		return int16(v >> (bitDepth - 16))
	}
	return int16(v)
}
