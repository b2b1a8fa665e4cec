// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float32ToInt32 scales an IEEE float sample in [-1, 1] into the signed 32-bit
// domain. Non-negative values scale by 2147483647 and negative values by
// 2147483648, so both ends of the range map exactly onto MaxInt32 and MinInt32.
// The scaled value is rounded down, so small negative samples become -1
// rather than 0. Out-of-range input is clamped and NaN becomes silence.
func Float32ToInt32(x float32) int32 {
	f := float64(x)

	switch {
	case math.IsNaN(f):
		return 0
	case f >= 1:
		return math.MaxInt32
	case f <= -1:
		return math.MinInt32
	case f >= 0:
		return int32(f * 2147483647)
	default:
		return int32(math.Floor(f * 2147483648))
	}
}
