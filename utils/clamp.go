// SPDX-License-Identifier: EPL-2.0

package utils

// Clamp limits v to the closed range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampUnit limits v to [0, 1], the range used for every volume value.
// NaN is treated as silence.
func ClampUnit(v float64) float64 {
	if v != v {
		return 0
	}
	return Clamp(v, 0, 1)
}
