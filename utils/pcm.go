// SPDX-License-Identifier: EPL-2.0

package utils

import "encoding/binary"

// Float32ToInt16 converts a sample in [-1, 1] to 16-bit PCM.
// Out of range values are clipped.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}
	// 32767 keeps +1.0 from overflowing
	return int16(x * 32767.0)
}

// Int16ToFloat32 is the inverse of Float32ToInt16 for decoded PCM data.
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}

// AppendInt16LE appends samples as little-endian 16-bit PCM bytes to dst and
// returns the extended slice.
func AppendInt16LE(dst []byte, samples []int16) []byte {
	for _, s := range samples {
		dst = binary.LittleEndian.AppendUint16(dst, uint16(s))
	}
	return dst
}
