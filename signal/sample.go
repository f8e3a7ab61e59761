// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"math"
	"unsafe"
)

// Sample is any numeric representation a channel value may arrive in.
type Sample interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 |
		~float32 | ~float64
}

// ToFloat32 converts s to a float32 normalized to [-1, 1].
//
// The scale is derived from the properties of S rather than from a list of
// concrete types:
//   - floating point values pass through unchanged
//   - signed integers of width b are divided by 2^(b-1)
//   - unsigned integers of width b are re-centered on 2^(b-1) and divided by it
//
// So int16(-32768) is -1, uint8(128) is 0 and float64(0.25) is 0.25.
func ToFloat32[S Sample](s S) float32 {
	half := 0.5
	if S(half) != 0 {
		return float32(s)
	}

	var zero S
	bits := int(unsafe.Sizeof(zero)) * 8
	scale := math.Ldexp(1, bits-1)

	one := S(1)
	if zero-one < zero {
		return float32(float64(s) / scale)
	}

	return float32((float64(s) - scale) / scale)
}
