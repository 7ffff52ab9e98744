// Package fixed maps raw generator output into bounded ranges using
// fixed-point arithmetic. None of the functions loop: each consumes exactly
// the raw value it is handed.
package fixed

import "math/bits"

const (
	mask53 = 1<<53 - 1
	mask24 = 1<<24 - 1
)

// Int32 treats raw as a fraction of 2^32 and scales it by bound, returning
// a value in [0, bound). If bound is not positive, it returns 0.
//
// The result is biased by at most bound/2^32 for bounds that do not divide
// 2^32 evenly.
func Int32(raw uint32, bound int32) int32 {
	if bound <= 0 {
		return 0
	}
	return int32((uint64(raw) * uint64(bound)) >> 32)
}

// Int64 treats raw as a fraction of 2^64 and scales it by bound, returning
// a value in [0, bound). If bound is not positive, it returns 0.
func Int64(raw uint64, bound int64) int64 {
	if bound <= 0 {
		return 0
	}
	hi, _ := bits.Mul64(raw, uint64(bound))
	return int64(hi)
}

// SignedInt32 is like Int32 but a negative bound produces a value in
// (bound, 0].
func SignedInt32(raw uint32, bound int32) int32 {
	if bound >= 0 {
		return Int32(raw, bound)
	}
	mag := uint64(-int64(bound))
	return -int32((uint64(raw) * mag) >> 32)
}

// SignedInt64 is like Int64 but a negative bound produces a value in
// (bound, 0].
func SignedInt64(raw uint64, bound int64) int64 {
	if bound >= 0 {
		return Int64(raw, bound)
	}
	// -bound overflows for MinInt64, but as a uint64 it is exactly 2^63.
	hi, _ := bits.Mul64(raw, uint64(-bound))
	return -int64(hi)
}

// Float64 keeps the low 53 bits of raw and scales them into [0, 1).
func Float64(raw uint64) float64 {
	return float64(raw&mask53) * 0x1p-53
}

// Float32 keeps the low 24 bits of raw and scales them into [0, 1).
func Float32(raw uint32) float32 {
	return float32(raw&mask24) * 0x1p-24
}

// Top returns the highest n bits of a 32 bit value, right aligned. n of 0
// yields 0 and n of 32 or more yields raw unchanged.
func Top(raw uint32, n uint) uint32 {
	if n >= 32 {
		return raw
	}
	return raw >> (32 - n)
}
