package rng

import (
	"math"
	"math/bits"

	"github.com/zeebo/rng/internal/fixed"
)

// Every method here consumes exactly one draw, even for degenerate
// arguments, so the cost of a call never depends on its inputs.
//
// Bounded integers come from scaling the draw as a fixed point fraction,
// so a bound that does not divide the draw width evenly favors some
// results over others by at most bound/2^32 (or bound/2^64 for the 64 bit
// forms).

// Int32n returns a value in [0, bound). It returns 0 when bound <= 0.
func (t *T) Int32n(bound int32) int32 { return fixed.Int32(t.src.Uint32(), bound) }

// Int64n returns a value in [0, bound). It returns 0 when bound <= 0.
func (t *T) Int64n(bound int64) int64 { return fixed.Int64(t.src.Uint64(), bound) }

// Intn returns a value in [0, bound). It returns 0 when bound <= 0.
func (t *T) Intn(bound int) int { return int(t.Int64n(int64(bound))) }

// index returns a value in [0, n) from a single native draw: a 32 bit draw
// whenever n fits in an int32, so generators that build Uint64 out of two
// 32 bit draws are not stepped twice.
func (t *T) index(n int) int {
	if n <= math.MaxInt32 {
		return int(t.Int32n(int32(n)))
	}
	return t.Intn(n)
}

// SignedInt32n returns a value in [0, bound) for positive bounds and in
// (bound, 0] for negative ones.
func (t *T) SignedInt32n(bound int32) int32 { return fixed.SignedInt32(t.src.Uint32(), bound) }

// SignedInt64n returns a value in [0, bound) for positive bounds and in
// (bound, 0] for negative ones.
func (t *T) SignedInt64n(bound int64) int64 { return fixed.SignedInt64(t.src.Uint64(), bound) }

// Int32Between returns a value in [lower, upper). If upper < lower the
// value is in (upper, lower] instead, and equal bounds return lower. Any
// pair of bounds works, including ones whose difference overflows int32.
func (t *T) Int32Between(lower, upper int32) int32 {
	raw := uint64(t.src.Uint32())
	if upper >= lower {
		span := uint64(int64(upper) - int64(lower))
		return int32(int64(lower) + int64(raw*span>>32))
	}
	span := uint64(int64(lower) - int64(upper))
	return int32(int64(lower) - int64(raw*span>>32))
}

// Int64Between returns a value in [lower, upper). If upper < lower the
// value is in (upper, lower] instead, and equal bounds return lower. Any
// pair of bounds works, including ones whose difference overflows int64.
func (t *T) Int64Between(lower, upper int64) int64 {
	raw := t.src.Uint64()
	if upper >= lower {
		hi, _ := bits.Mul64(raw, uint64(upper)-uint64(lower))
		return int64(uint64(lower) + hi)
	}
	hi, _ := bits.Mul64(raw, uint64(lower)-uint64(upper))
	return int64(uint64(lower) - hi)
}

// IntBetween is Int64Between for ints.
func (t *T) IntBetween(lower, upper int) int {
	return int(t.Int64Between(int64(lower), int64(upper)))
}

// Float64 returns a value in [0, 1) with 53 bits of precision. It takes a
// 64 bit draw, which is two native draws on lathe, light and pcg.
func (t *T) Float64() float64 { return fixed.Float64(t.src.Uint64()) }

// Float32 returns a value in [0, 1) with 24 bits of precision.
func (t *T) Float32() float32 { return float32(t.src.Next(24)) * 0x1p-24 }

// Float64n returns a value in [0, outer). A negative outer gives a value
// in (outer, 0].
func (t *T) Float64n(outer float64) float64 { return t.Float64() * outer }

// Float32n returns a value in [0, outer). A negative outer gives a value
// in (outer, 0].
func (t *T) Float32n(outer float32) float32 { return t.Float32() * outer }

// Float64Between returns a value in [lower, upper). Results that round up
// to upper are pulled back to the largest float below it.
func (t *T) Float64Between(lower, upper float64) float64 {
	v := lower + t.Float64()*(upper-lower)
	if v >= upper && upper > lower {
		v = math.Nextafter(upper, lower)
	}
	return v
}

// Float32Between returns a value in [lower, upper). Results that round up
// to upper are pulled back to the largest float below it.
func (t *T) Float32Between(lower, upper float32) float32 {
	v := lower + t.Float32()*(upper-lower)
	if v >= upper && upper > lower {
		v = math.Nextafter32(upper, lower)
	}
	return v
}

// Bool returns the top bit of a 64 bit draw, which is two native draws on
// lathe, light and pcg.
func (t *T) Bool() bool { return t.src.Uint64()>>63 != 0 }
