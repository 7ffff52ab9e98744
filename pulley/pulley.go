// Package pulley implements a counter based generator whose output
// function is a bijection on uint64. Every output can be traced back to
// the exact counter value that produced it with Inverse.
//
// The output function applies, in order:
//
//	z ^= rotl(z, 41) ^ rotl(z, 17)
//	z *= 0x369DEA0F31A53F85
//	z ^= z>>25 ^ z>>37
//	z *= 0xDB4F0B9175AE2165
//	z ^= z>>28
//
// Each step is invertible on its own, so the composition is too.
//
// Seeds are counter positions, so New(s) and New(s+k) overlap after k
// draws. Pick seeds far apart, or hash them, when streams must not meet.
package pulley

import (
	"math/bits"

	"github.com/zeebo/rng/internal/fixed"
	"github.com/zeebo/rng/seed"
	"github.com/zeebo/rng/source"
)

const (
	mul1 = 0x369DEA0F31A53F85
	mul2 = 0xDB4F0B9175AE2165

	// multiplicative inverses mod 2^64 of mul1 and mul2.
	inv1 = 0xBE21F44C6018E14D
	inv2 = 0xF179F93568D4286D
)

var (
	_ source.Stateful = (*T)(nil)
	_ source.Skipper  = (*T)(nil)
	_ source.Seeder   = (*T)(nil)
)

// T is a pulley generator. The zero value is equivalent to New(0).
type T struct {
	state uint64
}

// New returns a generator whose counter starts at state.
func New(state uint64) *T { return &T{state: state} }

// NewString returns a generator seeded with the hash of s.
func NewString(s string) *T { return New(seed.String(s)) }

// NewSeeded returns a generator seeded from src.
func NewSeeded(src seed.Source) *T { return New(src.Seed()) }

func mix(z uint64) uint64 {
	z = (z ^ bits.RotateLeft64(z, 41) ^ bits.RotateLeft64(z, 17)) * mul1
	z = (z ^ z>>25 ^ z>>37) * mul2
	return z ^ z>>28
}

// Inverse returns the counter value whose output is out, so that
// Inverse(Determine(x)) == x for every x.
func Inverse(out uint64) uint64 {
	// z ^= z>>28 is undone by xoring in the shifts by 28 and 56.
	out ^= out>>28 ^ out>>56
	out *= inv2
	// (I + S25 + S37) squares to I + S50 over GF(2) and cubes to zero
	// beyond, so its inverse is I + S25 + S37 + S50.
	out ^= out>>25 ^ out>>37 ^ out>>50
	out *= inv1
	// x ^ rotl(x, 17) ^ rotl(x, 41) is undone by three rounds of paired
	// rotations, each doubling the rotation amounts mod 64.
	out ^= bits.RotateLeft64(out, 17) ^ bits.RotateLeft64(out, 41)
	out ^= bits.RotateLeft64(out, 34) ^ bits.RotateLeft64(out, 18)
	out ^= bits.RotateLeft64(out, 4) ^ bits.RotateLeft64(out, 36)
	return out
}

// Uint64 returns a random uint64.
func (t *T) Uint64() uint64 {
	z := t.state
	t.state++
	return mix(z)
}

// Uint32 returns a random uint32.
func (t *T) Uint32() uint32 { return uint32(t.Uint64()) }

// Next returns a value with the given number of bits.
func (t *T) Next(bits uint) uint32 { return fixed.Top(t.Uint32(), bits) }

// Skip moves the generator by n draws in either direction.
func (t *T) Skip(n int64) uint64 {
	t.state += uint64(n)
	return mix(t.state - 1)
}

// Resume positions the generator so that its next draw is the one that
// followed out in its stream.
func (t *T) Resume(out uint64) { t.state = Inverse(out) + 1 }

// State returns the counter.
func (t *T) State() uint64 { return t.state }

// SetState replaces the counter.
func (t *T) SetState(state uint64) { t.state = state }

// Seed reinitializes the generator as New would.
func (t *T) Seed(seed uint64) { t.state = seed }

// Copy returns an independent generator with the same counter.
func (t *T) Copy() source.T { return &T{state: t.state} }

// Determine returns the output for the counter value state. It is a
// bijection; see Inverse.
func Determine(state uint64) uint64 { return mix(state) }

// DetermineBounded is Determine mapped into [0, bound).
func DetermineBounded(state uint64, bound int32) int32 {
	return fixed.Int32(uint32(Determine(state)), bound)
}

// DetermineFloat32 is Determine mapped into [0, 1).
func DetermineFloat32(state uint64) float32 {
	return fixed.Float32(uint32(Determine(state) >> 40))
}

// DetermineFloat64 is Determine mapped into [0, 1).
func DetermineFloat64(state uint64) float64 {
	return fixed.Float64(Determine(state))
}
