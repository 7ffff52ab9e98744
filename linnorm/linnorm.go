// Package linnorm implements a 64 bit linear congruential generator whose
// state is passed through a xorshift-multiply-xorshift output mix. The
// LCG has period 2^64 and every uint64 is a valid state.
//
// There is one stream. Seeds are positions in it: seeds s and t produce
// overlapping output once one generator has drawn the number of steps
// separating them. Because the output mix decorrelates neighbouring
// states, seeds that merely differ by small amounts are not visibly
// correlated.
package linnorm

import (
	"github.com/zeebo/rng/internal/fixed"
	"github.com/zeebo/rng/internal/lcg"
	"github.com/zeebo/rng/seed"
	"github.com/zeebo/rng/source"
)

const (
	mul = 0x369DEA0F31A53F85
	inc = 1
)

var (
	_ source.Stateful = (*T)(nil)
	_ source.Skipper  = (*T)(nil)
	_ source.Seeder   = (*T)(nil)
)

// T is a linnorm generator. The zero value is ready to use and equivalent
// to New(0).
type T struct {
	state uint64
}

// New returns a generator with the given state.
func New(state uint64) *T { return &T{state: state} }

// NewString returns a generator seeded with the hash of s.
func NewString(s string) *T { return New(seed.String(s)) }

// NewSeeded returns a generator seeded from src.
func NewSeeded(src seed.Source) *T { return New(src.Seed()) }

// mix is the output function shared by the generator and Determine.
func mix(z uint64) uint64 {
	z = (z ^ z>>23 ^ z>>47) * 0xAEF17502108EF2D9
	return z ^ z>>25
}

// Uint64 returns a random uint64.
func (t *T) Uint64() uint64 {
	t.state = t.state*mul + inc
	return mix(t.state)
}

// Uint32 returns a random uint32, the low half of a 64 bit draw.
func (t *T) Uint32() uint32 { return uint32(t.Uint64()) }

// Next returns a value with the given number of bits.
func (t *T) Next(bits uint) uint32 { return fixed.Top(t.Uint32(), bits) }

// Skip moves the generator by n draws in either direction.
func (t *T) Skip(n int64) uint64 {
	t.state = lcg.Advance(t.state, uint64(n), mul, inc)
	return mix(t.state)
}

// State returns the current state.
func (t *T) State() uint64 { return t.state }

// SetState replaces the state.
func (t *T) SetState(state uint64) { t.state = state }

// Seed reinitializes the generator as New would.
func (t *T) Seed(seed uint64) { t.state = seed }

// Copy returns an independent generator with the same state.
func (t *T) Copy() source.T { return &T{state: t.state} }

// Determine returns the value a generator with the given state would
// produce next, without needing a generator. Sequential inputs give
// unrelated outputs, which suits hashing coordinates.
func Determine(state uint64) uint64 { return mix(state*mul + inc) }

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
