// Package diver implements a 64 bit generator whose step XORs the state
// with a constant and multiplies by an odd constant, followed by a
// rotate-multiply-xorshift output mix.
//
// The step is a bijection, so every state lies on a cycle, but the cycle
// lengths are not all 2^64 and no skip operation exists. Because the XOR
// happens before the multiply, the zero state steps to a nonzero state.
// Seeds are not grouped into streams: nearby seeds land on unrelated parts
// of the state space after one step.
package diver

import (
	"math/bits"

	"github.com/zeebo/rng/internal/fixed"
	"github.com/zeebo/rng/seed"
	"github.com/zeebo/rng/source"
)

const (
	xor = 0x6C8E9CF570932BD5
	mul = 0xC6BC279692B5CC83
)

var (
	_ source.Stateful = (*T)(nil)
	_ source.Seeder   = (*T)(nil)
)

// T is a diver generator. The zero value is equivalent to New(0).
type T struct {
	state uint64
}

// New returns a generator with the given state.
func New(state uint64) *T { return &T{state: state} }

// NewString returns a generator seeded with the hash of s.
func NewString(s string) *T { return New(seed.String(s)) }

// NewSeeded returns a generator seeded from src.
func NewSeeded(src seed.Source) *T { return New(src.Seed()) }

func step(state uint64) uint64 { return (state ^ xor) * mul }

func mix(z uint64) uint64 {
	z = bits.RotateLeft64(z, 27) * 0xDB4F0B9175AE2165
	return z ^ z>>25
}

// Uint64 returns a random uint64.
func (t *T) Uint64() uint64 {
	t.state = step(t.state)
	return mix(t.state)
}

// Uint32 returns a random uint32.
func (t *T) Uint32() uint32 { return uint32(t.Uint64()) }

// Next returns a value with the given number of bits.
func (t *T) Next(bits uint) uint32 { return fixed.Top(t.Uint32(), bits) }

// State returns the current state.
func (t *T) State() uint64 { return t.state }

// SetState replaces the state.
func (t *T) SetState(state uint64) { t.state = state }

// Seed reinitializes the generator as New would.
func (t *T) Seed(seed uint64) { t.state = seed }

// Copy returns an independent generator with the same state.
func (t *T) Copy() source.T { return &T{state: t.state} }

// Determine returns the value a generator with the given state would
// produce next.
func Determine(state uint64) uint64 { return mix(step(state)) }

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
