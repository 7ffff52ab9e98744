// Package thrust implements a Weyl sequence generator: the state advances
// by a fixed odd increment and each state is scrambled by a multiply whose
// multiplier depends on the state itself. Because the step is a plain
// addition, skipping any distance is a single multiply-add.
//
// Seeds that differ by a multiple of the increment are the same stream
// shifted: New(s) and New(s + k*0x6C8E9CF570932BD5) overlap after k draws.
// Seeds differing by small amounts are otherwise unrelated.
package thrust

import (
	"github.com/zeebo/rng/internal/fixed"
	"github.com/zeebo/rng/seed"
	"github.com/zeebo/rng/source"
)

const inc = 0x6C8E9CF570932BD5

var (
	_ source.Stateful = (*T)(nil)
	_ source.Skipper  = (*T)(nil)
	_ source.Seeder   = (*T)(nil)
)

// T is a thrust generator. The zero value is equivalent to New(0).
type T struct {
	state uint64
}

// New returns a generator with the given state.
func New(state uint64) *T { return &T{state: state} }

// NewString returns a generator seeded with the hash of s.
func NewString(s string) *T { return New(seed.String(s)) }

// NewSeeded returns a generator seeded from src.
func NewSeeded(src seed.Source) *T { return New(src.Seed()) }

func mix(s uint64) uint64 {
	z := (s ^ s>>25) * (s | 0xA529)
	return z ^ z>>23
}

// Uint64 returns a random uint64.
func (t *T) Uint64() uint64 {
	t.state += inc
	return mix(t.state)
}

// Uint32 returns a random uint32.
func (t *T) Uint32() uint32 { return uint32(t.Uint64()) }

// Next returns a value with the given number of bits.
func (t *T) Next(bits uint) uint32 { return fixed.Top(t.Uint32(), bits) }

// Skip moves the generator by n draws in either direction.
func (t *T) Skip(n int64) uint64 {
	t.state += inc * uint64(n)
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
// produce next.
func Determine(state uint64) uint64 { return mix(state + inc) }

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
