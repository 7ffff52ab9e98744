// Package lathe implements a generator over two 32 bit words using the
// xoroshiro64 recurrence (rotate, shift and xor) with a rotate-add output
// scrambler. The period is 2^64 - 1 and all 32 bit operations are cheap on
// narrow hardware.
//
// The recurrence is linear, so the all-zero state would map to itself
// forever. SetState replaces an all-zero state with stateA = 1. New mixes
// its seed before use, so nearby seeds start far apart on the single
// cycle of nonzero states.
package lathe

import (
	"math/bits"

	"github.com/zeebo/rng/internal/debug"
	"github.com/zeebo/rng/internal/fixed"
	"github.com/zeebo/rng/internal/splitmix"
	"github.com/zeebo/rng/seed"
	"github.com/zeebo/rng/source"
)

var (
	_ source.Stateful = (*T)(nil)
	_ source.Seeder   = (*T)(nil)
)

// T is a lathe generator. The zero value is invalid; use New.
type T struct {
	a, b uint32
}

// New returns a generator whose state is derived from seed.
func New(seed uint64) *T {
	t := new(T)
	t.Seed(seed)
	return t
}

// NewString returns a generator seeded with the hash of s.
func NewString(s string) *T { return New(seed.String(s)) }

// NewSeeded returns a generator seeded from src.
func NewSeeded(src seed.Source) *T { return New(src.Seed()) }

// NewState returns a generator with the two words of state set directly.
func NewState(a, b uint32) *T {
	t := new(T)
	t.SetState(uint64(a) | uint64(b)<<32)
	return t
}

// advance steps the recurrence once, returning the scrambled output for
// the state it started from.
func (t *T) advance() uint32 {
	s0, s1 := t.a, t.b
	result := s0 + s1
	s1 ^= s0
	t.a = bits.RotateLeft32(s0, 13) ^ s1 ^ s1<<5
	t.b = bits.RotateLeft32(s1, 28)
	return bits.RotateLeft32(result, 10) + s0
}

// Uint32 returns a random uint32.
func (t *T) Uint32() uint32 { return t.advance() }

// Uint64 returns a random uint64 made from two consecutive draws, the
// first in the high half.
func (t *T) Uint64() uint64 {
	hi := t.advance()
	return uint64(hi)<<32 | uint64(t.advance())
}

// Next returns a value with the given number of bits.
func (t *T) Next(bits uint) uint32 { return fixed.Top(t.advance(), bits) }

// State returns stateA in the low half and stateB in the high half.
func (t *T) State() uint64 { return uint64(t.a) | uint64(t.b)<<32 }

// SetState replaces the state. Zero is replaced by stateA = 1.
func (t *T) SetState(state uint64) {
	if state == 0 {
		state = 1
	}
	t.a, t.b = uint32(state), uint32(state>>32)
	debug.Assert("lathe state nonzero", func() bool { return t.a|t.b != 0 })
}

// Seed reinitializes the generator as New would.
func (t *T) Seed(seed uint64) { t.SetState(splitmix.Next(&seed)) }

// Copy returns an independent generator with the same state.
func (t *T) Copy() source.T { return &T{a: t.a, b: t.b} }
