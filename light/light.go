// Package light implements a 32 bit Weyl sequence generator with a
// murmur3 style finalizer as the output function. The increment is always
// odd, giving period 2^32 per increment; each time the state wraps
// through zero the increment itself moves on by an even constant, so the
// generator drifts through a family of 2^31 streams instead of repeating.
//
// The state is two words: the position and the increment. Generators with
// the same increment and different positions share a stream and overlap
// after at most 2^32 draws. Different increments give uncorrelated
// streams.
package light

import (
	"github.com/zeebo/rng/internal/fixed"
	"github.com/zeebo/rng/seed"
	"github.com/zeebo/rng/source"
)

const (
	bump   = 0x632BE5A6
	golden = 0x9E3779B9
)

var (
	_ source.Stateful = (*T)(nil)
	_ source.Seeder   = (*T)(nil)
)

// T is a light generator. Use New; the zero value has an even increment.
type T struct {
	state, inc uint32
}

// New returns a generator whose position is the low half of seed and
// whose increment is the high half with its low bit set.
func New(seed uint64) *T {
	t := new(T)
	t.SetState(seed)
	return t
}

// NewString returns a generator seeded with the hash of s.
func NewString(s string) *T { return New(seed.String(s)) }

// NewSeeded returns a generator seeded from src.
func NewSeeded(src seed.Source) *T { return New(src.Seed()) }

func mix(z uint32) uint32 {
	z = (z ^ z>>16) * 0x85EBCA6B
	z = (z ^ z>>13) * 0xC2B2AE35
	return z ^ z>>16
}

func (t *T) step() uint32 {
	if t.state == 0 {
		t.inc += bump
	}
	t.state += t.inc
	return t.state
}

// Uint32 returns a random uint32.
func (t *T) Uint32() uint32 { return mix(t.step()) }

// Uint64 returns a random uint64 made from two consecutive draws, the
// first in the high half.
func (t *T) Uint64() uint64 {
	hi := mix(t.step())
	return uint64(hi)<<32 | uint64(mix(t.step()))
}

// Next returns a value with the given number of bits.
func (t *T) Next(bits uint) uint32 { return fixed.Top(t.Uint32(), bits) }

// State returns the position in the low half and the increment in the
// high half.
func (t *T) State() uint64 { return uint64(t.state) | uint64(t.inc)<<32 }

// SetState replaces the state. The low bit of the increment is forced on,
// so State may not return exactly what was set.
func (t *T) SetState(state uint64) {
	t.state = uint32(state)
	t.inc = uint32(state>>32) | 1
}

// Seed reinitializes the generator as New would.
func (t *T) Seed(seed uint64) { t.SetState(seed) }

// Copy returns an independent generator with the same state.
func (t *T) Copy() source.T { return &T{state: t.state, inc: t.inc} }

// Determine hashes a 32 bit input. The input is spread by the golden ratio
// before the shared output mix, so sequential inputs are unrelated.
func Determine(state uint32) uint32 { return mix(state * golden) }

// DetermineBounded is Determine mapped into [0, bound).
func DetermineBounded(state uint32, bound int32) int32 {
	return fixed.Int32(Determine(state), bound)
}

// DetermineFloat32 is Determine mapped into [0, 1).
func DetermineFloat32(state uint32) float32 {
	return fixed.Float32(Determine(state) >> 8)
}
