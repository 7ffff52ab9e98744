// Package pcg implements the PCG32 generator: a 64 bit LCG whose old state
// is compressed to 32 bits by an xorshift followed by a data dependent
// rotation.
//
// The increment selects the stream. Generators with different increments
// never share output sequences; generators with the same increment and
// different states are offsets within one 2^64 period.
package pcg

import (
	"math/bits"

	"github.com/zeebo/rng/internal/fixed"
	"github.com/zeebo/rng/internal/lcg"
	"github.com/zeebo/rng/seed"
	"github.com/zeebo/rng/source"
)

const mul = 6364136223846793005

var (
	_ source.Stateful = (*T)(nil)
	_ source.Skipper  = (*T)(nil)
	_ source.Seeder   = (*T)(nil)
)

// T is a pcg generator. The zero value is invalid; use New.
type T struct {
	state uint64
	inc   uint64
}

// New constructs a pcg with the given state and stream.
func New(state, stream uint64) *T {
	t := new(T)
	t.init(state, stream)
	return t
}

// NewString returns a generator on stream 0 seeded with the hash of s.
func NewString(s string) *T { return New(seed.String(s), 0) }

// NewSeeded returns a generator whose state and stream both come from src.
func NewSeeded(src seed.Source) *T { return New(src.Seed(), src.Seed()) }

func (t *T) init(state, stream uint64) {
	// this is the same as starting from a zero state with the updated inc
	// and running
	//
	//    t.Uint32()
	//    t.state += state
	//    t.Uint32()
	//
	// to get the generator started
	t.inc = stream<<1 | 1
	t.state = (t.inc+state)*mul + t.inc
}

// output compresses a state to 32 bits.
func output(state uint64) uint32 {
	// PCG specifies a right rotate here. any rotate serves the output
	// compression equally well, and the left rotate compiles to a single
	// instruction.
	xorshift := uint32(((state >> 18) ^ state) >> 27)
	return bits.RotateLeft32(xorshift, int(state>>59))
}

// Uint32 returns a random uint32.
func (t *T) Uint32() uint32 {
	old := t.state
	t.state = old*mul + t.inc
	return output(old)
}

// Uint64 returns a random uint64 made from two consecutive draws, the
// first in the high half.
func (t *T) Uint64() uint64 {
	hi := t.Uint32()
	return uint64(hi)<<32 | uint64(t.Uint32())
}

// Next returns a value with the given number of bits.
func (t *T) Next(bits uint) uint32 { return fixed.Top(t.Uint32(), bits) }

// Skip moves the generator by n 32 bit draws in either direction and
// returns the 32 bit output of the last draw it stood in for.
func (t *T) Skip(n int64) uint64 {
	t.state = lcg.Advance(t.state, uint64(n), mul, t.inc)
	return uint64(output(lcg.Advance(t.state, ^uint64(0), mul, t.inc)))
}

// Stream returns the odd increment selecting this generator's stream.
func (t *T) Stream() uint64 { return t.inc }

// State returns the LCG state. The stream is not included; see Stream.
func (t *T) State() uint64 { return t.state }

// SetState replaces the LCG state, keeping the stream.
func (t *T) SetState(state uint64) { t.state = state }

// Seed reinitializes the generator on stream 0 as New(seed, 0) would.
func (t *T) Seed(seed uint64) { t.init(seed, 0) }

// Copy returns an independent generator with the same state and stream.
func (t *T) Copy() source.T { return &T{state: t.state, inc: t.inc} }
