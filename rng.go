// Package rng wraps any generator in this module with the range mapping
// and derived operations every caller wants: bounded integers and floats,
// shuffles, element picks and permutations.
//
// A *T is not safe for concurrent use. Give each goroutine its own, made
// with Copy or from longperiod.CreateMany.
package rng

import (
	"encoding/binary"
	"math/rand"

	"github.com/zeebo/rng/diver"
	"github.com/zeebo/rng/seed"
	"github.com/zeebo/rng/source"
)

// T adapts a source.T into the full set of draw operations.
type T struct {
	src source.T
}

// New wraps src. A nil src is replaced by a clock seeded diver generator.
func New(src source.T) *T {
	if src == nil {
		src = diver.NewSeeded(seed.NewClock())
	}
	return &T{src: src}
}

// NewClock returns a diver backed T seeded from the wall clock.
func NewClock() *T { return New(nil) }

// NewSeed returns a diver backed T with the given seed.
func NewSeed(s uint64) *T { return New(diver.New(s)) }

// NewString returns a diver backed T seeded with the hash of s.
func NewString(s string) *T { return New(diver.NewString(s)) }

// NewSeeded returns a diver backed T seeded from src.
func NewSeeded(src seed.Source) *T { return New(diver.NewSeeded(src)) }

// Source returns the wrapped generator.
func (t *T) Source() source.T { return t.src }

// Next returns a value that fits in the given number of bits.
func (t *T) Next(bits uint) uint32 { return t.src.Next(bits) }

// Uint32 returns a random uint32.
func (t *T) Uint32() uint32 { return t.src.Uint32() }

// Uint64 returns a random uint64.
func (t *T) Uint64() uint64 { return t.src.Uint64() }

// State returns the state of a source.Stateful generator.
func (t *T) State() (uint64, error) {
	st, ok := t.src.(source.Stateful)
	if !ok {
		return 0, UnsupportedError.New("%T has no single word state", t.src)
	}
	return st.State(), nil
}

// SetState replaces the state of a source.Stateful generator.
func (t *T) SetState(state uint64) error {
	st, ok := t.src.(source.Stateful)
	if !ok {
		return UnsupportedError.New("%T has no single word state", t.src)
	}
	st.SetState(state)
	return nil
}

// Copy returns an independent T around a copy of the wrapped generator.
func (t *T) Copy() (*T, error) {
	c, ok := t.src.(source.Copier)
	if !ok {
		return nil, UnsupportedError.New("%T cannot be copied", t.src)
	}
	return &T{src: c.Copy()}, nil
}

// Skip moves a source.Skipper generator by n draws and returns the output
// of the last draw skipped over. Generators whose native draw is 32 bits
// return that draw widened.
func (t *T) Skip(n int64) (uint64, error) {
	sk, ok := t.src.(source.Skipper)
	if !ok {
		return 0, UnsupportedError.New("%T cannot skip", t.src)
	}
	return sk.Skip(n), nil
}

// Seed reinitializes a source.Seeder generator.
func (t *T) Seed(s uint64) error {
	sd, ok := t.src.(source.Seeder)
	if !ok {
		return UnsupportedError.New("%T cannot be reseeded", t.src)
	}
	sd.Seed(s)
	return nil
}

// Read fills p with random bytes, eight from each 64 bit draw in little
// endian order. On lathe, light and pcg each 64 bit draw is two native
// draws. It always returns len(p) and a nil error.
func (t *T) Read(p []byte) (int, error) {
	n := len(p)
	for len(p) >= 8 {
		binary.LittleEndian.PutUint64(p, t.src.Uint64())
		p = p[8:]
	}
	if len(p) > 0 {
		v := t.src.Uint64()
		for i := range p {
			p[i] = byte(v)
			v >>= 8
		}
	}
	return n, nil
}

// AsRand adapts t into a math/rand source, so existing code written
// against *rand.Rand can run on any generator here. Draws on the adapter
// advance t.
func (t *T) AsRand() rand.Source64 { return randSource{t: t} }

type randSource struct{ t *T }

func (r randSource) Int63() int64   { return int64(r.t.Uint64() >> 1) }
func (r randSource) Uint64() uint64 { return r.t.Uint64() }

// Seed reseeds the wrapped generator when it supports reseeding and does
// nothing otherwise.
func (r randSource) Seed(s int64) { _ = r.t.Seed(uint64(s)) }
