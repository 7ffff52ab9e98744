// Package longperiod implements xorshift1024*, a generator with 1024 bits
// of state and period 2^1024 - 1, together with a jump that advances it by
// 2^512 draws. Jumping lets one seed mint many generators whose output
// sequences are guaranteed not to overlap for 2^512 draws each.
package longperiod

import (
	"github.com/zeebo/rng/internal/debug"
	"github.com/zeebo/rng/internal/fixed"
	"github.com/zeebo/rng/internal/splitmix"
	"github.com/zeebo/rng/seed"
	"github.com/zeebo/rng/source"
)

// Words is the number of 64 bit words of state.
const Words = 16

const mul = 1181783497276652981

// jumpTable encodes the characteristic polynomial of 2^512 steps of the
// xorshift1024 recurrence, low bit first.
var jumpTable = [Words]uint64{
	0x84242f96eca9c41d, 0xa3c65b8776f96855, 0x5b34a39f070b5837, 0x4489affce4f31a1e,
	0x2ffeeb0a48316f40, 0xdc2d9891fe68c022, 0x3659132bb12fea70, 0xaac17d8efa43cab8,
	0xc4cb815590989b13, 0x5ee975283d71c93b, 0x691548c86c1bd540, 0x7910c41d10a1e6a5,
	0x0b5fc64563b3e2a8, 0x047f7684e9fc949d, 0xb99181f2d8f685ca, 0x284600e3f30e38c3,
}

var (
	_ source.Copier = (*T)(nil)
	_ source.Seeder = (*T)(nil)
)

// T is a xorshift1024* generator. The zero value is invalid; use New.
type T struct {
	state  [Words]uint64
	choice int
}

// New returns a generator whose state is expanded from seed. A seed of
// zero is treated as one.
func New(seed uint64) *T {
	t := new(T)
	t.Seed(seed)
	return t
}

// NewString returns a generator seeded with the hash of s.
func NewString(s string) *T { return New(seed.String(s)) }

// NewSeeded returns a generator seeded from src.
func NewSeeded(src seed.Source) *T { return New(src.Seed()) }

// Seed reinitializes the generator as New would.
func (t *T) Seed(seed uint64) {
	if seed == 0 {
		seed = 1
	}
	t.choice = int(seed & (Words - 1))
	t.fill(seed)
}

func (t *T) fill(seed uint64) {
	for i := range t.state {
		t.state[i] = splitmix.Next(&seed)
	}
}

// Uint64 returns a random uint64.
func (t *T) Uint64() uint64 {
	s0 := t.state[t.choice]
	t.choice = (t.choice + 1) & (Words - 1)
	s1 := t.state[t.choice]
	s1 ^= s1 << 31
	t.state[t.choice] = s1 ^ s0 ^ s1>>11 ^ s0>>30
	return t.state[t.choice] * mul
}

// Uint32 returns the high half of a 64 bit draw. The low bits of a
// xorshift* output are its weakest.
func (t *T) Uint32() uint32 { return uint32(t.Uint64() >> 32) }

// Next returns a value with the given number of bits.
func (t *T) Next(bits uint) uint32 { return fixed.Top(t.Uint32(), bits) }

// Copy returns an independent generator with the same state.
func (t *T) Copy() source.T {
	c := *t
	return &c
}

// State returns a copy of the state words and the rotating index.
func (t *T) State() ([Words]uint64, int) { return t.state, t.choice }

// SetState replaces the state words and the rotating index, which is
// reduced mod Words. An all-zero state would never leave zero, so it is
// replaced by the words New(1) would have produced.
func (t *T) SetState(state [Words]uint64, choice int) {
	t.state = state
	t.choice = choice & (Words - 1)

	var bits uint64
	for _, w := range state {
		bits |= w
	}
	if bits == 0 {
		t.fill(1)
	}
}

// Jump advances the generator by 2^512 draws. The cost is fixed: 1024
// steps of the recurrence and 16 word xors for each set bit of the jump
// polynomial, no matter where the generator is.
func (t *T) Jump() {
	var acc [Words]uint64
	for _, word := range jumpTable {
		for b := uint(0); b < 64; b++ {
			if word&(1<<b) != 0 {
				for j := range acc {
					acc[j] ^= t.state[(j+t.choice)&(Words-1)]
				}
			}
			t.Uint64()
		}
	}
	for j := range acc {
		t.state[(j+t.choice)&(Words-1)] = acc[j]
	}

	debug.Assert("jump left zero state", func() bool {
		for _, w := range t.state {
			if w != 0 {
				return true
			}
		}
		return false
	})
}

// CreateMany returns count generators derived from seed, each 2^512 draws
// further along the same sequence than the last. A count below one is
// treated as one.
func CreateMany(count int, seed uint64) []*T {
	if count < 1 {
		count = 1
	}
	origin := New(seed)
	out := make([]*T, count)
	for i := range out {
		c := *origin
		out[i] = &c
		origin.Jump()
	}
	return out
}

// CreateManySeeded is CreateMany with the seed drawn from src.
func CreateManySeeded(count int, src seed.Source) []*T {
	return CreateMany(count, src.Seed())
}
