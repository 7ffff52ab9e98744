// Package source declares the contract shared by every generator in this
// module. Generators are not safe for concurrent use; give each goroutine
// its own instance, either through Copy or through longperiod.CreateMany.
package source

// T is the raw draw contract. Implementations are deterministic: two
// generators in the same state produce the same future output.
type T interface {
	// Next returns a value that fits in the given number of bits, taken
	// from the high bits of a 32 bit draw. Zero bits yields 0 and 32 or
	// more yields a full 32 bit draw.
	Next(bits uint) uint32

	// Uint32 returns a full width 32 bit draw.
	Uint32() uint32

	// Uint64 returns a full width 64 bit draw.
	Uint64() uint64
}

// Copier is a generator that can fork an independent copy of itself. The
// copy produces the same output as the original from the point it was
// made, and shares no memory with it.
type Copier interface {
	T
	Copy() T
}

// Stateful is a generator whose entire reproducible state fits in a
// uint64. SetState accepts every value.
type Stateful interface {
	Copier
	State() uint64
	SetState(state uint64)
}

// Skipper is a generator that can move forward or backward by any number
// of draws in constant time. Skip returns the output of the last draw it
// stood in for, so Skip(0) recomputes the most recent output without
// advancing. Skip(n) followed by Skip(-n) restores the generator exactly.
type Skipper interface {
	T
	Skip(n int64) uint64
}

// Seeder is a generator that can be reinitialized from a seed, exactly as
// its constructor would initialize it.
type Seeder interface {
	T
	Seed(seed uint64)
}
