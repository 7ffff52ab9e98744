package rng

import (
	"iter"
	"math"
)

// Every operation here makes exactly one bounded draw per swap or step,
// and that draw is a single native draw of the wrapped generator for any
// length that fits in an int32.

// Collection is an ordered collection that can be shuffled in place. Any
// sort.Interface satisfies it.
type Collection interface {
	Len() int
	Swap(i, j int)
}

// ShuffleInPlace reorders s uniformly at random.
func ShuffleInPlace[E any](r *T, s []E) {
	for i := len(s) - 1; i > 0; i-- {
		j := r.index(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// Shuffle returns a shuffled copy of s, leaving s untouched.
func Shuffle[E any](r *T, s []E) []E {
	out := append([]E(nil), s...)
	ShuffleInPlace(r, out)
	return out
}

// ShuffleInto writes a shuffled copy of src into dst, which must be the
// same length.
func ShuffleInto[E any](r *T, src, dst []E) error {
	if len(src) != len(dst) {
		return ArgumentError.New("destination length %d does not match source length %d",
			len(dst), len(src))
	}
	copy(dst, src)
	ShuffleInPlace(r, dst)
	return nil
}

// ShuffleCollection reorders c uniformly at random.
func ShuffleCollection(r *T, c Collection) {
	for i := c.Len() - 1; i > 0; i-- {
		c.Swap(i, r.index(i+1))
	}
}

// Pick returns a random element of s. It returns false if s is empty.
func Pick[E any](r *T, s []E) (e E, ok bool) {
	if len(s) == 0 {
		return e, false
	}
	return s[r.index(len(s))], true
}

// MustPick is Pick for slices that are never empty. It panics otherwise.
func MustPick[E any](r *T, s []E) E {
	if len(s) == 0 {
		panic("rng: pick from empty slice")
	}
	return s[r.index(len(s))]
}

// PickSeq returns a random element of a sequence holding size elements,
// walking to it from the start. It returns false if size is not positive
// or the sequence ends before the chosen position.
func PickSeq[E any](r *T, size int, seq iter.Seq[E]) (e E, ok bool) {
	if size <= 0 {
		return e, false
	}
	k := r.index(size)
	for v := range seq {
		if k == 0 {
			return v, true
		}
		k--
	}
	return e, false
}

// Portion returns k elements of s in random order, chosen without
// replacement. It returns all of s, shuffled, when k >= len(s).
func Portion[E any](r *T, s []E, k int) []E {
	out := append([]E(nil), s...)
	return out[:partial(r, out, k)]
}

// partial shuffles the first k positions of s forward, returning how many
// were placed.
func partial[E any](r *T, s []E, k int) int {
	n := len(s)
	if k > n {
		k = n
	}
	if k < 0 {
		k = 0
	}
	for i := 0; i < k && i < n-1; i++ {
		j := i + r.index(n-i)
		s[i], s[j] = s[j], s[i]
	}
	return k
}

// Rotate returns a copy of s rotated right by a random amount, so the
// element at i moves to (i + d) % len(s).
func Rotate[E any](r *T, s []E) []E {
	n := len(s)
	out := make([]E, n)
	if n == 0 {
		return out
	}
	d := r.index(n)
	copy(out[d:], s[:n-d])
	copy(out, s[n-d:])
	return out
}

// Perm returns a random permutation of [0, n). It is empty if n <= 0.
func (t *T) Perm(n int) []int {
	if n < 0 {
		n = 0
	}
	out, _ := t.PermInto(make([]int, n), n)
	return out
}

// PermInto writes a random permutation of [0, n) into the front of dst and
// returns that prefix. dst must hold at least n elements.
func (t *T) PermInto(dst []int, n int) ([]int, error) {
	if n <= 0 {
		return dst[:0], nil
	}
	if len(dst) < n {
		return nil, ArgumentError.New("destination length %d is shorter than %d", len(dst), n)
	}
	dst = dst[:n]
	for i := range dst {
		dst[i] = i
	}
	ShuffleInPlace(t, dst)
	return dst, nil
}

// RandomRange returns up to count distinct values from [start, end) in
// random order. It is empty when end <= start or start is negative.
func (t *T) RandomRange(start, end, count int) []int {
	if end <= start || start < 0 || count <= 0 {
		return []int{}
	}
	data := make([]int, end-start)
	for i := range data {
		data[i] = start + i
	}
	return data[:partial(t, data, count)]
}

// IntBetweenWeighted averages samples draws from IntBetween(lower, upper),
// rounding half up, which concentrates results toward the middle of the
// range as samples grows.
func (t *T) IntBetweenWeighted(lower, upper, samples int) int {
	if samples < 1 {
		samples = 1
	}
	sum := 0.0
	for i := 0; i < samples; i++ {
		sum += float64(t.IntBetween(lower, upper))
	}
	return int(math.Floor(sum/float64(samples) + 0.5))
}

// MinInt64Of returns the smallest of trials draws from SignedInt64n(bound).
func (t *T) MinInt64Of(bound int64, trials int) int64 {
	v := t.SignedInt64n(bound)
	for i := 1; i < trials; i++ {
		v = min(v, t.SignedInt64n(bound))
	}
	return v
}

// MaxInt64Of returns the largest of trials draws from SignedInt64n(bound).
func (t *T) MaxInt64Of(bound int64, trials int) int64 {
	v := t.SignedInt64n(bound)
	for i := 1; i < trials; i++ {
		v = max(v, t.SignedInt64n(bound))
	}
	return v
}

// MinFloat64Of returns the smallest of trials draws from Float64n(outer).
func (t *T) MinFloat64Of(outer float64, trials int) float64 {
	v := t.Float64n(outer)
	for i := 1; i < trials; i++ {
		v = min(v, t.Float64n(outer))
	}
	return v
}

// MaxFloat64Of returns the largest of trials draws from Float64n(outer).
func (t *T) MaxFloat64Of(outer float64, trials int) float64 {
	v := t.Float64n(outer)
	for i := 1; i < trials; i++ {
		v = max(v, t.Float64n(outer))
	}
	return v
}
