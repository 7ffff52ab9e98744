package rng

import (
	"slices"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zeebo/rng/lathe"
	"github.com/zeebo/rng/light"
	"github.com/zeebo/rng/pcg"
	"github.com/zeebo/rng/source"
)

func TestShuffle(t *testing.T) {
	g := NewSeed(12345)
	in := []int{1, 2, 3, 4, 5}

	for i := 0; i < 200; i++ {
		out := Shuffle(g, in)
		require.Equal(t, []int{1, 2, 3, 4, 5}, in)
		require.ElementsMatch(t, in, out)
	}

	s := []string{"a", "b", "c"}
	ShuffleInPlace(g, s)
	require.ElementsMatch(t, []string{"a", "b", "c"}, s)

	ShuffleInPlace(g, []int(nil))
	require.Empty(t, Shuffle(g, []int{}))
}

func TestShuffleAllOrders(t *testing.T) {
	g := NewSeed(1)
	seen := map[[3]int]int{}
	for i := 0; i < 6000; i++ {
		out := Shuffle(g, []int{0, 1, 2})
		seen[[3]int{out[0], out[1], out[2]}]++
	}
	require.Len(t, seen, 6)
	for _, n := range seen {
		require.InDelta(t, 1000, n, 150)
	}
}

func TestShuffleInto(t *testing.T) {
	g := NewSeed(2)
	src := []int{1, 2, 3, 4}

	dst := make([]int, 4)
	require.NoError(t, ShuffleInto(g, src, dst))
	require.ElementsMatch(t, src, dst)

	err := ShuffleInto(g, src, make([]int, 3))
	require.Error(t, err)
	require.True(t, ArgumentError.Has(err))
}

func TestShuffleCollection(t *testing.T) {
	g := NewSeed(3)
	c := sort.IntSlice{5, 4, 3, 2, 1}
	ShuffleCollection(g, c)
	require.ElementsMatch(t, []int{1, 2, 3, 4, 5}, []int(c))
}

func TestOneDrawPerSwap(t *testing.T) {
	for _, n := range []int{0, 1, 2, 10, 100} {
		g, c := newCounting(4)
		ShuffleInPlace(g, make([]int, n))
		require.Equal(t, max(n-1, 0), c.draws)

		c.draws = 0
		g.Perm(n)
		require.Equal(t, max(n-1, 0), c.draws)

		c.draws = 0
		ShuffleCollection(g, sort.IntSlice(make([]int, n)))
		require.Equal(t, max(n-1, 0), c.draws)
	}
}

// stepsTaken reports how many Uint32 calls on a copy of before it takes to
// reach the state of after, up to limit.
func stepsTaken(t *testing.T, before source.Stateful, after *T, limit int) int {
	t.Helper()
	want, err := after.State()
	require.NoError(t, err)

	c := before.Copy().(source.Stateful)
	for i := 0; i <= limit; i++ {
		if c.State() == want {
			return i
		}
		c.Uint32()
	}
	t.Fatalf("state not reached within %d native draws", limit)
	return -1
}

func TestNativeDrawsPerStep(t *testing.T) {
	gens := map[string]func() source.Stateful{
		"lathe": func() source.Stateful { return lathe.New(1) },
		"light": func() source.Stateful { return light.New(1) },
		"pcg":   func() source.Stateful { return pcg.New(1, 7) },
	}

	for name, mk := range gens {
		t.Run(name, func(t *testing.T) {
			for _, n := range []int{1, 2, 10, 100} {
				src := mk()
				g := New(src.Copy())
				ShuffleInPlace(g, make([]int, n))
				require.Equal(t, n-1, stepsTaken(t, src, g, 4*n))

				g = New(src.Copy())
				g.Perm(n)
				require.Equal(t, n-1, stepsTaken(t, src, g, 4*n))

				g = New(src.Copy())
				ShuffleCollection(g, sort.IntSlice(make([]int, n)))
				require.Equal(t, n-1, stepsTaken(t, src, g, 4*n))

				g = New(src.Copy())
				Pick(g, make([]int, n))
				require.Equal(t, 1, stepsTaken(t, src, g, 4))

				g = New(src.Copy())
				PickSeq(g, n, slices.Values(make([]int, n)))
				require.Equal(t, 1, stepsTaken(t, src, g, 4))

				g = New(src.Copy())
				Rotate(g, make([]int, n))
				require.Equal(t, 1, stepsTaken(t, src, g, 4))

				g = New(src.Copy())
				g.RandomRange(0, n+1, n)
				require.Equal(t, n, stepsTaken(t, src, g, 4*n))
			}
		})
	}
}

func TestPick(t *testing.T) {
	g := NewSeed(5)

	_, ok := Pick(g, []int{})
	require.False(t, ok)

	for i := 0; i < 100; i++ {
		v, ok := Pick(g, []int{7, 8, 9})
		require.True(t, ok)
		require.Contains(t, []int{7, 8, 9}, v)
		require.Contains(t, []int{7, 8, 9}, MustPick(g, []int{7, 8, 9}))
	}

	require.Panics(t, func() { MustPick(g, []int{}) })
}

func TestPickSeq(t *testing.T) {
	g := NewSeed(6)
	s := []string{"x", "y", "z"}

	seen := map[string]bool{}
	for i := 0; i < 300; i++ {
		v, ok := PickSeq(g, len(s), slices.Values(s))
		require.True(t, ok)
		seen[v] = true
	}
	require.Len(t, seen, 3)

	_, ok := PickSeq(g, 0, slices.Values(s))
	require.False(t, ok)

	// a size larger than the sequence can land past its end
	misses := 0
	for i := 0; i < 300; i++ {
		if _, ok := PickSeq(g, 6, slices.Values(s)); !ok {
			misses++
		}
	}
	require.NotZero(t, misses)

	// matches Pick for the same generator position
	a, b := NewSeed(7), NewSeed(7)
	for i := 0; i < 100; i++ {
		v, _ := Pick(a, s)
		w, _ := PickSeq(b, len(s), slices.Values(s))
		require.Equal(t, v, w)
	}
}

func TestPerm(t *testing.T) {
	g := NewSeed(8)
	for n := 0; n <= 50; n++ {
		p := g.Perm(n)
		require.Len(t, p, n)
		sorted := append([]int(nil), p...)
		sort.Ints(sorted)
		for i, v := range sorted {
			require.Equal(t, i, v)
		}
	}
	require.Empty(t, g.Perm(-1))
}

func TestPermInto(t *testing.T) {
	g := NewSeed(9)
	buf := make([]int, 10)

	p, err := g.PermInto(buf, 6)
	require.NoError(t, err)
	require.Len(t, p, 6)
	require.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5}, p)
	require.Same(t, &buf[0], &p[0])

	p, err = g.PermInto(buf, 0)
	require.NoError(t, err)
	require.Empty(t, p)

	_, err = g.PermInto(buf, 11)
	require.True(t, ArgumentError.Has(err))
}

func TestPortion(t *testing.T) {
	g := NewSeed(10)
	in := []int{1, 2, 3, 4, 5, 6}

	out := Portion(g, in, 3)
	require.Len(t, out, 3)
	require.Subset(t, in, out)
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, in)

	require.ElementsMatch(t, in, Portion(g, in, 100))
	require.Empty(t, Portion(g, in, 0))
	require.Empty(t, Portion(g, in, -1))
}

func TestRotate(t *testing.T) {
	g := NewSeed(11)
	in := []int{0, 1, 2, 3, 4}
	for i := 0; i < 50; i++ {
		out := Rotate(g, in)
		require.Len(t, out, 5)
		d := out[0]
		for j := range out {
			require.Equal(t, (j+d)%5, out[j])
		}
	}
	require.Empty(t, Rotate(g, []int{}))
}

func TestRandomRange(t *testing.T) {
	g := NewSeed(12)

	out := g.RandomRange(10, 20, 4)
	require.Len(t, out, 4)
	for _, v := range out {
		require.True(t, v >= 10 && v < 20)
	}
	require.Len(t, uniq(out), 4)

	require.ElementsMatch(t, []int{3, 4, 5}, g.RandomRange(3, 6, 10))
	require.Empty(t, g.RandomRange(5, 5, 3))
	require.Empty(t, g.RandomRange(-1, 5, 3))
	require.Empty(t, g.RandomRange(0, 5, 0))
}

func uniq(s []int) map[int]bool {
	m := map[int]bool{}
	for _, v := range s {
		m[v] = true
	}
	return m
}

func TestIntBetweenWeighted(t *testing.T) {
	g := NewSeed(13)
	for i := 0; i < 1000; i++ {
		v := g.IntBetweenWeighted(0, 10, 4)
		require.True(t, v >= 0 && v <= 9)
	}
	require.Equal(t, 5, g.IntBetweenWeighted(5, 5, 3))
	require.Equal(t, 5, g.IntBetweenWeighted(5, 5, 0))
}

func TestMinMaxOf(t *testing.T) {
	g := NewSeed(14)
	for i := 0; i < 200; i++ {
		v := g.MinInt64Of(100, 5)
		require.True(t, v >= 0 && v < 100)
		w := g.MaxInt64Of(-100, 5)
		require.True(t, w > -100 && w <= 0)
		f := g.MinFloat64Of(2, 3)
		require.True(t, f >= 0 && f < 2)
		h := g.MaxFloat64Of(2, 3)
		require.True(t, h >= 0 && h < 2)
	}

	// the minimum of many trials sits lower than the maximum on average
	var lo, hi int64
	for i := 0; i < 200; i++ {
		lo += g.MinInt64Of(1000, 8)
		hi += g.MaxInt64Of(1000, 8)
	}
	require.Less(t, lo, hi)
}
