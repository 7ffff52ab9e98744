package linnorm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLinnorm(t *testing.T) {
	t.Run("KnownAnswers", func(t *testing.T) {
		g := New(12345)
		require.Equal(t, []uint64{
			0x8ca93460c139a1c0,
			0xc745b8ed14fdf96c,
			0x6ec6f0109c3707c2,
			0xa87a858c9911de86,
			0x36c7b9be1e00f09c,
		}, []uint64{g.Uint64(), g.Uint64(), g.Uint64(), g.Uint64(), g.Uint64()})
	})

	t.Run("Deterministic", func(t *testing.T) {
		for _, s := range []uint64{0, 1, 12345, ^uint64(0)} {
			a, b := New(s), New(s)
			for i := 0; i < 1000; i++ {
				require.Equal(t, a.Uint64(), b.Uint64())
			}
		}
	})

	t.Run("Copy", func(t *testing.T) {
		g := New(99)
		g.Uint64()
		c := g.Copy()
		for i := 0; i < 100; i++ {
			require.Equal(t, g.Uint64(), c.Uint64())
		}
		g.Uint64()
		require.NotEqual(t, g.State(), c.(*T).State())
	})

	t.Run("Skip", func(t *testing.T) {
		g := New(12345)
		v1 := g.Uint64()

		g.SetState(12345)
		g.Skip(5)
		g.Skip(-5)
		require.Equal(t, v1, g.Uint64())

		g.SetState(12345)
		want := make([]uint64, 50)
		for i := range want {
			want[i] = g.Uint64()
		}
		for n := int64(1); n <= 50; n++ {
			g.SetState(12345)
			require.Equal(t, want[n-1], g.Skip(n))
			require.Equal(t, want[n-1], g.Skip(0))
		}
	})

	t.Run("Determine", func(t *testing.T) {
		g := New(777)
		require.Equal(t, Determine(777), g.Uint64())
		require.Equal(t, Determine(g.State()), g.Uint64())

		for i := uint64(0); i < 1000; i++ {
			v := DetermineBounded(i, 10)
			require.True(t, v >= 0 && v < 10)
			f := DetermineFloat32(i)
			require.True(t, f >= 0 && f < 1)
			d := DetermineFloat64(i)
			require.True(t, d >= 0 && d < 1)
		}
	})

	t.Run("Next", func(t *testing.T) {
		g := New(5)
		for i := 0; i < 1000; i++ {
			require.Less(t, g.Next(7), uint32(1<<7))
		}
		require.Equal(t, uint32(0), g.Next(0))
	})
}

var blackholeUint64 uint64

func BenchmarkLinnorm(b *testing.B) {
	g := New(2345)
	for i := 0; i < b.N; i++ {
		blackholeUint64 += g.Uint64()
	}
}

func BenchmarkDetermine(b *testing.B) {
	for i := 0; i < b.N; i++ {
		blackholeUint64 += Determine(uint64(i))
	}
}
