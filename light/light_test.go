package light

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLight(t *testing.T) {
	t.Run("KnownAnswers", func(t *testing.T) {
		g := New(12345)
		require.Equal(t, []uint32{
			0x6dbc7e49,
			0x40c66642,
			0x67d05d18,
			0x49dedd37,
			0x947b6f41,
		}, []uint32{g.Uint32(), g.Uint32(), g.Uint32(), g.Uint32(), g.Uint32()})
	})

	t.Run("OddIncrement", func(t *testing.T) {
		g := New(0)
		require.Equal(t, uint64(1)<<32, g.State())
		g.SetState(2 << 32)
		require.Equal(t, uint64(3)<<32, g.State())
	})

	t.Run("IncrementBumps", func(t *testing.T) {
		g := New(1 << 32)
		g.Uint32()
		require.Equal(t, uint64(1+bump)<<32|uint64(1+bump), g.State())
	})

	t.Run("Copy", func(t *testing.T) {
		g := NewString("light")
		c := g.Copy()
		for i := 0; i < 100; i++ {
			require.Equal(t, g.Uint64(), c.Uint64())
		}
		g.Uint32()
		require.NotEqual(t, g.State(), c.(*T).State())
	})

	t.Run("Determine", func(t *testing.T) {
		require.Equal(t, Determine(5), Determine(5))
		require.NotEqual(t, Determine(5), Determine(6))
		for i := uint32(0); i < 1000; i++ {
			v := DetermineBounded(i, 100)
			require.True(t, v >= 0 && v < 100)
			require.Less(t, DetermineFloat32(i), float32(1))
		}
	})
}

var blackholeUint32 uint32

func BenchmarkLight(b *testing.B) {
	g := New(2345)
	for i := 0; i < b.N; i++ {
		blackholeUint32 += g.Uint32()
	}
}
