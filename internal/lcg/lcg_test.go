package lcg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	mul = 0x369DEA0F31A53F85
	add = 1
)

func TestAdvance(t *testing.T) {
	t.Run("MatchesStepping", func(t *testing.T) {
		x := uint64(12345)
		for n := uint64(0); n < 300; n++ {
			require.Equal(t, x, Advance(12345, n, mul, add), "n=%d", n)
			x = x*mul + add
		}
	})

	t.Run("Retreat", func(t *testing.T) {
		for _, n := range []int64{1, 2, 5, 1000, 1 << 40} {
			x := Advance(777, uint64(n), mul, add)
			require.Equal(t, uint64(777), Advance(x, uint64(-n), mul, add))
		}
	})

	t.Run("Zero", func(t *testing.T) {
		require.Equal(t, uint64(99), Advance(99, 0, mul, add))
	})
}

func BenchmarkAdvance(b *testing.B) {
	x := uint64(0)
	for i := 0; i < b.N; i++ {
		x = Advance(x, uint64(i), mul, add)
	}
	_ = x
}
