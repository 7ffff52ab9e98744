package longperiod

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		g := New(12345)
		g.Uint64()
		g.Jump()

		buf, err := g.MarshalBinary()
		require.NoError(t, err)
		require.Len(t, buf, EncodedSize)

		h := New(1)
		require.NoError(t, h.UnmarshalBinary(buf))
		for i := 0; i < 100; i++ {
			require.Equal(t, g.Uint64(), h.Uint64())
		}
	})

	t.Run("Layout", func(t *testing.T) {
		g := New(1)
		var state [Words]uint64
		state[0] = 0x0102030405060708
		g.SetState(state, 5)

		buf, err := g.MarshalBinary()
		require.NoError(t, err)
		require.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, buf[:8])
		require.Equal(t, byte(5), buf[EncodedSize-1])
	})

	t.Run("ZeroState", func(t *testing.T) {
		g := New(5)
		require.NoError(t, g.UnmarshalBinary(make([]byte, EncodedSize)))
		words, choice := g.State()
		want, _ := New(1).State()
		require.Equal(t, want, words)
		require.Equal(t, 0, choice)
	})

	t.Run("Invalid", func(t *testing.T) {
		g := New(5)
		before, _ := g.State()

		err := g.UnmarshalBinary(make([]byte, EncodedSize-1))
		require.True(t, Error.Has(err))

		buf := make([]byte, EncodedSize)
		buf[EncodedSize-1] = Words
		err = g.UnmarshalBinary(buf)
		require.True(t, Error.Has(err))

		after, _ := g.State()
		require.Equal(t, before, after)
	})
}
