package pcg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	pi := New(2345, 2378)
	pi.Uint32()

	buf, err := pi.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, buf, EncodedSize)

	other := New(1, 1)
	require.NoError(t, other.UnmarshalBinary(buf))
	require.Equal(t, pi.Stream(), other.Stream())
	for i := 0; i < 100; i++ {
		require.Equal(t, pi.Uint32(), other.Uint32())
	}

	require.True(t, Error.Has(other.UnmarshalBinary(buf[:8])))

	even := append([]byte(nil), buf...)
	even[EncodedSize-1] &^= 1
	require.True(t, Error.Has(other.UnmarshalBinary(even)))
}
