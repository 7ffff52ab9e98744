package rng

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	names := Names()
	require.True(t, sort.StringsAreSorted(names))
	require.Equal(t, []string{
		"diver", "lathe", "light", "linnorm", "longperiod", "pcg", "pulley", "thrust",
	}, names)
}

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		g, err := Lookup(name, 1)
		require.NoError(t, err)
		require.NotNil(t, g.Source())
	}

	_, err := Lookup("mersenne", 1)
	require.Error(t, err)
	require.True(t, Error.Has(err))
}
