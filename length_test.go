package rdgen_test

import (
	"testing"

	"github.com/gordian-engine/rdgen"
	"github.com/stretchr/testify/require"
)

func TestLength(t *testing.T) {
	t.Parallel()

	n, ok := rdgen.Bounded(100).Limit()
	require.True(t, ok)
	require.Equal(t, uint64(100), n)
	require.Equal(t, "100", rdgen.Bounded(100).String())

	n, ok = rdgen.Bounded(0).Limit()
	require.True(t, ok)
	require.Zero(t, n)

	_, ok = rdgen.Unbounded().Limit()
	require.False(t, ok)
	require.Equal(t, "unbounded", rdgen.Unbounded().String())

	var zero rdgen.Length
	require.Equal(t, rdgen.Bounded(0), zero)
}
