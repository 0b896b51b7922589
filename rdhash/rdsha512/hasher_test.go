package rdsha512_test

import (
	"encoding/hex"
	"testing"

	"github.com/gordian-engine/rdgen/rdhash"
	"github.com/gordian-engine/rdgen/rdhash/rdhashtest"
	"github.com/gordian-engine/rdgen/rdhash/rdsha512"
	"github.com/stretchr/testify/require"
)

func TestCompliance(t *testing.T) {
	t.Parallel()

	rdhashtest.TestHasherCompliance(t, func() rdhash.Hasher {
		return rdsha512.Hasher{}
	})
}

func TestHasher_knownVector(t *testing.T) {
	t.Parallel()

	h := rdsha512.Hasher{}.New()
	_, _ = h.Write([]byte("abc"))
	require.Equal(
		t,
		"ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f",
		hex.EncodeToString(h.Sum(nil)),
	)
}
