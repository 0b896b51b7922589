package rdhash_test

import (
	"crypto/sha256"
	"hash"
	"testing"

	"github.com/gordian-engine/rdgen/rdhash"
	"github.com/gordian-engine/rdgen/rdhash/rdsha512"
	"github.com/stretchr/testify/require"
)

type sha256Hasher struct{}

func (sha256Hasher) New() hash.Hash { return sha256.New() }

func TestMustNew(t *testing.T) {
	t.Parallel()

	h := rdhash.MustNew(rdsha512.Hasher{})
	require.Equal(t, rdhash.Size, h.Size())
}

func TestMustNew_wrongWidth(t *testing.T) {
	t.Parallel()

	require.PanicsWithError(
		t,
		"BUG: hasher rdhash_test.sha256Hasher must produce 64-byte digests (got 32)",
		func() { rdhash.MustNew(sha256Hasher{}) },
	)
}
