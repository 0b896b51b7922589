package rdblake2b_test

import (
	"encoding/hex"
	"testing"

	"github.com/gordian-engine/rdgen/rdhash"
	"github.com/gordian-engine/rdgen/rdhash/rdblake2b"
	"github.com/gordian-engine/rdgen/rdhash/rdhashtest"
	"github.com/stretchr/testify/require"
)

func TestCompliance(t *testing.T) {
	t.Parallel()

	rdhashtest.TestHasherCompliance(t, func() rdhash.Hasher {
		return rdblake2b.Hasher{}
	})
}

func TestHasher_knownVector(t *testing.T) {
	t.Parallel()

	// RFC 7693, Appendix A.
	h := rdblake2b.Hasher{}.New()
	_, _ = h.Write([]byte("abc"))
	require.Equal(
		t,
		"ba80a53f981c4d0d6a2797b69f12f6e94c212f14685ac4b74b12bb6fdbffa2d17d87c5392aab792dc252d5de4533cc9518d38aa8dbf1925ab92386edd4009923",
		hex.EncodeToString(h.Sum(nil)),
	)
}
