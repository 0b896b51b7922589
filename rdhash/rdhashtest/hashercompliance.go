package rdhashtest

import (
	"encoding/binary"
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/gordian-engine/rdgen/rdhash"
	"github.com/stretchr/testify/require"
)

type HasherFactory func() rdhash.Hasher

func TestHasherCompliance(t *testing.T, f HasherFactory) {
	t.Run("digest has the chain width", func(t *testing.T) {
		t.Parallel()

		h := rdhash.MustNew(f())
		require.Equal(t, rdhash.Size, h.Size())

		_, _ = h.Write([]byte("width"))
		require.Len(t, h.Sum(nil), rdhash.Size)
	})

	t.Run("digest is deterministic", func(t *testing.T) {
		t.Parallel()

		hr := f()

		h1 := rdhash.MustNew(hr)
		_, _ = h1.Write([]byte("deterministic_data"))

		h2 := rdhash.MustNew(hr)
		_, _ = h2.Write([]byte("deterministic_data"))

		require.Equal(t, h1.Sum(nil), h2.Sum(nil))
	})

	t.Run("digest respects input", func(t *testing.T) {
		t.Parallel()

		hr := f()

		h1 := rdhash.MustNew(hr)
		_, _ = h1.Write([]byte("data_1"))

		h2 := rdhash.MustNew(hr)
		_, _ = h2.Write([]byte("data_2"))

		require.NotEqual(t, h1.Sum(nil), h2.Sum(nil))
	})

	t.Run("split writes match a single write", func(t *testing.T) {
		t.Parallel()

		data := make([]byte, 10_000)
		for i := range data {
			data[i] = byte(i * 7)
		}

		hr := f()

		whole := rdhash.MustNew(hr)
		_, _ = whole.Write(data)

		split := rdhash.MustNew(hr)
		rest := data
		for _, sz := range []int{1, 62, 64, 65, 4096, 4097} {
			_, _ = split.Write(rest[:sz])
			rest = rest[sz:]
		}
		_, _ = split.Write(rest)

		require.Equal(t, whole.Sum(nil), split.Sum(nil))
	})

	t.Run("sum does not modify state", func(t *testing.T) {
		t.Parallel()

		hr := f()

		h := rdhash.MustNew(hr)
		_, _ = h.Write([]byte("hello "))
		first := h.Sum(nil)
		require.Equal(t, first, h.Sum(nil))

		_, _ = h.Write([]byte("world"))

		full := rdhash.MustNew(hr)
		_, _ = full.Write([]byte("hello world"))
		require.Equal(t, full.Sum(nil), h.Sum(nil))
	})

	t.Run("sum appends to dst", func(t *testing.T) {
		t.Parallel()

		h := rdhash.MustNew(f())
		_, _ = h.Write([]byte("append"))

		prefix := []byte("prefix")
		out := h.Sum(append([]byte(nil), prefix...))
		require.Len(t, out, len(prefix)+rdhash.Size)
		require.Equal(t, prefix, out[:len(prefix)])
		require.Equal(t, h.Sum(nil), out[len(prefix):])
	})

	t.Run("reset restores the empty state", func(t *testing.T) {
		t.Parallel()

		hr := f()

		empty := rdhash.MustNew(hr).Sum(nil)

		h := rdhash.MustNew(hr)
		_, _ = h.Write([]byte("discarded"))
		h.Reset()
		require.Equal(t, empty, h.Sum(nil))
	})

	t.Run("chained output bits are balanced", func(t *testing.T) {
		t.Parallel()

		const steps = 256

		h := rdhash.MustNew(f())
		_, _ = h.Write([]byte("balance"))
		state := h.Sum(nil)

		words := make([]uint64, 0, steps*rdhash.Size/8)
		for range steps {
			for i := 0; i < rdhash.Size; i += 8 {
				words = append(words, binary.LittleEndian.Uint64(state[i:]))
			}

			h.Reset()
			_, _ = h.Write(state)
			state = h.Sum(state[:0])
		}

		bs := bitset.From(words)
		total := uint(len(words) * 64)
		set := bs.Count()

		// About seven standard deviations either way.
		tolerance := total / 100
		require.InDelta(t, total/2, set, float64(tolerance))
	})
}
