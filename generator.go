package rdgen

import (
	"hash"
	"io"

	"github.com/gordian-engine/rdgen/rdhash"
	"github.com/gordian-engine/rdgen/rdhash/rdblake2b"
)

// BlockSize is the number of bytes produced by each [*Generator.Pull].
const BlockSize = rdhash.Size

// Block is a single unit of generator output.
type Block [BlockSize]byte

// DefaultHasher is the hasher used by [NewGenerator]
// and [NewGeneratorFromStream].
var DefaultHasher rdhash.Hasher = rdblake2b.Hasher{}

// Generator produces an unbounded, deterministic sequence of [Block] values
// by repeatedly hashing its internal state.
//
// The sequence cannot be rewound;
// reproducing it requires a new Generator from the same seed.
type Generator struct {
	h hash.Hash

	// The value the next call to Pull returns.
	// Always one hash step ahead of the last emitted block.
	state Block
}

// NewGenerator returns a Generator seeded with the
// [DefaultHasher] digest of seed.
func NewGenerator(seed []byte) *Generator {
	return NewHashGenerator(DefaultHasher, seed)
}

// NewGeneratorFromStream returns a Generator seeded with the
// [DefaultHasher] digest of everything read from r.
// A failed read results in a [DataStreamError].
func NewGeneratorFromStream(r io.Reader) (*Generator, error) {
	return NewHashGeneratorFromStream(DefaultHasher, r)
}

// NewHashGenerator is like [NewGenerator] but uses h
// both to digest the seed and to advance the chain.
func NewHashGenerator(h rdhash.Hasher, seed []byte) *Generator {
	return &Generator{
		h:     rdhash.MustNew(h),
		state: SeedDigestBytes(h, seed),
	}
}

// NewHashGeneratorFromStream is like [NewGeneratorFromStream] but uses h
// both to digest the seed and to advance the chain.
func NewHashGeneratorFromStream(h rdhash.Hasher, r io.Reader) (*Generator, error) {
	seed, err := SeedDigest(h, r)
	if err != nil {
		return nil, err
	}

	return &Generator{
		h:     rdhash.MustNew(h),
		state: seed,
	}, nil
}

// Pull returns the current chain state
// and advances the state to the hash of the returned value.
//
// The first call returns the seed digest itself.
func (g *Generator) Pull() Block {
	out := g.state

	g.h.Reset()
	_, _ = g.h.Write(out[:])
	g.h.Sum(g.state[:0])

	return out
}

// BatchSize reports the number of bytes returned by each call to Pull.
// It is always [BlockSize].
func (g *Generator) BatchSize() int {
	return BlockSize
}
