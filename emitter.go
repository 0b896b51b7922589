package rdgen

import (
	"fmt"
	"io"
	"iter"
)

// Emitter adapts a [Generator] to an exact-length or unbounded byte stream.
//
// A bounded Emitter terminates once it has produced its full [Length];
// from then on every pull returns an empty slice.
// Because only the tail of the final block is ever trimmed,
// the output for a shorter length is an exact prefix of the output
// for a longer length from the same seed.
//
// An Emitter is single use.
type Emitter struct {
	g *Generator

	length Length

	// Total bytes taken from g,
	// including any bytes still held in pending.
	pulled uint64

	// Bytes already taken from g but not yet delivered,
	// because a Read destination was smaller than the block.
	pending []byte
}

// NewEmitter returns an Emitter reading from g, limited to l.
// The Emitter takes ownership of g;
// pulling from g directly afterwards corrupts the output.
func NewEmitter(g *Generator, l Length) *Emitter {
	return &Emitter{
		g:      g,
		length: l,
	}
}

// Generate returns exactly n bytes generated from seed with the [DefaultHasher].
// The whole output is allocated at once, so n should be reasonable.
func Generate(seed []byte, n uint64) []byte {
	e := NewEmitter(NewGenerator(seed), Bounded(n))

	out := make([]byte, 0, n)
	for data := range e.All() {
		out = append(out, data...)
	}
	return out
}

// Pull returns the next bytes of the stream.
//
// When unbounded, Pull always returns a full block.
// When bounded, Pull returns a full block while more than a block remains,
// then the prefix of one more block needed to reach the exact length,
// and then an empty slice on every subsequent call.
//
// The underlying chain advances a full step even when only
// a prefix of its block is returned.
func (e *Emitter) Pull() []byte {
	if len(e.pending) > 0 {
		out := e.pending
		e.pending = nil
		return out
	}

	target, bounded := e.length.Limit()
	if !bounded {
		b := e.g.Pull()
		e.pulled += BlockSize
		return b[:]
	}

	if e.pulled > target {
		panic(fmt.Errorf(
			"BUG: emitted %d bytes, past target length %d", e.pulled, target,
		))
	}

	remaining := target - e.pulled
	if remaining == 0 {
		return nil
	}

	b := e.g.Pull()
	if remaining > BlockSize {
		e.pulled += BlockSize
		return b[:]
	}

	e.pulled += remaining
	return b[:remaining]
}

// Next is like Pull,
// but it also reports whether the returned slice is non-empty.
// Once Next returns false, it always returns false.
func (e *Emitter) Next() ([]byte, bool) {
	data := e.Pull()
	return data, len(data) > 0
}

// All returns a sequence of the remaining non-empty pulls.
// The sequence ends when e terminates,
// so ranging over an unbounded Emitter never finishes on its own.
func (e *Emitter) All() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		for {
			data, ok := e.Next()
			if !ok {
				return
			}
			if !yield(data) {
				return
			}
		}
	}
}

// Read implements [io.Reader].
// It returns [io.EOF] once a bounded Emitter has produced its full length,
// and it always fills p when e is unbounded.
//
// Bytes of a block that do not fit in p are held
// for the next call to Read, Pull, Next, or All.
func (e *Emitter) Read(p []byte) (int, error) {
	var n int
	for n < len(p) {
		data := e.Pull()
		if len(data) == 0 {
			if n == 0 {
				return 0, io.EOF
			}
			return n, nil
		}

		nn := copy(p[n:], data)
		n += nn

		if nn < len(data) {
			e.pending = data[nn:]
		}
	}

	return n, nil
}

// WriteTo implements [io.WriterTo].
// It writes every remaining byte of e to w,
// stopping early only if w returns an error.
// An unbounded Emitter writes until w fails.
func (e *Emitter) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for {
		data, ok := e.Next()
		if !ok {
			return n, nil
		}

		nn, err := w.Write(data)
		n += int64(nn)
		if err != nil {
			return n, err
		}
	}
}

// Emitted reports how many bytes e has delivered so far.
func (e *Emitter) Emitted() uint64 {
	return e.pulled - uint64(len(e.pending))
}

// Remaining reports how many bytes e will still deliver
// and true, if e is bounded.
// If e is unbounded, Remaining returns zero and false.
func (e *Emitter) Remaining() (uint64, bool) {
	target, bounded := e.length.Limit()
	if !bounded {
		return 0, false
	}
	return target - e.Emitted(), true
}

// Length returns the length e was created with.
func (e *Emitter) Length() Length {
	return e.length
}
