package rdgen

import "strconv"

// Length is the total output length requested from an [Emitter].
// It is either bounded to an exact byte count or unbounded.
//
// The zero value is Bounded(0).
type Length struct {
	n         uint64
	unbounded bool
}

// Bounded returns a Length of exactly n bytes.
// Zero is valid and produces no output.
func Bounded(n uint64) Length {
	return Length{n: n}
}

// Unbounded returns a Length that never terminates.
func Unbounded() Length {
	return Length{unbounded: true}
}

// Limit returns the byte count and true if l is bounded,
// or zero and false if l is unbounded.
func (l Length) Limit() (uint64, bool) {
	if l.unbounded {
		return 0, false
	}
	return l.n, true
}

func (l Length) String() string {
	if l.unbounded {
		return "unbounded"
	}
	return strconv.FormatUint(l.n, 10)
}
