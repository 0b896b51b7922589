package rdcli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gordian-engine/rdgen/rdhash"
	"github.com/gordian-engine/rdgen/rdhash/rdblake2b"
	"github.com/gordian-engine/rdgen/rdhash/rdblake3"
	"github.com/gordian-engine/rdgen/rdhash/rdsha512"
)

var hashers = map[string]rdhash.Hasher{
	"blake2b": rdblake2b.Hasher{},
	"blake3":  rdblake3.Hasher{},
	"sha512":  rdsha512.Hasher{},
}

// LookupHasher returns the hasher registered under name,
// ignoring case.
func LookupHasher(name string) (rdhash.Hasher, error) {
	h, ok := hashers[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf(
			"unknown hash %q (available: %s)",
			name, strings.Join(HasherNames(), ", "),
		)
	}
	return h, nil
}

// HasherNames returns the sorted names accepted by [LookupHasher].
func HasherNames() []string {
	names := make([]string, 0, len(hashers))
	for name := range hashers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
