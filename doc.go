// Package rdgen deterministically expands a seed into
// an arbitrarily long, reproducible stream of pseudorandom bytes.
//
// The seed, whether an in-memory byte slice or an [io.Reader],
// is first reduced to a 64-byte digest (see [SeedDigest]).
// A [Generator] then walks a hash chain starting at that digest:
// each [*Generator.Pull] returns the current state
// and replaces it with the hash of itself.
//
// An [Emitter] wraps a Generator and enforces a [Length],
// trimming the tail of the final block so that
// output for a shorter length is always an exact prefix
// of output for a longer length from the same seed.
//
// The default hash is BLAKE2b-512;
// other 64-byte hashes are available under the rdhash directory.
//
// None of the types in this package are safe for concurrent use.
// Independent values created from the same seed
// share no state and produce identical output.
package rdgen
