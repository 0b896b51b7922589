package rdgen

// DataStreamError is returned from [SeedDigest] and the stream constructors
// when reading the seed source fails.
//
// The position of the source after a failed read is unspecified,
// so the read is never retried.
type DataStreamError struct {
	Err error
}

func (e DataStreamError) Error() string {
	return "error while reading data stream: " + e.Err.Error()
}

func (e DataStreamError) Unwrap() error {
	return e.Err
}
