// Package rdcli implements the rdgen command:
// it reads a seed from a file or stdin
// and writes the generated stream to stdout.
package rdcli

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/dustin/go-humanize"
	"github.com/gordian-engine/rdgen"
)

// Config holds configuration for a single rdgen run.
type Config struct {
	// Path of the seed file.
	// Empty means the seed is read from stdin.
	File string

	Length rdgen.Length

	// Name of the hash used for the chain; see [LookupHasher].
	Hash string

	// Size of the buffered writer in front of the output.
	BufferSize int

	LogLevel slog.Level
}

// envConfig holds the defaults that may be set through the environment.
// Flags always take precedence.
type envConfig struct {
	Hash       string `env:"RDGEN_HASH" envDefault:"blake2b"`
	BufferSize string `env:"RDGEN_BUFFER_SIZE" envDefault:"64KiB"`
	LogLevel   string `env:"RDGEN_LOG_LEVEL" envDefault:"warn"`
}

const usageHelp = `Pipe some seed into rdgen, specify the length of the output,
to generate deterministic, random data, with any length you need.

Example: echo -n "abc" | rdgen -l 100 | xxd -p -c 0
`

// ParseConfig parses the environment and then args into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	var lengthArg string
	var cfg Config

	fs.StringVar(&lengthArg, "length", "", "length of the output: a byte count such as 100 or 1MiB, or inf (required)")
	fs.StringVar(&lengthArg, "l", "", "shorthand for -length")
	fs.StringVar(&cfg.File, "file", "", "path of the seed file (default: read the seed from stdin)")
	fs.StringVar(&cfg.File, "f", "", "shorthand for -file")
	fs.StringVar(&cfg.Hash, "hash", ec.Hash, "chain hash: "+strings.Join(HasherNames(), ", "))
	bufferArg := fs.String("buffer-size", ec.BufferSize, "size of the output buffer")
	logLevelArg := fs.String("log-level", ec.LogLevel, "log level for messages on stderr")

	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "Usage of %s:\n", fs.Name())
		fs.PrintDefaults()
		fmt.Fprintf(out, "\n%s", usageHelp)
	}

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %q", fs.Args())
	}

	l, err := ParseLength(lengthArg)
	if err != nil {
		return Config{}, err
	}
	cfg.Length = l

	if _, err := LookupHasher(cfg.Hash); err != nil {
		return Config{}, err
	}

	bufSize, err := humanize.ParseBytes(*bufferArg)
	if err != nil {
		return Config{}, fmt.Errorf("parse buffer size: %w", err)
	}
	if bufSize == 0 || bufSize > 1<<30 {
		return Config{}, fmt.Errorf("buffer size must be between 1B and 1GiB (got %s)", *bufferArg)
	}
	cfg.BufferSize = int(bufSize)

	if err := cfg.LogLevel.UnmarshalText([]byte(*logLevelArg)); err != nil {
		return Config{}, fmt.Errorf("parse log level: %w", err)
	}

	return cfg, nil
}

// ParseLength parses a requested output length.
// It accepts a plain byte count, a size with units understood by go-humanize
// (for example 4KiB or 1MB), or one of inf, infinite, and unbounded.
func ParseLength(s string) (rdgen.Length, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "":
		return rdgen.Length{}, errors.New("length is required")
	case "inf", "infinite", "unbounded":
		return rdgen.Unbounded(), nil
	}

	n, err := humanize.ParseBytes(s)
	if err != nil {
		return rdgen.Length{}, fmt.Errorf("parse length %q: %w", s, err)
	}
	return rdgen.Bounded(n), nil
}
