package rdcli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/gordian-engine/rdgen"
)

// Run digests the seed from cfg.File, or from stdin when no file is set,
// and writes the generated stream to out.
//
// An unbounded stream is written until ctx is canceled or out fails.
func Run(ctx context.Context, log *slog.Logger, cfg Config, stdin io.Reader, out io.Writer) error {
	if out == nil {
		return errors.New("output is required")
	}
	if cfg.BufferSize <= 0 {
		panic(fmt.Errorf(
			"BUG: BufferSize must be positive (got %d)", cfg.BufferSize,
		))
	}

	h, err := LookupHasher(cfg.Hash)
	if err != nil {
		return err
	}

	src := stdin
	srcName := "stdin"
	if cfg.File != "" {
		f, err := openSeedFile(cfg.File)
		if err != nil {
			return err
		}
		defer f.Close()

		src = f
		srcName = cfg.File
	}
	if src == nil {
		return errors.New("seed source is required")
	}

	g, err := rdgen.NewHashGeneratorFromStream(h, src)
	if err != nil {
		return fmt.Errorf("digest seed from %s: %w", srcName, err)
	}

	log.Debug(
		"Digested seed",
		"source", srcName,
		"hash", cfg.Hash,
		"length", cfg.Length,
	)

	e := rdgen.NewEmitter(g, cfg.Length)

	w := bufio.NewWriterSize(out, cfg.BufferSize)
	n, err := writeStream(ctx, e, w)
	if err == nil {
		err = w.Flush()
	}
	if err != nil {
		return fmt.Errorf("write output after %d bytes: %w", n, err)
	}

	log.Info(
		"Finished writing output",
		"bytes", n,
		"size", humanize.IBytes(n),
	)

	return nil
}

// writeStream writes every pull from e to w,
// checking ctx between pulls.
func writeStream(ctx context.Context, e *rdgen.Emitter, w io.Writer) (uint64, error) {
	var n uint64
	for {
		if err := context.Cause(ctx); err != nil {
			return n, fmt.Errorf("interrupted: %w", err)
		}

		data, ok := e.Next()
		if !ok {
			return n, nil
		}

		nn, err := w.Write(data)
		n += uint64(nn)
		if err != nil {
			return n, err
		}
	}
}

// openSeedFile opens path for reading,
// reporting missing files and non-regular files explicitly.
func openSeedFile(path string) (*os.File, error) {
	fi, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("file not found: %s", path)
		}
		return nil, fmt.Errorf("stat seed file %s: %w", path, err)
	}
	if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("path is not a file or unreadable: %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file %s: %w", path, err)
	}
	return f, nil
}
