package dataset

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/fpeterek/strojove-uceni/internal/model"
)

// Open opens path for reading. Files ending in .gz or .zst are
// decompressed transparently.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("failed to open gzip stream: %w", err)
		}
		return &stackedCloser{Reader: zr, closers: []io.Closer{zr, f}}, nil
	case ".zst", ".zstd":
		zr, err := zstd.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("failed to open zstd stream: %w", err)
		}
		return &stackedCloser{Reader: zr, closers: []io.Closer{closerFunc(zr.Close), f}}, nil
	default:
		return f, nil
	}
}

// Load opens and parses the dataset at path.
func Load(path string) (model.Dataset[int], error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rc.Close()
	}()

	return Parse(rc)
}

// stackedCloser closes a decompressor before the file underneath it.
type stackedCloser struct {
	io.Reader
	closers []io.Closer
}

func (s *stackedCloser) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

type closerFunc func()

func (f closerFunc) Close() error {
	f()
	return nil
}
