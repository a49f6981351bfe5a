package lexicon

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// OpenSource opens a dictionary file for reading. Files ending in .gz,
// .zst/.zstd or .lz4 are decompressed on the fly. Failures wrap
// ErrMissingSource.
func OpenSource(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingSource, err)
	}

	switch compression(path) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("%w: gzip %s: %w", ErrMissingSource, path, err)
		}
		return &stackedReader{Reader: zr, closers: []io.Closer{zr, f}}, nil
	case ".zst", ".zstd":
		dec, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("%w: zstd %s: %w", ErrMissingSource, path, err)
		}
		return &stackedReader{Reader: dec, closers: []io.Closer{dec.IOReadCloser(), f}}, nil
	case ".lz4":
		return &stackedReader{Reader: lz4.NewReader(f), closers: []io.Closer{f}}, nil
	}
	return f, nil
}

func compression(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// isYAML looks through a compression suffix, so lexicon.yaml.gz counts.
func isYAML(path string) bool {
	switch compression(path) {
	case ".gz", ".zst", ".zstd", ".lz4":
		path = strings.TrimSuffix(path, filepath.Ext(path))
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// stackedReader closes a decompressor and the file beneath it.
type stackedReader struct {
	io.Reader
	closers []io.Closer
}

func (s *stackedReader) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
