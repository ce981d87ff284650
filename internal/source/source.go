// Package source opens model files, decompressing .gz and .zst inputs.
package source

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Compressed reports whether path names a file Open decompresses.
func Compressed(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz", ".zst":
		return true
	}
	return false
}

// Open opens path for reading. Compressed files are decoded on the fly.
// Closing the result releases both the decoder and the file.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("gzip %s: %w", path, err)
		}
		return &reader{Reader: zr, close: zr.Close, file: f}, nil
	case ".zst":
		zr, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("zstd %s: %w", path, err)
		}
		return &reader{Reader: zr, close: func() error { zr.Close(); return nil }, file: f}, nil
	}
	return f, nil
}

type reader struct {
	io.Reader
	close func() error
	file  *os.File
}

func (r *reader) Close() error {
	err := r.close()
	if ferr := r.file.Close(); err == nil {
		err = ferr
	}
	return err
}
