// Package outfile writes rendered fixture files atomically.
//
// The payload is copied into a memory-mapped temporary file in the target
// directory, flushed, and renamed over the destination, so readers see either
// the previous file or the complete new one.
package outfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/edsrzf/mmap-go"
)

// ErrEmptyPath indicates Write was called without a destination.
var ErrEmptyPath = errors.New("outfile: empty path")

// Write atomically replaces path with data. The file mode is 0o644.
func Write(path string, data []byte) (err error) {
	if path == "" {
		return ErrEmptyPath
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("outfile: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if err = fill(tmp, data); err != nil {
		return fmt.Errorf("outfile: %s: %w", tmpName, err)
	}
	if err = tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("outfile: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("outfile: %w", err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("outfile: %w", err)
	}

	return nil
}

// fill sizes f to len(data) and copies data through a read-write mapping.
// A zero-length mapping is invalid, so empty payloads only truncate.
func fill(f *os.File, data []byte) error {
	if err := f.Truncate(int64(len(data))); err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}

	m, err := mmap.Map(f, mmap.RDWR, 0)
	if err != nil {
		return err
	}
	if n := copy(m, data); n != len(data) {
		_ = m.Unmap()
		return fmt.Errorf("short copy: %d of %d bytes", n, len(data))
	}
	if err = m.Flush(); err != nil {
		_ = m.Unmap()
		return err
	}

	return m.Unmap()
}
