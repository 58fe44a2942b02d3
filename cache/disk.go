// SPDX-License-Identifier: MIT
// Package: optgrow/cache
//
// disk.go — persistent directory-backed store.
//
// Layout: one <key>.gob file per entry inside the configured directory,
// created on first Put. Writes stage a temp file in the same directory
// and rename it into place, so readers never observe partial entries
// and racing writers of one key degrade to last-writer-wins.

package cache

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const dirPerm = 0o755

// Dir is a persistent Store rooted at a directory. The zero value is
// not usable; construct with NewDir.
type Dir struct {
	path string
}

// NewDir returns a Store persisting under path. The directory is
// created lazily on the first Put, so constructing a Dir for a
// read-only lookup of a non-existent path is harmless.
func NewDir(path string) *Dir {
	return &Dir{path: path}
}

var _ Store = (*Dir)(nil)

// Get loads the entry for key. An absent file is a miss; any other
// open, read, or decode failure is returned as an error.
func (d *Dir) Get(key Key) ([]float64, bool, error) {
	f, err := os.Open(d.file(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache: open entry %s: %w", key, err)
	}
	defer f.Close()

	var values []float64
	if err = gob.NewDecoder(f).Decode(&values); err != nil {
		return nil, false, fmt.Errorf("cache: decode entry %s: %w", key, err)
	}

	return values, true, nil
}

// Put stores values under key, atomically replacing any prior entry.
func (d *Dir) Put(key Key, values []float64) error {
	if err := os.MkdirAll(d.path, dirPerm); err != nil {
		return fmt.Errorf("cache: create dir %s: %w", d.path, err)
	}

	tmp, err := os.CreateTemp(d.path, string(key)+".tmp-*")
	if err != nil {
		return fmt.Errorf("cache: stage entry %s: %w", key, err)
	}

	if err = gob.NewEncoder(tmp).Encode(values); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return fmt.Errorf("cache: encode entry %s: %w", key, err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmp.Name())

		return fmt.Errorf("cache: flush entry %s: %w", key, err)
	}

	if err = os.Rename(tmp.Name(), d.file(key)); err != nil {
		os.Remove(tmp.Name())

		return fmt.Errorf("cache: publish entry %s: %w", key, err)
	}

	return nil
}

// file maps a key to its on-disk location.
func (d *Dir) file(key Key) string {
	return filepath.Join(d.path, string(key)+".gob")
}
