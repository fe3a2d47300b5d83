// Package storage implements the JSON file persistence layer. Each entity
// type lives in one JSON array file inside a single data directory. The
// Store is owned by the application root: repositories read their file once
// at startup through ReadArray and write the full in-memory state back
// through WriteArray when the application flushes on shutdown. There is no
// incremental persistence; a crash loses in-session changes.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store reads and writes JSON array files inside a data directory.
type Store struct {
	dir string
}

// Open returns a Store rooted at dir. The directory must already exist.
func Open(dir string) (*Store, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("open store: %q is not a directory", dir)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the data directory backing this store.
func (s *Store) Dir() string {
	return s.dir
}

// ReadArray decodes the JSON array in file into out, which must be a
// pointer to a slice. A missing file is treated as an empty collection so
// a fresh data directory works without pre-created files.
func (s *Store) ReadArray(file string, out any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, file))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", file, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", file, err)
	}
	return nil
}

// WriteArray serializes v as an indented JSON array and atomically replaces
// file. The write goes through a temp file plus rename so a failure cannot
// leave a half-written database file behind.
func (s *Store) WriteArray(file string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", file, err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(s.dir, file+".tmp-*")
	if err != nil {
		return fmt.Errorf("write %s: %w", file, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", file, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", file, err)
	}
	if err := os.Rename(tmpName, filepath.Join(s.dir, file)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", file, err)
	}
	return nil
}
