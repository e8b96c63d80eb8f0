/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package jsonfile implements datastore.Backend on a single local JSON file.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/suparena/objectstore/errors"
	"github.com/suparena/objectstore/storagemodels"
)

// Store persists registry snapshots to one JSON file. The file holds a single
// object whose keys are "<TypeName>.<id>" and whose values are each entity's
// record. Writes go to a temp file in the same directory followed by a
// rename, so a failed save leaves the previous contents intact.
type Store struct {
	path string
}

// New constructs a Store for the given file path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Write replaces the backing file with the given snapshot.
func (s *Store) Write(snap storagemodels.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return errors.NewStorageIOError("create temp file for", s.path, err)
	}
	tmpName := tmp.Name()

	_, werr := tmp.Write(data)
	cerr := tmp.Close()
	if werr != nil || cerr != nil {
		os.Remove(tmpName)
		if werr == nil {
			werr = cerr
		}
		return errors.NewStorageIOError("write", s.path, werr)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return errors.NewStorageIOError("replace", s.path, err)
	}
	return nil
}

// Read parses the backing file into a snapshot. A missing file is the valid
// initial state and yields (nil, nil).
func (s *Store) Read() (storagemodels.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.NewStorageIOError("read", s.path, err)
	}

	var snap storagemodels.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, errors.NewDeserializationError(s.path, err)
	}
	return snap, nil
}
