/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides a mock implementation of the Backend interface for testing
package mock

import (
	"sync"

	"github.com/suparena/objectstore/storagemodels"
)

// Backend is an in-memory implementation of datastore.Backend for testing
type Backend struct {
	mu       sync.RWMutex
	snap     storagemodels.Snapshot
	writeErr error
	readErr  error
	writes   int
}

// New creates a new mock Backend
func New() *Backend {
	return &Backend{}
}

// WithWriteError makes Write operations return an error
func (m *Backend) WithWriteError(err error) *Backend {
	m.writeErr = err
	return m
}

// WithReadError makes Read operations return an error
func (m *Backend) WithReadError(err error) *Backend {
	m.readErr = err
	return m
}

// Write stores an independent copy of the snapshot
func (m *Backend) Write(snap storagemodels.Snapshot) error {
	if m.writeErr != nil {
		return m.writeErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.snap = snap.Clone()
	m.writes++
	return nil
}

// Read returns a copy of the stored snapshot, or (nil, nil) when nothing has
// been written yet
func (m *Backend) Read() (storagemodels.Snapshot, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.snap.Clone(), nil
}

// Helper methods for testing

// SetSnapshot directly seeds the stored snapshot (for testing)
func (m *Backend) SetSnapshot(snap storagemodels.Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snap = snap.Clone()
}

// Snapshot returns a copy of the stored snapshot (for assertions)
func (m *Backend) Snapshot() storagemodels.Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snap.Clone()
}

// Writes returns the number of successful writes
func (m *Backend) Writes() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.writes
}

// Clear removes the stored snapshot
func (m *Backend) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snap = nil
	m.writes = 0
}
