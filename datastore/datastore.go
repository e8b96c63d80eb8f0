/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import "github.com/suparena/objectstore/storagemodels"

// Backend persists the registry snapshot as a whole. A save is always a
// complete replacement of whatever was stored before, never an append or a
// partial update.
type Backend interface {
	// Write durably replaces the stored snapshot.
	Write(snap storagemodels.Snapshot) error

	// Read returns the stored snapshot. A backend with nothing stored yet
	// returns (nil, nil); that is the valid initial state, not an error.
	Read() (storagemodels.Snapshot, error)
}
