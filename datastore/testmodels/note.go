/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package testmodels provides entity kinds used by tests across the module.
package testmodels

import (
	"github.com/suparena/objectstore/entity"
	"github.com/suparena/objectstore/registry"
	"github.com/suparena/objectstore/storagemodels"
)

// NoteKind is a sample discriminator exercised by engine and reload tests.
const NoteKind = "Note"

func init() {
	registry.RegisterType(NoteKind, UnmarshalNote)
}

// NewNote constructs a fresh Note entity registered with the given engine.
func NewNote(store entity.Store) *entity.Entity {
	return entity.New(store, entity.WithKind(NoteKind))
}

// UnmarshalNote rebuilds a Note from its stored record.
func UnmarshalNote(rec storagemodels.Record) (*entity.Entity, error) {
	return entity.Reconstruct(rec)
}
