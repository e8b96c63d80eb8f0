/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package objectstore

import (
	"fmt"
	"sync"

	"github.com/suparena/objectstore/config"
	"github.com/suparena/objectstore/datastore"
	"github.com/suparena/objectstore/datastore/jsonfile"
	"github.com/suparena/objectstore/entity"
	"github.com/suparena/objectstore/registry"
	"github.com/suparena/objectstore/storagemodels"
)

func init() {
	registry.RegisterType(entity.DefaultKind, func(rec storagemodels.Record) (*entity.Entity, error) {
		return entity.Reconstruct(rec)
	})
}

// Engine is the storage engine: a registry of every live entity, keyed by
// "<TypeName>.<id>", flushed as a whole to a persistence backend. It is
// constructed explicitly and injected into entity construction; there is no
// implicit process-wide instance.
type Engine struct {
	mu      sync.RWMutex
	objects map[string]*entity.Entity
	backend datastore.Backend
}

// New creates an Engine on the given backend. A nil backend defaults to the
// JSON file backend at the default path.
func New(backend datastore.Backend) *Engine {
	if backend == nil {
		backend = jsonfile.New(config.DefaultFile)
	}
	return &Engine{
		objects: make(map[string]*entity.Entity),
		backend: backend,
	}
}

// NewFromConfig creates an Engine with a JSON file backend at the configured
// path.
func NewFromConfig(cfg config.Config) *Engine {
	return New(jsonfile.New(cfg.Storage.File))
}

// All returns the full registry mapping across all types. The returned map is
// a copy; inserting into it does not register anything.
func (s *Engine) All() map[string]*entity.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]*entity.Entity, len(s.objects))
	for k, e := range s.objects {
		out[k] = e
	}
	return out
}

// Add inserts the entity into the registry under its "<TypeName>.<id>" key,
// overwriting any existing entry, and binds the entity to this engine.
func (s *Engine) Add(e *entity.Entity) {
	if e == nil {
		return
	}
	s.mu.Lock()
	s.objects[e.Key()] = e
	s.mu.Unlock()
	e.Bind(s)
}

// Len returns the number of tracked entities.
func (s *Engine) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}

// Remove drops an entity from the registry. The backing file keeps the entry
// until the next Save.
func (s *Engine) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
}

// Save serializes the entire registry and hands it to the backend, fully
// replacing the prior stored snapshot. Backend failures propagate to the
// caller.
func (s *Engine) Save() error {
	s.mu.RLock()
	snap := make(storagemodels.Snapshot, len(s.objects))
	for key, e := range s.objects {
		rec, err := e.ToRecord()
		if err != nil {
			s.mu.RUnlock()
			return fmt.Errorf("serialize %q: %w", key, err)
		}
		snap[key] = rec
	}
	s.mu.RUnlock()

	if err := s.backend.Write(snap); err != nil {
		return fmt.Errorf("persist registry: %w", err)
	}
	return nil
}

// Reload populates the registry from the backend. Nothing stored yet is a
// no-op. Each stored record is dispatched through the type registry by its
// discriminator, reconstructed, inserted under its original key and bound to
// this engine.
func (s *Engine) Reload() error {
	snap, err := s.backend.Read()
	if err != nil {
		return err
	}
	if snap == nil {
		return nil
	}

	for key, rec := range snap {
		kind, _ := rec[storagemodels.DiscriminatorKey].(string)
		fn, err := registry.GetUnmarshalFunc(kind)
		if err != nil {
			return err
		}
		e, err := fn(rec)
		if err != nil {
			return fmt.Errorf("reconstruct %q: %w", key, err)
		}
		s.mu.Lock()
		s.objects[key] = e
		s.mu.Unlock()
		e.Bind(s)
	}
	return nil
}
