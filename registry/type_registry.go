/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"sync"

	"github.com/suparena/objectstore/entity"
	"github.com/suparena/objectstore/errors"
	"github.com/suparena/objectstore/storagemodels"
)

// UnmarshalFunc defines a function that takes a stored record and returns the
// reconstructed entity.
type UnmarshalFunc func(rec storagemodels.Record) (*entity.Entity, error)

var (
	mu sync.RWMutex

	// typeRegistry holds the mapping from a discriminator (like "Entity" or
	// "Note") to its unmarshal function.
	typeRegistry = make(map[string]UnmarshalFunc)
)

// RegisterType registers an unmarshal function for a given discriminator.
// If a type is already registered for the given discriminator, it panics to
// prevent accidental overrides.
func RegisterType(name string, fn UnmarshalFunc) {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := typeRegistry[name]; exists {
		panic(fmt.Sprintf("type registry: type %q already registered", name))
	}
	typeRegistry[name] = fn
}

// GetUnmarshalFunc returns the registered unmarshal function for the given
// discriminator. If no function is registered, it returns an unknown type
// error.
func GetUnmarshalFunc(name string) (UnmarshalFunc, error) {
	mu.RLock()
	defer mu.RUnlock()
	fn, ok := typeRegistry[name]
	if !ok {
		return nil, errors.NewUnknownTypeError(name)
	}
	return fn, nil
}

// RegisteredTypes returns the discriminators known to the registry.
func RegisteredTypes() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(typeRegistry))
	for name := range typeRegistry {
		names = append(names, name)
	}
	return names
}
