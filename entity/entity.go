/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package entity

import (
	"fmt"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"

	"github.com/suparena/objectstore/errors"
	"github.com/suparena/objectstore/storagemodels"
)

// DefaultKind is the discriminator used when no concrete kind is set.
const DefaultKind = "Entity"

// Store is the handle an entity keeps to the storage engine it belongs to.
// The engine is constructed explicitly at process start and injected here,
// rather than looked up through package-level state.
type Store interface {
	// Add inserts the entity into the registry under its "<TypeName>.<id>" key.
	Add(e *Entity)
	// Save persists the engine's full registry to durable storage.
	Save() error
}

// Entity is the base persisted object: a unique identity, a creation/update
// timestamp lifecycle, and a bag of caller-defined attributes restricted to
// string, number and bool values.
type Entity struct {
	id        string
	kind      string
	createdAt strfmt.DateTime
	updatedAt strfmt.DateTime
	attrs     map[string]any
	store     Store
}

// Option customizes an entity at construction time.
type Option func(*Entity)

// WithKind sets the discriminator of a freshly constructed entity.
func WithKind(kind string) Option {
	return func(e *Entity) {
		if kind != "" {
			e.kind = kind
		}
	}
}

// New constructs a fresh entity: a generated UUID, created_at equal to
// updated_at, and registration with the given engine. Timestamps are
// truncated to millisecond precision, the resolution the serialized
// ISO-8601 form carries.
func New(store Store, opts ...Option) *Entity {
	ts := now()
	e := &Entity{
		id:        uuid.NewString(),
		kind:      DefaultKind,
		createdAt: ts,
		updatedAt: ts,
		attrs:     make(map[string]any),
		store:     store,
	}
	for _, opt := range opts {
		opt(e)
	}
	if store != nil {
		store.Add(e)
	}
	return e
}

// baseFields is the fixed portion of a stored record.
type baseFields struct {
	ID        string `mapstructure:"id"`
	CreatedAt string `mapstructure:"created_at"`
	UpdatedAt string `mapstructure:"updated_at"`
}

// Reconstruct rebuilds an entity from a stored record. The discriminator
// key is consumed rather than stored as an attribute, and created_at /
// updated_at are parsed from their ISO-8601 string form. A non-empty
// record must not bind any attribute to nil.
//
// Reconstruct does not register the result with any engine; the reload
// path inserts reconstructed entities into the registry separately.
//
// Trailing positional values are accepted and discarded. The original
// calling convention passes the discriminator both positionally and in
// the record; the permissiveness is kept for compatibility, not as a
// recommended style.
func Reconstruct(rec storagemodels.Record, _ ...any) (*Entity, error) {
	e := &Entity{
		kind:  DefaultKind,
		attrs: make(map[string]any),
	}
	if len(rec) == 0 {
		return e, nil
	}

	for k, v := range rec {
		if v == nil {
			return nil, errors.NewInvalidArgumentError("reconstruct", fmt.Sprintf("attribute %q is nil", k))
		}
	}

	work := rec.Clone()
	if raw, ok := work[storagemodels.DiscriminatorKey]; ok {
		kind, ok := raw.(string)
		if !ok {
			return nil, errors.NewInvalidArgumentError("reconstruct", "discriminator must be a string")
		}
		e.kind = kind
		delete(work, storagemodels.DiscriminatorKey)
	}

	var base baseFields
	md := mapstructure.Metadata{}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Metadata: &md,
		Result:   &base,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(map[string]any(work)); err != nil {
		return nil, errors.NewInvalidArgumentError("reconstruct", err.Error())
	}

	e.id = base.ID
	if e.createdAt, err = parseTimestamp(storagemodels.FieldCreatedAt, base.CreatedAt); err != nil {
		return nil, err
	}
	if e.updatedAt, err = parseTimestamp(storagemodels.FieldUpdatedAt, base.UpdatedAt); err != nil {
		return nil, err
	}

	// Decode metadata separates the fixed fields from the extension
	// attributes: whatever the decoder did not consume belongs to the bag.
	for _, k := range md.Unused {
		v := work[k]
		if !storagemodels.ValidAttributeValue(v) {
			return nil, errors.NewInvalidArgumentError("reconstruct",
				fmt.Sprintf("attribute %q must be a string, number or bool", k))
		}
		e.attrs[k] = v
	}
	return e, nil
}

// ID returns the entity's unique identifier.
func (e *Entity) ID() string { return e.id }

// Kind returns the entity's discriminator.
func (e *Entity) Kind() string { return e.kind }

// Key returns the registry key "<TypeName>.<id>".
func (e *Entity) Key() string { return storagemodels.Key(e.kind, e.id) }

// CreatedAt returns the construction timestamp.
func (e *Entity) CreatedAt() strfmt.DateTime { return e.createdAt }

// UpdatedAt returns the timestamp of the last save.
func (e *Entity) UpdatedAt() strfmt.DateTime { return e.updatedAt }

// Bind attaches the entity to a storage engine. The engine calls this when
// the entity is inserted into its registry.
func (e *Entity) Bind(store Store) { e.store = store }

// Set adds or replaces a caller-defined attribute. Names colliding with the
// fixed record fields and values outside the string/number/bool variants are
// rejected.
func (e *Entity) Set(name string, value any) error {
	if name == "" {
		return errors.NewInvalidArgumentError("set", "attribute name must not be empty")
	}
	if storagemodels.Reserved(name) {
		return errors.NewInvalidArgumentError("set", fmt.Sprintf("attribute name %q is reserved", name))
	}
	if !storagemodels.ValidAttributeValue(value) {
		return errors.NewInvalidArgumentError("set",
			fmt.Sprintf("attribute %q must be a string, number or bool", name))
	}
	e.attrs[name] = value
	return nil
}

// Get returns a caller-defined attribute.
func (e *Entity) Get(name string) (any, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// Attributes returns a copy of the caller-defined attribute bag.
func (e *Entity) Attributes() map[string]any {
	out := make(map[string]any, len(e.attrs))
	for k, v := range e.attrs {
		out[k] = v
	}
	return out
}

// Save advances updated_at to the current time and asks the bound engine to
// persist its full registry. The operation takes no arguments; any extra
// value fails with an invalid argument error, preserving the original
// contract.
func (e *Entity) Save(extra ...any) error {
	if len(extra) > 0 {
		return errors.NewInvalidArgumentError("save", "takes no arguments")
	}
	if e.store == nil {
		return errors.NewInvalidArgumentError("save", "entity is not bound to a storage engine")
	}
	e.updatedAt = now()
	return e.store.Save()
}

// ToRecord converts the entity to its serializable record: every attribute
// plus the discriminator, with timestamps rendered as ISO-8601 strings. The
// returned mapping is independent of the entity's internal state. Like Save,
// the operation takes no arguments.
func (e *Entity) ToRecord(extra ...any) (storagemodels.Record, error) {
	if len(extra) > 0 {
		return nil, errors.NewInvalidArgumentError("to record", "takes no arguments")
	}
	rec := storagemodels.Record{
		storagemodels.FieldID:          e.id,
		storagemodels.FieldCreatedAt:   e.createdAt.String(),
		storagemodels.FieldUpdatedAt:   e.updatedAt.String(),
		storagemodels.DiscriminatorKey: e.kind,
	}
	for k, v := range e.attrs {
		rec[k] = v
	}
	return rec, nil
}

// String renders the entity as "[<TypeName>] (<id>) <state>", where state is
// the raw internal attribute mapping with native timestamp values. Go prints
// map keys in sorted order, so the rendering is reproducible.
func (e *Entity) String() string {
	state := map[string]any{
		storagemodels.FieldID:        e.id,
		storagemodels.FieldCreatedAt: e.createdAt,
		storagemodels.FieldUpdatedAt: e.updatedAt,
	}
	for k, v := range e.attrs {
		state[k] = v
	}
	return fmt.Sprintf("[%s] (%s) %v", e.kind, e.id, state)
}

func parseTimestamp(field, value string) (strfmt.DateTime, error) {
	if value == "" {
		return strfmt.DateTime{}, nil
	}
	dt, err := strfmt.ParseDateTime(value)
	if err != nil {
		return strfmt.DateTime{}, errors.NewInvalidArgumentError("reconstruct",
			fmt.Sprintf("%s: %v", field, err))
	}
	return dt, nil
}

// now returns the current time truncated to the millisecond resolution the
// marshaled form carries, so a serialize/reconstruct round trip reproduces
// identical timestamps.
func now() strfmt.DateTime {
	return strfmt.DateTime(time.Now().UTC().Truncate(time.Millisecond))
}
