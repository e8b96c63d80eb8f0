/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import "fmt"

// DiscriminatorKey is the record field naming the concrete entity type.
// It is both the reconstruction dispatch key and part of the registry key.
const DiscriminatorKey = "__type__"

// Fixed record fields every entity carries.
const (
	FieldID        = "id"
	FieldCreatedAt = "created_at"
	FieldUpdatedAt = "updated_at"
)

// Record is the serializable attribute mapping of a single entity:
// the fixed fields (timestamps rendered as ISO-8601 strings), the
// discriminator, and every caller-defined attribute.
type Record map[string]any

// Snapshot is the serialized form of the whole registry, keyed by
// "<TypeName>.<id>".
type Snapshot map[string]Record

// Key composes the registry key for a type name and id.
func Key(kind, id string) string {
	return fmt.Sprintf("%s.%s", kind, id)
}

// Reserved reports whether a field name is part of the fixed record
// layout and therefore not usable as a caller-defined attribute.
func Reserved(name string) bool {
	switch name {
	case FieldID, FieldCreatedAt, FieldUpdatedAt, DiscriminatorKey:
		return true
	}
	return false
}

// ValidAttributeValue reports whether v is a supported attribute variant.
// Caller-defined attributes are restricted to strings, numbers and bools
// so every record survives a JSON round trip unchanged.
func ValidAttributeValue(v any) bool {
	switch v.(type) {
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	return false
}

// Clone returns an independent copy of the record.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Clone returns an independent copy of the snapshot. Records are cloned
// too, so mutating the copy never touches the original.
func (s Snapshot) Clone() Snapshot {
	if s == nil {
		return nil
	}
	out := make(Snapshot, len(s))
	for k, r := range s {
		out[k] = r.Clone()
	}
	return out
}
