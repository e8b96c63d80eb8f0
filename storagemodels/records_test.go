/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import "testing"

func TestKey(t *testing.T) {
	if got := Key("Entity", "123456"); got != "Entity.123456" {
		t.Errorf("Expected key %q, got %q", "Entity.123456", got)
	}
}

func TestReserved(t *testing.T) {
	for _, name := range []string{FieldID, FieldCreatedAt, FieldUpdatedAt, DiscriminatorKey} {
		if !Reserved(name) {
			t.Errorf("%q should be reserved", name)
		}
	}
	if Reserved("name") {
		t.Error(`"name" should not be reserved`)
	}
}

func TestValidAttributeValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
		valid bool
	}{
		{"string", "Holberton", true},
		{"bool", true, true},
		{"int", 98, true},
		{"int64", int64(98), true},
		{"float64", 98.5, true},
		{"nil", nil, false},
		{"map", map[string]any{}, false},
		{"slice", []string{"a"}, false},
		{"struct", struct{}{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidAttributeValue(tt.value); got != tt.valid {
				t.Errorf("ValidAttributeValue(%v) = %v, want %v", tt.value, got, tt.valid)
			}
		})
	}
}

func TestRecordClone(t *testing.T) {
	rec := Record{"id": "1", "name": "a"}
	cp := rec.Clone()

	cp["name"] = "b"
	if rec["name"] != "a" {
		t.Error("Mutating the clone should not touch the original")
	}

	if Record(nil).Clone() != nil {
		t.Error("Cloning a nil record should return nil")
	}
}

func TestSnapshotClone(t *testing.T) {
	snap := Snapshot{"Entity.1": {"id": "1"}}
	cp := snap.Clone()

	cp["Entity.1"]["id"] = "2"
	if snap["Entity.1"]["id"] != "1" {
		t.Error("Mutating a cloned record should not touch the original snapshot")
	}
}
