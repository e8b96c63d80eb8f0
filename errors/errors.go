/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrInvalidArgument is returned when a caller passes arguments to an
	// operation that accepts none, or supplies an invalid attribute value
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnknownType is returned when a discriminator names a type that was
	// never registered for reconstruction
	ErrUnknownType = errors.New("unknown entity type")

	// ErrDeserialization is returned when the backing file contents are not
	// parseable as a registry snapshot
	ErrDeserialization = errors.New("snapshot not deserializable")

	// ErrStorageIO is returned when the backing file cannot be read or written
	ErrStorageIO = errors.New("storage I/O failure")
)

// InvalidArgumentError reports a misuse of the calling convention
type InvalidArgumentError struct {
	Op     string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("invalid argument for %s: %s", e.Op, e.Reason)
	}
	return fmt.Sprintf("invalid argument: %s", e.Reason)
}

func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// UnknownTypeError reports a discriminator with no registered unmarshal function
type UnknownTypeError struct {
	Name string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("no entity type registered for discriminator %q", e.Name)
}

func (e *UnknownTypeError) Is(target error) bool {
	return target == ErrUnknownType
}

// DeserializationError reports an unparseable backing file
type DeserializationError struct {
	Path string
	Err  error
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("snapshot file %q is not valid: %v", e.Path, e.Err)
}

func (e *DeserializationError) Is(target error) bool {
	return target == ErrDeserialization
}

func (e *DeserializationError) Unwrap() error {
	return e.Err
}

// StorageIOError reports a failed read or write of the backing file.
// It wraps the underlying OS error so callers can still match it
// with errors.Is (for example against fs.ErrPermission).
type StorageIOError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageIOError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Path, e.Err)
}

func (e *StorageIOError) Is(target error) bool {
	return target == ErrStorageIO
}

func (e *StorageIOError) Unwrap() error {
	return e.Err
}

// Helper functions for creating errors

// NewInvalidArgumentError creates a new InvalidArgumentError
func NewInvalidArgumentError(op, reason string) error {
	return &InvalidArgumentError{Op: op, Reason: reason}
}

// NewUnknownTypeError creates a new UnknownTypeError
func NewUnknownTypeError(name string) error {
	return &UnknownTypeError{Name: name}
}

// NewDeserializationError creates a new DeserializationError
func NewDeserializationError(path string, err error) error {
	return &DeserializationError{Path: path, Err: err}
}

// NewStorageIOError creates a new StorageIOError
func NewStorageIOError(op, path string, err error) error {
	return &StorageIOError{Op: op, Path: path, Err: err}
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsUnknownType checks if an error is an unknown type error
func IsUnknownType(err error) bool {
	return errors.Is(err, ErrUnknownType)
}

// IsDeserialization checks if an error is a deserialization error
func IsDeserialization(err error) bool {
	return errors.Is(err, ErrDeserialization)
}

// IsStorageIO checks if an error is a storage I/O error
func IsStorageIO(err error) bool {
	return errors.Is(err, ErrStorageIO)
}
