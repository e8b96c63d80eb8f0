/*
Package errors provides semantic error types for the ObjectStore library.

The package defines common error scenarios with specific types that can be
checked using the standard errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrInvalidArgument = errors.New("invalid argument")
	    ErrUnknownType     = errors.New("unknown entity type")
	    ErrDeserialization = errors.New("snapshot not deserializable")
	    ErrStorageIO       = errors.New("storage I/O failure")
	)

Usage:

	// Check error type
	err := engine.Reload()
	if err != nil {
	    if errors.IsUnknownType(err) {
	        // A stored discriminator has no registered unmarshal function
	        return fmt.Errorf("stale snapshot: %w", err)
	    }
	    return err
	}

	// Create typed errors
	err := errors.NewInvalidArgumentError("save", "takes no arguments")
	err := errors.NewUnknownTypeError("Ghost")
	err := errors.NewStorageIOError("write", "file.json", osErr)

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
StorageIOError and DeserializationError also unwrap to the underlying
cause, so the original OS or parse error stays matchable.
*/
package errors
