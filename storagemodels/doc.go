/*
Package storagemodels defines the data structures used throughout ObjectStore.

Key Types:

Record:
The serialized attribute mapping of a single entity:

	rec := storagemodels.Record{
	    "id":         "c1d2...",
	    "created_at": "2025-03-01T10:15:00.000Z",
	    "updated_at": "2025-03-01T10:15:00.000Z",
	    "__type__":   "Entity",
	    "name":       "Holberton",
	}

Snapshot:
The serialized form of the whole registry, keyed by "<TypeName>.<id>":

	snap := storagemodels.Snapshot{
	    "Entity.c1d2...": rec,
	}

The discriminator field ("__type__") names the concrete type for
reconstruction; the same name prefixes the registry key. Caller-defined
attributes are restricted to the string/number/bool variants accepted by
ValidAttributeValue, which keeps a record stable across JSON round trips.

These types provide a consistent interface between the engine, the
persistence backends and the type registry.
*/
package storagemodels
