/*
Package registry manages type registration for ObjectStore reconstruction.

The registry maps a discriminator string to the unmarshal function that
rebuilds an entity of that type from its stored record:

	registry.RegisterType("Note", func(rec storagemodels.Record) (*entity.Entity, error) {
	    return entity.Reconstruct(rec)
	})

The engine's reload path reads the discriminator out of each stored record,
looks up the unmarshal function here and inserts the reconstructed entity
back into its registry under the same "<TypeName>.<id>" key. A discriminator
with no registered function fails reload with an unknown type error.

The registry is thread-safe and should be populated during initialization,
typically in init() functions of the packages that define entity kinds.
*/
package registry
