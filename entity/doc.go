/*
Package entity defines the base persisted object of ObjectStore.

An Entity owns a unique identity, a creation/update timestamp lifecycle and a
bag of caller-defined attributes. It converts to and from a plain serializable
record (storagemodels.Record) without hand-written serialization code per type.

Fresh construction generates identity and timestamps and registers the entity
with the injected storage engine:

	e := entity.New(engine)
	_ = e.Set("name", "Holberton")
	_ = e.Set("my_number", 98)
	err := e.Save() // bumps updated_at, flushes the whole registry

Reconstruction rebuilds an entity from a stored record without registering it;
the engine's reload path inserts reconstructed entities itself:

	rec, _ := e.ToRecord()
	twin, err := entity.Reconstruct(rec)

Timestamps use strfmt.DateTime and are serialized in ISO-8601 form with
millisecond precision. Identity and created_at are immutable after
construction; updated_at advances on every Save.
*/
package entity
