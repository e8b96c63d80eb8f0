/*
Package datastore defines the persistence seam for ObjectStore's registry.

The Backend interface moves a full storagemodels.Snapshot in and out of
durable storage:

	type Backend interface {
	    Write(snap storagemodels.Snapshot) error
	    Read() (storagemodels.Snapshot, error)
	}

Implementations:
  - jsonfile: single local JSON file, written via temp-file-then-rename
  - mock: in-memory backend with error injection for testing

The engine never touches files itself; it snapshots its registry and hands
the result to whichever backend it was constructed with.
*/
package datastore
