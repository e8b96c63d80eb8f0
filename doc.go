/*
Package objectstore provides a minimal in-process object model with
transparent persistence to a single local JSON file.

Application code creates entities, mutates their attributes and saves them
without writing serialization code; the engine tracks every live instance in
a registry keyed by "<TypeName>.<id>" and flushes the registry to durable
storage as a whole.

Key Features:
  - Base entity with generated identity and a created/updated timestamp
    lifecycle (ISO-8601, millisecond precision)
  - Explicitly constructed storage engine, injected rather than global
  - Whole-registry snapshots written atomically (temp file + rename)
  - Discriminator-driven reconstruction through a type registry
  - Semantic error types for better error handling
  - Mock backend for testing

Basic Usage:

	cfg, _ := config.Load("objectstore.yaml")
	engine := objectstore.NewFromConfig(cfg)
	if err := engine.Reload(); err != nil {
	    log.Fatal(err)
	}

	e := entity.New(engine)
	_ = e.Set("name", "Holberton")
	if err := e.Save(); err != nil {
	    log.Fatal(err)
	}

For more information, see the documentation at https://github.com/suparena/objectstore
*/
package objectstore
