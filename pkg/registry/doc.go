// Package registry maps string ids to zero-argument constructors, one table
// per interface type.
//
// Productions publish themselves from their own files, as package-level
// values evaluated during package initialisation:
//
//	var _ = registry.AddProduction[shapes.Shape, Circle]()
//
// so adding a producible type never touches a shared list. The table for an
// interface is created on first use by For, which makes initialisation order
// between packages irrelevant.
//
// A second registration under an existing id overwrites the entry (last write
// wins) and is reported as a Duplicate. With PolicyStrict the registrar
// panics instead, halting startup.
//
// Lookups are safe for concurrent use. Registration is expected to finish
// during initialisation; Seal turns a registry read-only afterwards.
package registry
