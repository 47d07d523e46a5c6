// Package types provides the host-neutral structured value model, shared
// errors, and the Logger and MetricsCollector interfaces for cqlstream.
//
// This is a "leaf" package with no imports from other cqlstream packages,
// allowing it to be imported by any package without causing import cycles.
//
// The central type is Value, a tagged union covering every shape a converted
// CQL column can take: primitives (with preserved bit widths), binary blobs,
// temporal values, and recursively nested collections, tuples, and records.
// Records preserve column order and have a fixed key set per query.
package types
