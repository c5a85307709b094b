// Package store abstracts the settings service holding tablet configuration.
//
// The service is a hierarchical, schema-typed key-value store addressed by
// (schema, path, key). Two implementations exist:
//
//   - GSettings runs the host's gsettings(1) tool, the supported way to reach
//     the session settings daemon without cgo bindings.
//   - Memory keeps writes in a map; it backs unit tests and --dry-run.
//
// Schema introspection happens through ListKeys; callers that need the
// graceful unknown-key policy build it on top (see the settings package).
// Store errors are fatal to the calling command.
package store
