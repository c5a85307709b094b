package store

import (
	"context"

	"github.com/gsetwacom/gsetwacom/internal/gvariant"
)

// Store is the hierarchical, schema-typed key-value service holding tablet
// configuration. Values cross the interface in GVariant text form.
type Store interface {
	// ListKeys returns the set of keys declared by a schema.
	ListKeys(ctx context.Context, schema string) ([]string, error)

	// Get returns the current value of key at path in GVariant text form.
	Get(ctx context.Context, schema, path, key string) (string, error)

	// Set writes a value for key at path. Each call is an independent unit
	// of mutation; there is no batching or rollback.
	Set(ctx context.Context, schema, path, key string, value gvariant.Value) error
}
