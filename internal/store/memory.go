package store

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/gsetwacom/gsetwacom/internal/gvariant"
)

// Memory is an in-memory Store with declared schema key sets. It backs tests
// and the --dry-run mode, where writes are recorded and logged but never
// reach the real settings daemon.
type Memory struct {
	schemas map[string][]string
	values  map[string]string
	log     *zap.Logger
}

// NewMemory returns a Memory store declaring the given schema -> keys sets.
func NewMemory(log *zap.Logger, schemas map[string][]string) *Memory {
	return &Memory{
		schemas: schemas,
		values:  make(map[string]string),
		log:     log,
	}
}

// ListKeys implements Store.
func (m *Memory) ListKeys(_ context.Context, schema string) ([]string, error) {
	keys, ok := m.schemas[schema]
	if !ok {
		return nil, fmt.Errorf("no such schema %q", schema)
	}
	out := make([]string, len(keys))
	copy(out, keys)
	sort.Strings(out)
	return out, nil
}

// Get implements Store. Keys that have never been written read back empty.
func (m *Memory) Get(_ context.Context, schema, path, key string) (string, error) {
	if err := m.checkKey(schema, key); err != nil {
		return "", err
	}
	return m.values[valueKey(schema, path, key)], nil
}

// Set implements Store.
func (m *Memory) Set(_ context.Context, schema, path, key string, value gvariant.Value) error {
	if err := m.checkKey(schema, key); err != nil {
		return err
	}
	m.log.Info("recording write (not applied)",
		zap.String("schema", schema),
		zap.String("path", path),
		zap.String("key", key),
		zap.String("value", value.Text()),
	)
	m.values[valueKey(schema, path, key)] = value.Text()
	return nil
}

// Len returns the number of recorded writes.
func (m *Memory) Len() int {
	return len(m.values)
}

func (m *Memory) checkKey(schema, key string) error {
	keys, ok := m.schemas[schema]
	if !ok {
		return fmt.Errorf("no such schema %q", schema)
	}
	for _, k := range keys {
		if k == key {
			return nil
		}
	}
	return fmt.Errorf("no such key %q in schema %q", key, schema)
}

func valueKey(schema, path, key string) string {
	return schema + ":" + path + ":" + key
}
