package settings

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/gsetwacom/gsetwacom/internal/gvariant"
	"github.com/gsetwacom/gsetwacom/internal/store"
	"github.com/gsetwacom/gsetwacom/internal/ui"
)

// Settings is a live binding of one (schema, path) pair to the store for the
// duration of a command. The schema's key set is loaded once at bind time and
// guards every read and write: keys absent from the schema degrade to a
// warning and a no-op, so a command line written for a newer schema still
// works against an older one.
type Settings struct {
	cp    ConfigPath
	store store.Store
	log   *zap.Logger
	keys  map[string]bool

	// warn reports an unknown-key no-op. Overridable in tests.
	warn func(key string)
}

// Bind loads the schema key set for cp and returns the live binding.
// A store that cannot list the schema is a fatal error.
func Bind(ctx context.Context, st store.Store, cp ConfigPath, log *zap.Logger) (*Settings, error) {
	keys, err := st.ListKeys(ctx, cp.Schema)
	if err != nil {
		return nil, fmt.Errorf("failed to introspect schema %s: %w", cp.Schema, err)
	}
	known := make(map[string]bool, len(keys))
	for _, k := range keys {
		known[k] = true
	}
	log.Debug("bound settings",
		zap.String("schema", cp.Schema),
		zap.String("path", cp.Path),
		zap.Int("keys", len(known)),
	)
	return &Settings{
		cp:    cp,
		store: st,
		log:   log,
		keys:  known,
		warn: func(key string) {
			ui.Warningf("%s does not exist in the schema, ignoring", key)
		},
	}, nil
}

// Path returns the bound settings path.
func (s *Settings) Path() string { return s.cp.Path }

// Schema returns the bound schema identifier.
func (s *Settings) Schema() string { return s.cp.Schema }

// HasKey reports whether the bound schema declares key.
func (s *Settings) HasKey(key string) bool {
	return s.keys[key]
}

// Get returns the value of key in GVariant text form. Keys absent from the
// schema return ErrUnknownKey after emitting the usual warning.
func (s *Settings) Get(ctx context.Context, key string) (string, error) {
	if !s.HasKey(key) {
		s.warn(key)
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return s.store.Get(ctx, s.cp.Schema, s.cp.Path, key)
}

// SetValue writes a structured value to key. Unknown keys warn and no-op.
func (s *Settings) SetValue(ctx context.Context, key string, value gvariant.Value) error {
	return s.set(ctx, key, value)
}

// SetString writes a string value to key. Unknown keys warn and no-op.
func (s *Settings) SetString(ctx context.Context, key, value string) error {
	return s.set(ctx, key, gvariant.String(value))
}

// SetBoolean writes a boolean value to key. Unknown keys warn and no-op.
func (s *Settings) SetBoolean(ctx context.Context, key string, value bool) error {
	return s.set(ctx, key, gvariant.Boolean(value))
}

// SetEnum writes an enumerated value to key. Unknown keys warn and no-op.
func (s *Settings) SetEnum(ctx context.Context, key string, value gvariant.Enum) error {
	return s.set(ctx, key, value)
}

func (s *Settings) set(ctx context.Context, key string, value gvariant.Value) error {
	if !s.HasKey(key) {
		s.warn(key)
		return nil
	}
	if err := s.store.Set(ctx, s.cp.Schema, s.cp.Path, key, value); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
