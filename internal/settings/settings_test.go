package settings

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/gsetwacom/gsetwacom/internal/gvariant"
	"github.com/gsetwacom/gsetwacom/internal/store"
)

func bindTablet(t *testing.T) (*Settings, *store.Memory, *[]string) {
	t.Helper()
	mem := store.NewMemory(zap.NewNop(), DefaultSchemaKeys())
	s, err := Bind(context.Background(), mem, TabletPath(0x056a, 0x0357), zap.NewNop())
	if err != nil {
		t.Fatalf("Bind() error = %v", err)
	}
	var warned []string
	s.warn = func(key string) { warned = append(warned, key) }
	return s, mem, &warned
}

func TestBind_UnknownSchema(t *testing.T) {
	mem := store.NewMemory(zap.NewNop(), map[string][]string{})
	_, err := Bind(context.Background(), mem, TabletPath(1, 2), zap.NewNop())
	if err == nil {
		t.Fatal("Bind() against missing schema should fail")
	}
}

func TestSettings_HasKey(t *testing.T) {
	s, _, _ := bindTablet(t)

	if !s.HasKey("left-handed") {
		t.Error("HasKey(left-handed) = false, want true")
	}
	if s.HasKey("pressure-curve") {
		t.Error("HasKey(pressure-curve) = true for tablet schema, want false")
	}
}

func TestSettings_SetKnownKey(t *testing.T) {
	s, mem, warned := bindTablet(t)
	ctx := context.Background()

	if err := s.SetBoolean(ctx, "left-handed", true); err != nil {
		t.Fatalf("SetBoolean() error = %v", err)
	}
	if err := s.SetValue(ctx, "area", gvariant.DoubleArray{0, 0, 50, 50}); err != nil {
		t.Fatalf("SetValue() error = %v", err)
	}
	if err := s.SetEnum(ctx, "mapping", TabletMapping(true)); err != nil {
		t.Fatalf("SetEnum() error = %v", err)
	}

	got, err := mem.Get(ctx, s.Schema(), s.Path(), "area")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "[0.0, 0.0, 50.0, 50.0]" {
		t.Errorf("stored area = %v, want [0.0, 0.0, 50.0, 50.0]", got)
	}
	if len(*warned) != 0 {
		t.Errorf("warnings = %v, want none", *warned)
	}
}

// Writes to keys the schema lacks warn and do nothing; the command carries
// on. This keeps new command lines working against older schemas.
func TestSettings_SetUnknownKeyIsNoOp(t *testing.T) {
	s, mem, warned := bindTablet(t)
	ctx := context.Background()

	if err := s.SetBoolean(ctx, "shiny-new-toggle", true); err != nil {
		t.Fatalf("SetBoolean() on unknown key error = %v, want nil", err)
	}
	if err := s.SetString(ctx, "another-new-key", "x"); err != nil {
		t.Fatalf("SetString() on unknown key error = %v, want nil", err)
	}

	if mem.Len() != 0 {
		t.Errorf("store recorded %d writes, want 0", mem.Len())
	}
	if len(*warned) != 2 {
		t.Errorf("warnings = %v, want 2 entries", *warned)
	}
}

func TestSettings_GetUnknownKey(t *testing.T) {
	s, _, warned := bindTablet(t)

	_, err := s.Get(context.Background(), "no-such-key")
	if !errors.Is(err, ErrUnknownKey) {
		t.Errorf("Get() error = %v, want ErrUnknownKey", err)
	}
	if len(*warned) != 1 {
		t.Errorf("warnings = %v, want 1 entry", *warned)
	}
}

func TestSettings_GetRoundTrip(t *testing.T) {
	s, _, _ := bindTablet(t)
	ctx := context.Background()

	if err := s.SetValue(ctx, "output", gvariant.StringArray{"DEL", "U2720Q", "X", "DP-1"}); err != nil {
		t.Fatalf("SetValue() error = %v", err)
	}
	got, err := s.Get(ctx, "output")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "['DEL', 'U2720Q', 'X', 'DP-1']" {
		t.Errorf("Get(output) = %v, want ['DEL', 'U2720Q', 'X', 'DP-1']", got)
	}
}
