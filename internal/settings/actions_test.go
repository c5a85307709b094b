package settings

import (
	"errors"
	"testing"
)

func TestPadAction_Codes(t *testing.T) {
	tests := []struct {
		action string
		code   int32
	}{
		{"none", 0},
		{"help", 1},
		{"switch-monitor", 2},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			b, err := PadAction(tt.action, "")
			if err != nil {
				t.Fatalf("PadAction(%q) error = %v", tt.action, err)
			}
			if b.Action.Nick != tt.action || b.Action.Code != tt.code {
				t.Errorf("PadAction(%q) = %v/%d, want %v/%d", tt.action, b.Action.Nick, b.Action.Code, tt.action, tt.code)
			}
			if b.Keybinding != "" {
				t.Errorf("PadAction(%q).Keybinding = %q, want empty", tt.action, b.Keybinding)
			}
		})
	}
}

func TestPadAction_KeybindingCoRequirement(t *testing.T) {
	b, err := PadAction("keybinding", "<Alt>1")
	if err != nil {
		t.Fatalf("PadAction(keybinding, <Alt>1) error = %v", err)
	}
	if b.Action.Code != 3 || b.Keybinding != "<Alt>1" {
		t.Errorf("PadAction(keybinding) = %+v, want code 3 with keybinding", b)
	}

	if _, err := PadAction("keybinding", ""); !errors.Is(err, ErrInvalidArguments) {
		t.Errorf("PadAction(keybinding, none) error = %v, want ErrInvalidArguments", err)
	}
	if _, err := PadAction("none", "x"); !errors.Is(err, ErrInvalidArguments) {
		t.Errorf("PadAction(none, x) error = %v, want ErrInvalidArguments", err)
	}
	if _, err := PadAction("reboot", ""); !errors.Is(err, ErrInvalidArguments) {
		t.Errorf("PadAction(reboot) error = %v, want ErrInvalidArguments", err)
	}
}

func TestStylusAction_LegacyTable(t *testing.T) {
	tests := []struct {
		action string
		code   int32
	}{
		{"left", 0},
		{"middle", 1},
		{"right", 2},
		{"back", 3},
		{"forward", 4},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			b, err := StylusAction(tt.action, "", false)
			if err != nil {
				t.Fatalf("StylusAction(%q) error = %v", tt.action, err)
			}
			if b.Action.Code != tt.code {
				t.Errorf("StylusAction(%q).Code = %d, want %d", tt.action, b.Action.Code, tt.code)
			}
		})
	}

	// The legacy schema has no switch-monitor or keybinding actions; they
	// must be rejected, not silently mapped.
	if _, err := StylusAction("switch-monitor", "", false); !errors.Is(err, ErrInvalidArguments) {
		t.Errorf("legacy StylusAction(switch-monitor) error = %v, want ErrInvalidArguments", err)
	}
	if _, err := StylusAction("keybinding", "<Alt>1", false); !errors.Is(err, ErrInvalidArguments) {
		t.Errorf("legacy StylusAction(keybinding) error = %v, want ErrInvalidArguments", err)
	}
}

func TestStylusAction_ExtendedTable(t *testing.T) {
	b, err := StylusAction("switch-monitor", "", true)
	if err != nil {
		t.Fatalf("StylusAction(switch-monitor, extended) error = %v", err)
	}
	if b.Action.Code != 5 {
		t.Errorf("extended switch-monitor code = %d, want 5", b.Action.Code)
	}

	b, err = StylusAction("keybinding", "<Super>k", true)
	if err != nil {
		t.Fatalf("StylusAction(keybinding, extended) error = %v", err)
	}
	if b.Action.Code != 6 || b.Keybinding != "<Super>k" {
		t.Errorf("extended keybinding = %+v, want code 6 with keybinding", b)
	}

	// Legacy codes are identical across revisions.
	b, err = StylusAction("forward", "", true)
	if err != nil {
		t.Fatalf("StylusAction(forward, extended) error = %v", err)
	}
	if b.Action.Code != 4 {
		t.Errorf("extended forward code = %d, want 4", b.Action.Code)
	}

	if _, err := StylusAction("keybinding", "", true); !errors.Is(err, ErrInvalidArguments) {
		t.Errorf("extended StylusAction(keybinding, none) error = %v, want ErrInvalidArguments", err)
	}
}

func TestTabletMapping(t *testing.T) {
	if m := TabletMapping(true); m.Nick != "absolute" || m.Code != 0 {
		t.Errorf("TabletMapping(true) = %+v, want absolute/0", m)
	}
	if m := TabletMapping(false); m.Nick != "relative" || m.Code != 1 {
		t.Errorf("TabletMapping(false) = %+v, want relative/1", m)
	}
}
