package settings

import (
	"fmt"

	"github.com/gsetwacom/gsetwacom/internal/gvariant"
)

// Action enum codes are declared in the GSettings schemas and are part of
// that contract; they must never be renumbered here.
var (
	padActions = map[string]int32{
		"none":           0,
		"help":           1,
		"switch-monitor": 2,
		"keybinding":     3,
	}

	// stylusActions is the legacy stylus button table.
	stylusActions = map[string]int32{
		"left":    0,
		"middle":  1,
		"right":   2,
		"back":    3,
		"forward": 4,
	}

	// stylusActionsExtended adds the actions introduced by the newer stylus
	// schema revision. Applies only when the bound schema carries the
	// keybinding keys; the tables are never merged implicitly.
	stylusActionsExtended = map[string]int32{
		"left":           0,
		"middle":         1,
		"right":          2,
		"back":           3,
		"forward":        4,
		"switch-monitor": 5,
		"keybinding":     6,
	}
)

// ActionBinding is a validated action assignment for a pad control or stylus
// button. Keybinding is non-empty if and only if the action is "keybinding".
type ActionBinding struct {
	Action     gvariant.Enum
	Keybinding string
}

// PadAction validates and builds an action binding for a pad ring, strip or
// button.
func PadAction(name, keybinding string) (ActionBinding, error) {
	return buildAction(padActions, name, keybinding)
}

// StylusAction validates and builds an action binding for a stylus button.
// The extended flag selects the newer schema's table, which additionally
// allows switch-monitor and keybinding.
func StylusAction(name, keybinding string, extended bool) (ActionBinding, error) {
	table := stylusActions
	if extended {
		table = stylusActionsExtended
	}
	return buildAction(table, name, keybinding)
}

func buildAction(table map[string]int32, name, keybinding string) (ActionBinding, error) {
	code, ok := table[name]
	if !ok {
		return ActionBinding{}, fmt.Errorf("%w: unknown action %q", ErrInvalidArguments, name)
	}
	if name == "keybinding" {
		if keybinding == "" {
			return ActionBinding{}, fmt.Errorf("%w: keybinding must be provided for action keybinding", ErrInvalidArguments)
		}
	} else if keybinding != "" {
		return ActionBinding{}, fmt.Errorf("%w: keybinding is only valid for action keybinding", ErrInvalidArguments)
	}
	return ActionBinding{
		Action:     gvariant.Enum{Nick: name, Code: code},
		Keybinding: keybinding,
	}, nil
}

// TabletMapping returns the tablet mapping-mode enum for absolute or
// relative mode.
func TabletMapping(absolute bool) gvariant.Enum {
	if absolute {
		return gvariant.Enum{Nick: "absolute", Code: 0}
	}
	return gvariant.Enum{Nick: "relative", Code: 1}
}

// DefaultSchemaKeys mirrors the key sets of the current tablet schemas. It
// declares the schemas for the dry-run store and for tests; against the real
// store the key set always comes from schema introspection instead.
func DefaultSchemaKeys() map[string][]string {
	return map[string][]string{
		TabletSchema: {
			"area", "keep-aspect", "left-handed", "mapping", "output",
		},
		StylusSchema: {
			"pressure-curve", "eraser-pressure-curve",
			"pressure-range", "eraser-pressure-range",
			"button-action", "secondary-button-action", "tertiary-button-action",
			"button-keybinding", "secondary-button-keybinding", "tertiary-button-keybinding",
		},
		PadButtonSchema: {
			"action", "keybinding",
		},
	}
}
