package settings

import (
	"fmt"
	"strconv"
	"strings"
)

// GSettings schemas for tablet configuration. The tablet and stylus schemas
// are relocatable; one instance exists per device path.
const (
	TabletSchema    = "org.gnome.desktop.peripherals.tablet"
	StylusSchema    = "org.gnome.desktop.peripherals.tablet.stylus"
	PadButtonSchema = "org.gnome.desktop.peripherals.tablet.pad-button"
)

const peripheralsPrefix = "/org/gnome/desktop/peripherals/"

// ConfigPath couples a settings path with the schema bound at that path.
// Paths always end with a trailing slash.
type ConfigPath struct {
	Path   string
	Schema string
}

// Direction is the movement direction of a pad ring or strip.
type Direction string

const (
	Clockwise        Direction = "cw"
	CounterClockwise Direction = "ccw"
	Up               Direction = "up"
	Down             Direction = "down"
)

// ParseDeviceID parses a "vendor:product" tuple of 16-bit hex values, e.g.
// "056a:00bc".
func ParseDeviceID(id string) (vid, pid uint16, err error) {
	lhs, rhs, ok := strings.Cut(id, ":")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q is not a vendor:product tuple", ErrInvalidIdentifier, id)
	}
	v, err := strconv.ParseUint(lhs, 16, 16)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad vendor ID %q", ErrInvalidIdentifier, lhs)
	}
	p, err := strconv.ParseUint(rhs, 16, 16)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad product ID %q", ErrInvalidIdentifier, rhs)
	}
	return uint16(v), uint16(p), nil
}

// TabletPath returns the configuration path for a tablet device.
func TabletPath(vid, pid uint16) ConfigPath {
	return ConfigPath{
		Path:   fmt.Sprintf("%stablets/%04x:%04x/", peripheralsPrefix, vid, pid),
		Schema: TabletSchema,
	}
}

// StylusSerialPath returns the configuration path for a stylus with a unique
// tool serial.
func StylusSerialPath(serial uint64) ConfigPath {
	return ConfigPath{
		Path:   fmt.Sprintf("%sstylus/%x/", peripheralsPrefix, serial),
		Schema: StylusSchema,
	}
}

// StylusDefaultPath returns the configuration path for styli of a tablet
// whose tools carry no unique serial. The "default-" prefix keeps these
// paths disjoint from serial paths.
func StylusDefaultPath(vid, pid uint16) ConfigPath {
	return ConfigPath{
		Path:   fmt.Sprintf("%sstylus/default-%04x:%04x/", peripheralsPrefix, vid, pid),
		Schema: StylusSchema,
	}
}

// ParseStylusID resolves a stylus identifier: either a hex tool serial or,
// for serial-less tools, the tablet's vendor:product tuple.
func ParseStylusID(id string) (ConfigPath, error) {
	if strings.Contains(id, ":") {
		vid, pid, err := ParseDeviceID(id)
		if err != nil {
			return ConfigPath{}, err
		}
		return StylusDefaultPath(vid, pid), nil
	}
	serial, err := strconv.ParseUint(id, 16, 64)
	if err != nil {
		return ConfigPath{}, fmt.Errorf("%w: bad stylus serial %q", ErrInvalidIdentifier, id)
	}
	return StylusSerialPath(serial), nil
}

// RingPath returns the pad-button path for ring movement on a tablet.
// Rings are 1-based (ring 1 is "ringA"), modes are 0-based, direction is
// cw or ccw.
func RingPath(tablet ConfigPath, ring, mode int, dir Direction) (ConfigPath, error) {
	if dir != Clockwise && dir != CounterClockwise {
		return ConfigPath{}, fmt.Errorf("%w: ring direction must be cw or ccw, got %q", ErrInvalidIdentifier, dir)
	}
	letter, err := controlLetter("ring", ring)
	if err != nil {
		return ConfigPath{}, err
	}
	return padControlPath(tablet, fmt.Sprintf("ring%c-%s-mode-%d", letter, dir, mode)), nil
}

// StripPath returns the pad-button path for strip movement on a tablet.
// Strips are 1-based, modes are 0-based, direction is up or down.
func StripPath(tablet ConfigPath, strip, mode int, dir Direction) (ConfigPath, error) {
	if dir != Up && dir != Down {
		return ConfigPath{}, fmt.Errorf("%w: strip direction must be up or down, got %q", ErrInvalidIdentifier, dir)
	}
	letter, err := controlLetter("strip", strip)
	if err != nil {
		return ConfigPath{}, err
	}
	return padControlPath(tablet, fmt.Sprintf("strip%c-%s-mode-%d", letter, dir, mode)), nil
}

// ButtonPath returns the pad-button path for a pad button, identified by a
// single letter A..Z.
func ButtonPath(tablet ConfigPath, button string) (ConfigPath, error) {
	if len(button) != 1 || button[0] < 'A' || button[0] > 'Z' {
		return ConfigPath{}, fmt.Errorf("%w: pad button must be a letter A-Z, got %q", ErrInvalidIdentifier, button)
	}
	return padControlPath(tablet, "button"+button), nil
}

// controlLetter maps a 1-based ring/strip index to its path letter
// (1 -> 'A', 26 -> 'Z').
func controlLetter(kind string, index int) (rune, error) {
	if index < 1 || index > 26 {
		return 0, fmt.Errorf("%w: %s index %d out of range 1-26", ErrInvalidIdentifier, kind, index)
	}
	return rune('A' + index - 1), nil
}

func padControlPath(tablet ConfigPath, subpath string) ConfigPath {
	return ConfigPath{
		Path:   tablet.Path + subpath + "/",
		Schema: PadButtonSchema,
	}
}
