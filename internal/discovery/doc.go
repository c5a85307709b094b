// Package discovery enumerates tablet hardware known to the local system.
//
// Tablets come from the udev database: the enumerator walks the event
// devices under /sys/class/input and classifies each one by its udev input
// properties (ID_INPUT_TABLET, ID_INPUT_TABLET_PAD, ID_INPUT_TOUCHPAD).
// Styli with unique serials come from the control center's cache file, since
// the kernel only reports a stylus while it is in proximity.
//
// Both sources are read-only and advisory: a device listed here may not be
// present in the compositor, and configuration can be written for devices
// that are not currently attached.
package discovery
