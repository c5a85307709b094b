// Package monitor matches a partial monitor specifier against the monitors
// the display configuration currently knows about.
//
// A query may set any subset of vendor, product, serial and connector; set
// fields must match exactly, unset fields match anything. Candidates are
// scanned in display-configuration order and the first match wins. A query
// with no fields at all is rejected before matching.
//
// Monitors come either from the compositor's DisplayConfig D-Bus service
// (DisplayConfig) or from a static YAML file (FileSource); both produce the
// same ordered []Spec input for Match.
package monitor
