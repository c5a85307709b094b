// Package settings resolves tablet, stylus and pad-control identifiers to
// GSettings locations and performs schema-guarded reads and writes there.
//
// # Path resolution
//
// Every device kind maps to a deterministic path under
// /org/gnome/desktop/peripherals/ plus the relocatable schema bound there:
//
//	tablet 056a:0357       -> tablets/056a:0357/              (tablet schema)
//	stylus serial 99800b93 -> stylus/99800b93/                (stylus schema)
//	serial-less stylus     -> stylus/default-056a:0357/       (stylus schema)
//	ring 1 cw mode 0       -> <tablet>/ringA-cw-mode-0/       (pad-button schema)
//	strip 2 down mode 1    -> <tablet>/stripB-down-mode-1/    (pad-button schema)
//	pad button C           -> <tablet>/buttonC/               (pad-button schema)
//
// Vendor and product IDs are zero-padded lowercase hex in paths. Malformed
// identifiers and ring/strip indexes outside 1-26 fail with
// ErrInvalidIdentifier before any store access.
//
// # Schema guarding
//
// Bind loads the schema's key set once and every accessor checks membership
// first. Schemas evolve across desktop versions; writing a key the installed
// schema lacks prints a warning and does nothing rather than failing the
// whole command.
//
// # Action tables
//
// PadAction and StylusAction validate the action/keybinding co-requirement
// and map symbolic action names to the enum codes declared in the schemas.
// Two stylus tables exist because the schema grew switch-monitor and
// keybinding actions in a later revision; callers select the table matching
// the bound schema version (see the stylus set-button-action command).
package settings
