// Package gvariant renders typed values in GVariant text format and parses
// them back.
//
// GVariant text is the native value encoding of the GSettings command line:
// writes pass a serialized value and reads return one. This package covers
// exactly the types the tablet schemas use: booleans, strings, enum nicks,
// and arrays of int32 ("ai"), double ("ad") and string ("as").
//
// # Encoding
//
//	gvariant.Int32Array{0, 0, 100, 100}.Text()            // "[0, 0, 100, 100]"
//	gvariant.DoubleArray{0, 0, 50, 50}.Text()             // "[0.0, 0.0, 50.0, 50.0]"
//	gvariant.StringArray{"DEL", "U2720Q"}.Text()          // "['DEL', 'U2720Q']"
//	gvariant.Enum{Nick: "switch-monitor", Code: 2}.Text() // "'switch-monitor'"
//
// Numeric values are encoded verbatim; range constraints (such as the [0,100]
// bounds on pressure curves) are documented at the command layer and not
// enforced here.
//
// # Decoding
//
// ParseInt32Array and ParseStringArray accept the text the store prints,
// including a leading "@ai"/"@as" type annotation on empty containers.
package gvariant
