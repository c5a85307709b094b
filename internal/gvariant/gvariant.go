package gvariant

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is a typed value rendered in GVariant text format, the encoding the
// settings store accepts on its command line.
type Value interface {
	// Text returns the GVariant text representation of the value.
	Text() string
}

// Boolean is a GVariant boolean ("b").
type Boolean bool

// Text implements Value.
func (b Boolean) Text() string {
	if b {
		return "true"
	}
	return "false"
}

// String is a GVariant string ("s").
type String string

// Text implements Value.
func (s String) Text() string {
	return quote(string(s))
}

// Enum is an enumerated schema value addressed by its nick. Code is the
// stable numeric value declared in the schema for that nick; it is carried so
// callers can reason about the schema contract, but the store addresses enum
// values by nick.
type Enum struct {
	Nick string
	Code int32
}

// Text implements Value.
func (e Enum) Text() string {
	return quote(e.Nick)
}

// Int32Array is a GVariant array of 32-bit integers ("ai").
type Int32Array []int32

// Text implements Value.
func (a Int32Array) Text() string {
	parts := make([]string, len(a))
	for i, v := range a {
		parts[i] = strconv.FormatInt(int64(v), 10)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// DoubleArray is a GVariant array of doubles ("ad").
type DoubleArray []float64

// Text implements Value.
//
// Whole numbers are rendered with a trailing ".0" so the text is
// unambiguously a double array.
func (a DoubleArray) Text() string {
	parts := make([]string, len(a))
	for i, v := range a {
		parts[i] = formatDouble(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// StringArray is a GVariant array of strings ("as").
type StringArray []string

// Text implements Value.
func (a StringArray) Text() string {
	parts := make([]string, len(a))
	for i, v := range a {
		parts[i] = quote(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func formatDouble(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// quote renders s as a single-quoted GVariant string literal.
func quote(s string) string {
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\'', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('\'')
	return b.String()
}

// stripAnnotation removes a leading "@<type> " type annotation, which the
// store emits for empty or ambiguous containers (e.g. "@as []").
func stripAnnotation(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "@") {
		if i := strings.IndexByte(text, ' '); i > 0 {
			text = strings.TrimSpace(text[i+1:])
		}
	}
	return text
}

// ParseInt32Array parses the GVariant text form of an "ai" array.
func ParseInt32Array(text string) ([]int32, error) {
	inner, err := arrayBody(text)
	if err != nil {
		return nil, err
	}
	if inner == "" {
		return nil, nil
	}
	parts := strings.Split(inner, ",")
	values := make([]int32, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(p), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid integer array element %q: %w", strings.TrimSpace(p), err)
		}
		values = append(values, int32(n))
	}
	return values, nil
}

// ParseStringArray parses the GVariant text form of an "as" array. Both
// single- and double-quoted elements are accepted.
func ParseStringArray(text string) ([]string, error) {
	inner, err := arrayBody(text)
	if err != nil {
		return nil, err
	}
	var values []string
	i := 0
	for i < len(inner) {
		switch inner[i] {
		case ' ', '\t', ',':
			i++
		case '\'', '"':
			s, next, err := scanQuoted(inner, i)
			if err != nil {
				return nil, err
			}
			values = append(values, s)
			i = next
		default:
			return nil, fmt.Errorf("unexpected character %q in string array", inner[i])
		}
	}
	return values, nil
}

func arrayBody(text string) (string, error) {
	text = stripAnnotation(text)
	if !strings.HasPrefix(text, "[") || !strings.HasSuffix(text, "]") {
		return "", fmt.Errorf("not a GVariant array: %q", text)
	}
	return strings.TrimSpace(text[1 : len(text)-1]), nil
}

// scanQuoted reads one quoted string starting at s[start] and returns the
// unescaped content and the index just past the closing quote.
func scanQuoted(s string, start int) (string, int, error) {
	delim := s[start]
	var b strings.Builder
	i := start + 1
	for i < len(s) {
		c := s[i]
		switch c {
		case '\\':
			if i+1 >= len(s) {
				return "", 0, fmt.Errorf("trailing escape in string literal %q", s)
			}
			b.WriteByte(s[i+1])
			i += 2
		case delim:
			return b.String(), i + 1, nil
		default:
			b.WriteByte(c)
			i++
		}
	}
	return "", 0, fmt.Errorf("unterminated string literal in %q", s)
}
