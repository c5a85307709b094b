package gvariant

import (
	"reflect"
	"testing"
)

func TestBoolean_Text(t *testing.T) {
	if got := Boolean(true).Text(); got != "true" {
		t.Errorf("Boolean(true).Text() = %v, want true", got)
	}
	if got := Boolean(false).Text(); got != "false" {
		t.Errorf("Boolean(false).Text() = %v, want false", got)
	}
}

func TestString_Text(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{"plain", "Alt+1", "'Alt+1'"},
		{"empty", "", "''"},
		{"embedded quote", "it's", `'it\'s'`},
		{"backslash", `a\b`, `'a\\b'`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := String(tt.in).Text(); got != tt.expected {
				t.Errorf("String(%q).Text() = %v, want %v", tt.in, got, tt.expected)
			}
		})
	}
}

func TestEnum_Text(t *testing.T) {
	e := Enum{Nick: "switch-monitor", Code: 2}
	if got := e.Text(); got != "'switch-monitor'" {
		t.Errorf("Enum.Text() = %v, want 'switch-monitor'", got)
	}
}

func TestInt32Array_Text(t *testing.T) {
	tests := []struct {
		name     string
		in       Int32Array
		expected string
	}{
		{"curve", Int32Array{0, 0, 100, 100}, "[0, 0, 100, 100]"},
		{"range", Int32Array{20, 80}, "[20, 80]"},
		{"negative", Int32Array{-5, 150}, "[-5, 150]"},
		{"empty", Int32Array{}, "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Text(); got != tt.expected {
				t.Errorf("Int32Array.Text() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestDoubleArray_Text(t *testing.T) {
	tests := []struct {
		name     string
		in       DoubleArray
		expected string
	}{
		{"whole numbers get a decimal point", DoubleArray{0, 0, 100, 100}, "[0.0, 0.0, 100.0, 100.0]"},
		{"fractions preserved", DoubleArray{12.5, 87.25}, "[12.5, 87.25]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Text(); got != tt.expected {
				t.Errorf("DoubleArray.Text() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestStringArray_Text(t *testing.T) {
	a := StringArray{"DEL", "DELL U2720Q", "ABC123", "DP-1"}
	expected := "['DEL', 'DELL U2720Q', 'ABC123', 'DP-1']"
	if got := a.Text(); got != expected {
		t.Errorf("StringArray.Text() = %v, want %v", got, expected)
	}
}

// The codec preserves curve integers exactly, including values outside the
// documented [0,100] range. Bounds are advisory and enforced nowhere in the
// encoding path.
func TestInt32Array_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   Int32Array
	}{
		{"corner", Int32Array{0, 0, 100, 100}},
		{"mid", Int32Array{25, 50, 75, 99}},
		{"out of documented range", Int32Array{-10, 200, 1000, 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInt32Array(tt.in.Text())
			if err != nil {
				t.Fatalf("ParseInt32Array() error = %v", err)
			}
			if !reflect.DeepEqual(got, []int32(tt.in)) {
				t.Errorf("round trip = %v, want %v", got, tt.in)
			}
		})
	}
}

func TestParseInt32Array(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected []int32
		wantErr  bool
	}{
		{"plain", "[0, 0, 100, 100]", []int32{0, 0, 100, 100}, false},
		{"no spaces", "[20,80]", []int32{20, 80}, false},
		{"annotated empty", "@ai []", nil, false},
		{"not an array", "42", nil, true},
		{"bad element", "[1, x]", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInt32Array(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseInt32Array(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ParseInt32Array(%q) = %v, want %v", tt.in, got, tt.expected)
			}
		})
	}
}

func TestParseStringArray(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected []string
		wantErr  bool
	}{
		{"single quoted", "['DEL', 'U2720Q', 'ABC', 'DP-1']", []string{"DEL", "U2720Q", "ABC", "DP-1"}, false},
		{"double quoted", `["a", "b"]`, []string{"a", "b"}, false},
		{"escaped quote", `['it\'s']`, []string{"it's"}, false},
		{"annotated empty", "@as []", nil, false},
		{"unterminated", "['a", nil, true},
		{"bare token", "[abc]", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStringArray(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseStringArray(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ParseStringArray(%q) = %v, want %v", tt.in, got, tt.expected)
			}
		})
	}
}

func TestStringArray_RoundTrip(t *testing.T) {
	in := StringArray{"DEL", "it's", `back\slash`, ""}
	got, err := ParseStringArray(in.Text())
	if err != nil {
		t.Fatalf("ParseStringArray() error = %v", err)
	}
	if !reflect.DeepEqual(got, []string(in)) {
		t.Errorf("round trip = %v, want %v", got, in)
	}
}
