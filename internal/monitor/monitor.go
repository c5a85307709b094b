package monitor

import (
	"context"
	"errors"

	"github.com/gsetwacom/gsetwacom/internal/gvariant"
)

var (
	// ErrNoMatch indicates no known monitor satisfies the query.
	ErrNoMatch = errors.New("unable to find this monitor in the current configuration")

	// ErrAmbiguousQuery indicates a query with no fields set; at least one
	// of vendor, product, serial or connector must be supplied.
	ErrAmbiguousQuery = errors.New("one of vendor, product, serial or connector has to be provided")
)

// Spec identifies a physical monitor by its EDID attributes and the
// connector it is attached to.
type Spec struct {
	Connector string `yaml:"connector"`
	Vendor    string `yaml:"vendor"`
	Product   string `yaml:"product"`
	Serial    string `yaml:"serial"`
}

// SettingsValue encodes the spec as the tablet schema's output tuple.
// The order [vendor, product, serial, connector] is fixed and significant.
func (s Spec) SettingsValue() gvariant.StringArray {
	return gvariant.StringArray{s.Vendor, s.Product, s.Serial, s.Connector}
}

// Query is a partial monitor specifier. Empty fields impose no constraint.
type Query struct {
	Connector string
	Vendor    string
	Product   string
	Serial    string
}

// Empty reports whether no field of the query is set.
func (q Query) Empty() bool {
	return q == Query{}
}

// Matches reports whether every set field of the query equals the
// candidate's corresponding field.
func (q Query) Matches(s Spec) bool {
	if q.Connector != "" && q.Connector != s.Connector {
		return false
	}
	if q.Vendor != "" && q.Vendor != s.Vendor {
		return false
	}
	if q.Product != "" && q.Product != s.Product {
		return false
	}
	if q.Serial != "" && q.Serial != s.Serial {
		return false
	}
	return true
}

// Match selects the monitor the query refers to. Candidates are scanned in
// the order supplied, which is the display configuration's own order, and
// the first match wins; distinct monitors rarely share a full attribute
// query, so multiple matches are not an error.
func Match(q Query, candidates []Spec) (Spec, error) {
	if q.Empty() {
		return Spec{}, ErrAmbiguousQuery
	}
	for _, c := range candidates {
		if q.Matches(c) {
			return c, nil
		}
	}
	return Spec{}, ErrNoMatch
}

// Source produces the set of currently known monitors.
type Source interface {
	Monitors(ctx context.Context) ([]Spec, error)
}
