package monitor

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileSource reads monitor specs from a static YAML file instead of the live
// display service. Useful on systems without the session service and for
// scripted setups:
//
//	monitors:
//	  - connector: DP-1
//	    vendor: DEL
//	    product: DELL U2720Q
//	    serial: 84XV123
type FileSource struct {
	Path string
}

type monitorsFile struct {
	Monitors []Spec `yaml:"monitors"`
}

// Monitors implements Source. File order is preserved.
func (f FileSource) Monitors(_ context.Context) ([]Spec, error) {
	return ReadFile(f.Path)
}

// ReadFile loads a monitor list from a YAML file.
func ReadFile(path string) ([]Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read monitor file: %w", err)
	}
	var parsed monitorsFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse monitor file %s: %w", path, err)
	}
	return parsed.Monitors, nil
}
