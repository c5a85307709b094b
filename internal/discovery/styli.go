package discovery

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

// StylusCacheFile returns the path of the control center's stylus cache.
// Only styli that have been brought into proximity over the control center
// appear there.
func StylusCacheFile() (string, error) {
	cache := os.Getenv("XDG_CACHE_HOME")
	if cache == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine cache directory: %w", err)
		}
		cache = filepath.Join(home, ".cache")
	}
	return filepath.Join(cache, "gnome-control-center", "wacom", "tools"), nil
}

// Styli reads the stylus serials previously seen on this system from the
// cache file at path. A missing cache means no styli have been seen yet and
// returns an empty list, not an error.
func Styli(path string) ([]string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}
	cache, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stylus cache %s: %w", path, err)
	}

	var serials []string
	for _, section := range cache.Sections() {
		if section.Name() == ini.DefaultSection {
			continue
		}
		serials = append(serials, section.Name())
	}
	return serials, nil
}
