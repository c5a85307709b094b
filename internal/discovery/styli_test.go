package discovery

import (
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"
)

func TestStyli(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tools")
	content := `[99800b93]
LastUsedTime=1697183201

[a010c44]
LastUsedTime=1697190000
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	serials, err := Styli(path)
	if err != nil {
		t.Fatalf("Styli() error = %v", err)
	}
	sort.Strings(serials)
	if !reflect.DeepEqual(serials, []string{"99800b93", "a010c44"}) {
		t.Errorf("Styli() = %v, want [99800b93 a010c44]", serials)
	}
}

func TestStyli_MissingCache(t *testing.T) {
	serials, err := Styli(filepath.Join(t.TempDir(), "tools"))
	if err != nil {
		t.Fatalf("Styli() error = %v", err)
	}
	if len(serials) != 0 {
		t.Errorf("Styli() = %v, want empty for missing cache", serials)
	}
}

func TestStylusCacheFile(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/cache")

	path, err := StylusCacheFile()
	if err != nil {
		t.Fatalf("StylusCacheFile() error = %v", err)
	}
	expected := filepath.Join("/tmp/cache", "gnome-control-center", "wacom", "tools")
	if path != expected {
		t.Errorf("StylusCacheFile() = %v, want %v", path, expected)
	}
}
