package extension

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestPathStable(t *testing.T) {
	first, err := Path()
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	second, err := Path()
	if err != nil {
		t.Fatalf("Path (second call): %v", err)
	}
	if first != second {
		t.Errorf("Path not stable: %q vs %q", first, second)
	}
}

func TestUnpackedFiles(t *testing.T) {
	dir, err := Path()
	if err != nil {
		t.Fatalf("Path: %v", err)
	}

	manifest, err := os.ReadFile(filepath.Join(dir, "manifest.json"))
	if err != nil {
		t.Fatalf("manifest.json: %v", err)
	}
	var m struct {
		ManifestVersion int      `json:"manifest_version"`
		Permissions     []string `json:"permissions"`
	}
	if err := json.Unmarshal(manifest, &m); err != nil {
		t.Fatalf("manifest.json does not parse: %v", err)
	}
	if m.ManifestVersion == 0 {
		t.Error("manifest_version missing")
	}
	perms := make(map[string]bool)
	for _, p := range m.Permissions {
		perms[p] = true
	}
	for _, want := range []string{"proxy", "tabs", "browsingData", "webNavigation"} {
		if !perms[want] {
			t.Errorf("manifest missing %q permission", want)
		}
	}

	script, err := os.ReadFile(filepath.Join(dir, "background.js"))
	if err != nil {
		t.Fatalf("background.js: %v", err)
	}
	if len(script) == 0 {
		t.Error("background.js is empty")
	}
}
