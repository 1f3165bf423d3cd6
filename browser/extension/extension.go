// Package extension embeds the BrowserBridge helper extension and unpacks
// it to a stable on-disk location for the launcher to load.
//
// The helper is the privileged handler behind the reserved internal://
// commands: it watches for those navigations failing at the network layer
// and applies the requested proxy, tab or browsing-data change. Every
// resolved session configuration loads it as its first extension.
package extension

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

//go:embed chromium
var files embed.FS

var (
	unpackOnce sync.Once
	unpackDir  string
	unpackErr  error
)

// Path unpacks the embedded extension once per process and returns the
// directory it lives in.
func Path() (string, error) {
	unpackOnce.Do(func() {
		unpackDir, unpackErr = unpack()
	})
	return unpackDir, unpackErr
}

func unpack() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		base = os.TempDir()
	}
	dir := filepath.Join(base, "browserbridge", "extension")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create extension dir: %w", err)
	}

	err = fs.WalkDir(files, "chromium", func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		data, err := files.ReadFile(p)
		if err != nil {
			return err
		}
		rel := strings.TrimPrefix(p, "chromium/")
		return os.WriteFile(filepath.Join(dir, filepath.FromSlash(rel)), data, 0o644)
	})
	if err != nil {
		return "", fmt.Errorf("unpack extension: %w", err)
	}
	return dir, nil
}
