// Package testutil provides common test helpers for the smartcd project.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TempTree creates a temporary directory populated with the given entries
// and returns its path. Entries ending in "/" become directories; all others
// become empty regular files. Parent directories are created as needed.
func TempTree(t *testing.T, entries ...string) string {
	t.Helper()

	root := t.TempDir()
	for _, e := range entries {
		path := filepath.Join(root, filepath.FromSlash(e))
		if strings.HasSuffix(e, "/") {
			if err := os.MkdirAll(path, 0755); err != nil {
				t.Fatalf("TempTree: mkdir %s failed: %v", e, err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("TempTree: mkdir parent of %s failed: %v", e, err)
		}
		if err := os.WriteFile(path, nil, 0644); err != nil {
			t.Fatalf("TempTree: write %s failed: %v", e, err)
		}
	}

	return root
}

// ChdirTree creates a TempTree and makes it the working directory for the
// rest of the test. Tests using it must not call t.Parallel.
func ChdirTree(t *testing.T, entries ...string) string {
	t.Helper()

	root := TempTree(t, entries...)
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("ChdirTree: getwd failed: %v", err)
	}
	if err := os.Chdir(root); err != nil {
		t.Fatalf("ChdirTree: chdir %s failed: %v", root, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("ChdirTree: restore chdir %s failed: %v", prev, err)
		}
	})
	return root
}

// TempConfigFile creates a temporary config.toml with the given content
// and returns its path. The file is automatically cleaned up.
func TempConfigFile(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("TempConfigFile: write failed: %v", err)
	}

	return path
}

// TempRCFile creates a temporary shell rc file with the given content
// and returns its path.
func TempRCFile(t *testing.T, name, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, name)

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("TempRCFile: write failed: %v", err)
	}

	return path
}
