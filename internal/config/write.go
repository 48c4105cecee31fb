package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Exists reports whether devctl.toml exists in dir.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFile))
	return err == nil
}

// Write writes devctl.toml to dir with one [repos.NAME] section per
// entry, in the given order. Paths are written as provided (init passes
// paths relative to dir so the file stays portable).
func Write(dir string, repos []Repo) error {
	var b strings.Builder
	b.WriteString("# devctl repository registry. Generated by 'devctl init'.\n")

	for _, r := range repos {
		fmt.Fprintf(&b, "\n[repos.%s]\n", tomlKey(r.Name))
		fmt.Fprintf(&b, "path = %q\n", r.Path)
		fmt.Fprintf(&b, "base = %q\n", r.Base)
	}

	path := filepath.Join(dir, ConfigFile)
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", ConfigFile, err)
	}
	return nil
}

// tomlKey quotes a repo name when it is not a bare TOML key.
func tomlKey(name string) string {
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return fmt.Sprintf("%q", name)
		}
	}
	return name
}
