// Package config loads and validates devctl.toml, the per-workspace
// registry mapping repo names to their checkout path and base branch.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ConfigFile is the registry file name, relative to the workspace dir.
const ConfigFile = "devctl.toml"

// ErrNoConfig indicates that devctl.toml does not exist.
var ErrNoConfig = errors.New("config file not found (run 'devctl init' first)")

// ErrUnknownRepo indicates that a requested repo name is not in the registry.
var ErrUnknownRepo = errors.New("unknown repo")

// Repo is a single registry entry. Path is resolved to an absolute
// directory during Load and validated to be a git repository.
type Repo struct {
	Name string
	Path string
	Base string
}

// Config is the validated registry. Repos preserves the declaration
// order of devctl.toml so every run processes repos deterministically.
type Config struct {
	Dir   string
	Repos []Repo
}

type rawRepo struct {
	Path string `toml:"path"`
	Base string `toml:"base"`
}

type rawConfig struct {
	Repos map[string]rawRepo `toml:"repos"`
}

// Load reads and validates devctl.toml from the given workspace directory.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, ConfigFile)

	var raw rawConfig
	md, err := toml.DecodeFile(path, &raw)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoConfig
		}
		return nil, fmt.Errorf("parse %s: %w", ConfigFile, err)
	}

	if len(raw.Repos) == 0 {
		return nil, fmt.Errorf("%s has no [repos.NAME] sections", ConfigFile)
	}

	cfg := &Config{Dir: dir}
	for _, name := range repoKeyOrder(md) {
		entry := raw.Repos[name]

		repo, err := resolveRepo(dir, name, entry)
		if err != nil {
			return nil, err
		}
		cfg.Repos = append(cfg.Repos, repo)
	}

	return cfg, nil
}

// repoKeyOrder extracts repo names in the order they appear in the file.
func repoKeyOrder(md toml.MetaData) []string {
	var names []string
	seen := make(map[string]bool)
	for _, key := range md.Keys() {
		if len(key) == 2 && key[0] == "repos" && !seen[key[1]] {
			seen[key[1]] = true
			names = append(names, key[1])
		}
	}
	return names
}

// resolveRepo validates one entry and resolves its path against the
// workspace dir.
func resolveRepo(dir, name string, entry rawRepo) (Repo, error) {
	if entry.Path == "" {
		return Repo{}, fmt.Errorf("repos.%s.path is required", name)
	}
	if entry.Base == "" {
		return Repo{}, fmt.Errorf("repos.%s.base is required", name)
	}

	path := entry.Path
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	path, err := filepath.Abs(path)
	if err != nil {
		return Repo{}, fmt.Errorf("repos.%s: resolve path: %w", name, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return Repo{}, fmt.Errorf("repos.%s: path does not exist: %s", name, path)
	}
	if !info.IsDir() {
		return Repo{}, fmt.Errorf("repos.%s: path is not a directory: %s", name, path)
	}
	// A .git file (not just a dir) is fine; linked checkouts have one.
	if _, err := os.Stat(filepath.Join(path, ".git")); err != nil {
		return Repo{}, fmt.Errorf("repos.%s: not a git repository: %s", name, path)
	}

	return Repo{Name: name, Path: path, Base: entry.Base}, nil
}

// Select returns the repos to operate on, in a stable order. A nil or
// empty names slice selects every repo in registry order; otherwise the
// result follows the requested order. Any unknown name fails the whole
// selection before a single repo is returned.
func (c *Config) Select(names []string) ([]Repo, error) {
	if len(names) == 0 {
		return c.Repos, nil
	}

	byName := make(map[string]Repo, len(c.Repos))
	for _, r := range c.Repos {
		byName[r.Name] = r
	}

	var unknown []string
	repos := make([]Repo, 0, len(names))
	for _, name := range names {
		repo, ok := byName[name]
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		repos = append(repos, repo)
	}
	if len(unknown) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrUnknownRepo, unknown)
	}

	return repos, nil
}
