// Package state persists the session record linking a ticket to its
// feature branch. The record lives next to devctl.toml, is overwritten
// whole on every successful start, and is never committed.
package state

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/raphi011/devctl/internal/storage"
)

// StateFile is the session state file name, relative to the workspace dir.
const StateFile = ".devctl-state.json"

// ErrNoState indicates that no usable session state exists.
// A malformed state file is treated the same as an absent one:
// callers should re-run start rather than guess at intent.
var ErrNoState = errors.New("no session state (run 'devctl start TICKET' first)")

// State records the current ticket and its computed branch name.
type State struct {
	Ticket       string `json:"ticket"`
	Branch       string `json:"branch"`
	BaseOverride string `json:"base_override,omitempty"`
}

// Store reads and writes the session state file in a workspace directory.
type Store struct {
	dir string
}

// NewStore creates a store for the given workspace directory.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the absolute path of the state file.
func (s *Store) Path() string {
	return filepath.Join(s.dir, StateFile)
}

// Load reads the session state. Returns ErrNoState when the file is
// absent, unreadable as JSON, or missing required fields.
func (s *Store) Load() (State, error) {
	var st State
	if err := storage.LoadJSON(s.Path(), &st); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return State{}, ErrNoState
		}
		return State{}, fmt.Errorf("%w: %v", ErrNoState, err)
	}

	if st.Ticket == "" || st.Branch == "" {
		return State{}, fmt.Errorf("%w: state file %s is missing fields", ErrNoState, StateFile)
	}

	return st, nil
}

// Save writes the session state, replacing any previous record.
func (s *Store) Save(st State) error {
	if err := storage.SaveJSON(s.Path(), st); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	return nil
}
