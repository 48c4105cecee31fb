package state

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())

	want := State{Ticket: "ABC-123", Branch: "feature/ABC-123", BaseOverride: "develop"}
	if err := store.Save(want); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got != want {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}

func TestStoreOverwrites(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())

	if err := store.Save(State{Ticket: "ABC-1", Branch: "feature/ABC-1", BaseOverride: "develop"}); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if err := store.Save(State{Ticket: "ABC-2", Branch: "feature/ABC-2"}); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	// Overwrite replaces the record, it never merges
	if got.Ticket != "ABC-2" || got.BaseOverride != "" {
		t.Errorf("Load() = %+v, want ticket ABC-2 with no base override", got)
	}
}

func TestStoreLoadMissing(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	_, err := store.Load()
	if !errors.Is(err, ErrNoState) {
		t.Errorf("Load() without state file = %v, want ErrNoState", err)
	}
}

func TestStoreLoadMalformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"not json", "ticket: ABC-123"},
		{"missing branch", `{"ticket": "ABC-123"}`},
		{"missing ticket", `{"branch": "feature/ABC-123"}`},
		{"empty object", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			dir := t.TempDir()
			if err := os.WriteFile(filepath.Join(dir, StateFile), []byte(tt.content), 0o600); err != nil {
				t.Fatal(err)
			}

			_, err := NewStore(dir).Load()
			if !errors.Is(err, ErrNoState) {
				t.Errorf("Load() = %v, want ErrNoState", err)
			}
		})
	}
}
