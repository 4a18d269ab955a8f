package artifact

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestStoreSaveOpenRoundTrip(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("store init: %v", err)
	}

	name := NewName()
	payload := []byte("%PDF-1.7 payload")
	if err := store.Save(name, payload); err != nil {
		t.Fatalf("save: %v", err)
	}

	f, err := store.Open(name)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != string(payload) {
		t.Errorf("round trip mismatch: %q", data)
	}
}

func TestStoreOpenUnknownName(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("store init: %v", err)
	}

	_, err = store.Open("contract_does_not_exist.pdf")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStoreStripsPathComponents(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("store init: %v", err)
	}

	if err := store.Save("../../escape.pdf", []byte("data")); err != nil {
		t.Fatalf("save: %v", err)
	}
	// The write lands inside the store dir under the base name only.
	f, err := store.Open("escape.pdf")
	if err != nil {
		t.Fatalf("open by base name: %v", err)
	}
	f.Close()
}

func TestNewNameShape(t *testing.T) {
	name := NewName()
	if !strings.HasPrefix(name, "contract_") {
		t.Errorf("expected contract_ prefix, got %q", name)
	}
	if !strings.HasSuffix(name, ".pdf") {
		t.Errorf("expected .pdf suffix, got %q", name)
	}
	id := strings.TrimSuffix(strings.TrimPrefix(name, "contract_"), ".pdf")
	if len(id) != 26 {
		t.Errorf("expected 26-char id, got %d (%q)", len(id), id)
	}
}

func TestNewIDShapeAndUniqueness(t *testing.T) {
	const alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewID()
		if len(id) != 26 {
			t.Fatalf("expected 26 chars, got %d (%q)", len(id), id)
		}
		for _, r := range id {
			if !strings.ContainsRune(alphabet, r) {
				t.Fatalf("character %q outside encoding alphabet in %q", r, id)
			}
		}
		if seen[id] {
			t.Fatalf("duplicate id generated: %q", id)
		}
		seen[id] = true
	}
}
