package cfb

import (
	"bytes"
	"errors"
	"testing"
)

func TestBuilderAssemblesValidEntries(t *testing.T) {
	b := NewBuilder("Root Entry")
	dir, err := b.AddStorage(b.Root(), "Contents")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.AddStream(dir, "Summary", []byte("hello")); err != nil {
		t.Fatal(err)
	}
	if _, err := b.AddStream(b.Root(), "TopLevel", nil); err != nil {
		t.Fatal(err)
	}
	calls := 0
	if _, err := b.AddStreamFunc(dir, "Lazy", 3, func() ([]byte, error) {
		calls++
		return []byte("abc"), nil
	}); err != nil {
		t.Fatal(err)
	}

	entries := b.Entries()
	if len(entries) != 5 {
		t.Fatalf("entry count: got %d want 5", len(entries))
	}
	buf, err := EncodeBytes(entries)
	if err != nil {
		t.Fatalf("EncodeBytes: %v", err)
	}
	if calls != 1 {
		t.Fatalf("lazy content invocations: got %d want 1", calls)
	}
	if !bytes.Contains(buf, []byte("hello")) {
		t.Fatal("stream payload missing from output")
	}
}

func TestBuilderRejectsStreamParent(t *testing.T) {
	b := NewBuilder("Root Entry")
	s, err := b.AddStream(b.Root(), "S", []byte("x"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.AddStream(s, "Nested", nil); !errors.Is(err, ErrNotStorage) {
		t.Fatalf("expected ErrNotStorage, got %v", err)
	}
	if _, err := b.AddStorage(s, "Dir"); !errors.Is(err, ErrNotStorage) {
		t.Fatalf("expected ErrNotStorage, got %v", err)
	}
}

func TestBuilderRejectsBadParentIndex(t *testing.T) {
	b := NewBuilder("Root Entry")
	if _, err := b.AddStorage(5, "X"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if _, err := b.AddStorage(-1, "X"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}
