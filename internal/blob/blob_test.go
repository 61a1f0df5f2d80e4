package blob

import (
	"bytes"
	"errors"
	"testing"
)

func TestSaveOpenRoundTrip(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	data := []byte{0xFF, 0xD8, 0xFF, 0xE0}
	ref, err := s.Save(data, "jpg")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if ref == "" {
		t.Fatal("expected a reference")
	}
	if !s.Exists(ref) {
		t.Fatalf("Exists(%q) = false after Save", ref)
	}

	got, err := s.Open(ref)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Fatalf("expected %v, got %v", data, got)
	}
}

func TestExistsUnknownRef(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s.Exists("never-stored.jpg") {
		t.Fatal("Exists must be false for unknown reference")
	}
}

func TestOpenRejectsTraversal(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for _, ref := range []string{"", "../etc/passwd", "a/b.jpg", ".hidden"} {
		if _, err := s.Open(ref); !errors.Is(err, ErrInvalidRef) {
			t.Fatalf("Open(%q): expected ErrInvalidRef, got %v", ref, err)
		}
		if s.Exists(ref) {
			t.Fatalf("Exists(%q) must be false", ref)
		}
	}
}
