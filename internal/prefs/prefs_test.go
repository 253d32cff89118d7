package prefs

import (
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestGetMissing(t *testing.T) {
	s := openTestStore(t)

	v, ok, err := s.Get("theme-preference")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok || v != "" {
		t.Errorf("expected missing key, got %q (ok=%v)", v, ok)
	}
}

func TestSetOverwrite(t *testing.T) {
	s := openTestStore(t)

	if err := s.Set("theme-preference", "light"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s.Set("theme-preference", "dark"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	v, ok, err := s.Get("theme-preference")
	if err != nil || !ok {
		t.Fatalf("Get: v=%q ok=%v err=%v", v, ok, err)
	}
	if v != "dark" {
		t.Errorf("got %q, want %q", v, "dark")
	}
}

func TestDelete(t *testing.T) {
	s := openTestStore(t)

	if err := s.Set("k", "v"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s.Delete("k"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := s.Delete("k"); err != nil {
		t.Fatalf("second Delete failed: %v", err)
	}
	if _, ok, _ := s.Get("k"); ok {
		t.Error("key should be gone")
	}
}

func TestPersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := s.Set("theme-preference", "dark"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer s2.Close()

	v, ok, err := s2.Get("theme-preference")
	if err != nil || !ok || v != "dark" {
		t.Errorf("after reopen: v=%q ok=%v err=%v", v, ok, err)
	}
}

func TestClosed(t *testing.T) {
	s, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory failed: %v", err)
	}
	s.Close()

	if _, _, err := s.Get("k"); !errors.Is(err, ErrClosed) {
		t.Errorf("Get after Close: got %v, want ErrClosed", err)
	}
	if err := s.Set("k", "v"); !errors.Is(err, ErrClosed) {
		t.Errorf("Set after Close: got %v, want ErrClosed", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("double Close: %v", err)
	}
}
