//go:build linux

package dyld

import (
	"errors"
	"testing"
)

const libcPath = "libc.so.6"

func TestOpenMissingLibrary(t *testing.T) {
	r := NewRegistry()
	defer r.Close()

	_, err := r.Open("libdefinitely-not-present-funcall.so")
	if !errors.Is(err, ErrLibraryNotFound) {
		t.Fatalf("err=%v, want ErrLibraryNotFound", err)
	}
	if len(r.handles) != 0 {
		t.Fatalf("failed open cached %d handles, want 0", len(r.handles))
	}
}

func TestResolveMissingSymbol(t *testing.T) {
	r := NewRegistry()
	defer r.Close()

	_, err := r.Resolve(libcPath, "funcall_no_such_symbol")
	if !errors.Is(err, ErrSymbolNotFound) {
		t.Fatalf("err=%v, want ErrSymbolNotFound", err)
	}
	// The library was loaded by this Resolve, so the failure must unwind it.
	if len(r.handles) != 0 {
		t.Fatalf("failed resolve left %d handles, want 0", len(r.handles))
	}
}

func TestResolveMissingSymbolKeepsPriorHandle(t *testing.T) {
	r := NewRegistry()
	defer r.Close()

	if _, err := r.Open(libcPath); err != nil {
		t.Fatalf("open libc: %v", err)
	}
	if _, err := r.Resolve(libcPath, "funcall_no_such_symbol"); !errors.Is(err, ErrSymbolNotFound) {
		t.Fatalf("err=%v, want ErrSymbolNotFound", err)
	}
	// The handle predates the failed resolve and stays cached.
	if len(r.handles) != 1 {
		t.Fatalf("registry has %d handles, want 1", len(r.handles))
	}
}

func TestOpenCachesHandle(t *testing.T) {
	r := NewRegistry()
	defer r.Close()

	h1, err := r.Open(libcPath)
	if err != nil {
		t.Fatalf("open libc: %v", err)
	}
	h2, err := r.Open(libcPath)
	if err != nil {
		t.Fatalf("reopen libc: %v", err)
	}
	if h1 != h2 {
		t.Fatalf("handles differ across opens: %#x vs %#x", h1, h2)
	}
	if len(r.handles) != 1 {
		t.Fatalf("registry has %d handles, want 1", len(r.handles))
	}
}

func TestResolveKnownSymbol(t *testing.T) {
	r := NewRegistry()
	defer r.Close()

	addr, err := r.Resolve(libcPath, "strlen")
	if err != nil {
		t.Fatalf("resolve strlen: %v", err)
	}
	if addr == 0 {
		t.Fatal("resolve strlen returned a nil address")
	}
}

func TestUnload(t *testing.T) {
	r := NewRegistry()
	defer r.Close()

	if _, err := r.Open(libcPath); err != nil {
		t.Fatalf("open libc: %v", err)
	}
	if err := r.Unload(libcPath); err != nil {
		t.Fatalf("unload libc: %v", err)
	}
	if len(r.handles) != 0 {
		t.Fatalf("registry has %d handles after unload, want 0", len(r.handles))
	}
	// Unloading an unknown path is a no-op.
	if err := r.Unload("never-opened.so"); err != nil {
		t.Fatalf("unload unknown path: %v", err)
	}
	// The path can be opened again afterward.
	if _, err := r.Open(libcPath); err != nil {
		t.Fatalf("reopen after unload: %v", err)
	}
}
