// Package dyld wraps the platform's dynamic-loading facility behind a
// process-wide handle registry. Handles are cached by path: opening the
// same library twice reuses the existing handle instead of reloading.
// Handles live until explicit Unload or process teardown; they are not
// tied to any single call context.
package dyld

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// Resolution failures, distinct so callers can branch on them.
var (
	ErrLibraryNotFound = errors.New("library not found")
	ErrSymbolNotFound  = errors.New("symbol not found")
)

// Registry caches dynamic-library handles by path. The zero value is not
// usable; construct with NewRegistry. Safe for concurrent use.
type Registry struct {
	mu      sync.Mutex
	handles map[string]uintptr
}

func NewRegistry() *Registry {
	return &Registry{handles: make(map[string]uintptr)}
}

// Default is the process-wide registry. Tests and embedders that want an
// isolated lifecycle can construct their own.
var Default = NewRegistry()

// Open loads the library at path, reusing a cached handle when present.
// A failed load caches nothing.
func (r *Registry) Open(path string) (uintptr, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, _, err := r.open(path)
	return h, err
}

// open returns the handle and whether this call loaded it fresh.
// Caller holds r.mu.
func (r *Registry) open(path string) (uintptr, bool, error) {
	if h, ok := r.handles[path]; ok {
		slog.Debug("dyld: reusing handle", "path", path)
		return h, false, nil
	}
	h, err := dlopen(path)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %s: %v", ErrLibraryNotFound, path, err)
	}
	slog.Debug("dyld: loaded library", "path", path)
	r.handles[path] = h
	return h, true, nil
}

// Resolve opens the library and looks up symbol. If the lookup fails and
// the library was loaded by this call, it is unloaded again so a failed
// resolve leaves no dangling handle.
func (r *Registry) Resolve(path, symbol string) (uintptr, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, fresh, err := r.open(path)
	if err != nil {
		return 0, err
	}
	addr, err := dlsym(h, symbol)
	if err != nil {
		if fresh {
			delete(r.handles, path)
			if cerr := dlclose(h); cerr != nil {
				slog.Debug("dyld: close after failed lookup", "path", path, "err", cerr)
			}
		}
		return 0, fmt.Errorf("%w: %q in %s: %v", ErrSymbolNotFound, symbol, path, err)
	}
	return addr, nil
}

// Unload drops the cached handle for path and closes it. Unloading a path
// that was never opened is a no-op.
func (r *Registry) Unload(path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.handles[path]
	if !ok {
		return nil
	}
	delete(r.handles, path)
	slog.Debug("dyld: unloaded library", "path", path)
	return dlclose(h)
}

// Close unloads every cached handle. Intended for teardown of private
// registries; the Default registry is normally left to process exit.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var first error
	for path, h := range r.handles {
		if err := dlclose(h); err != nil && first == nil {
			first = fmt.Errorf("close %s: %w", path, err)
		}
	}
	r.handles = make(map[string]uintptr)
	return first
}
