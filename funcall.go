// Package funcall invokes native functions whose signature is known only
// at run time. A caller resolves a target (a shared-library symbol or a
// raw address), pushes a sequence of typed arguments, selects a calling
// convention and dispatches; the return value is then read back as a
// requested scalar type.
//
//	f, err := funcall.Open("libm.so.6", "cbrt")
//	if err != nil {
//		...
//	}
//	f.Push(funcall.Float64(8))
//	ret, err := f.Call(funcall.Cdecl)
//	// ret.Float64() == 2
//
// The dispatcher has no signature to validate against. Pushing the wrong
// number or kinds of arguments, reading the return value as a type the
// callee did not produce, or targeting a function that faults are
// undefined behavior by construction: this package offers arbitrary
// native code execution with caller-supplied arguments and concentrates
// that risk into one auditable dispatch routine. The checkable failures —
// library or symbol resolution, stack-argument overflow, an unimplemented
// convention — are reported as distinct error kinds.
//
// One Func must not be mutated or dispatched from multiple goroutines at
// once. Independent Funcs may be dispatched concurrently; the only shared
// state is the process-wide library-handle registry, which is internally
// locked. Dispatch blocks until the callee returns and cannot be
// cancelled or timed out.
package funcall

import (
	"unsafe"

	"github.com/Aloxaf/funcall/internal/abi"
	"github.com/Aloxaf/funcall/internal/call"
	"github.com/Aloxaf/funcall/internal/dyld"
)

// Func is one call context: a target address plus the arguments pushed
// for its next dispatch.
type Func = call.Func

// Arg is a tagged scalar argument.
type Arg = abi.Arg

// Kind tags an Arg's semantic type.
type Kind = abi.Kind

// Ret is the raw return value of a dispatch with typed accessors.
type Ret = call.Ret

// Convention selects argument placement and stack-cleanup rules.
type Convention = abi.Convention

// Registry caches dynamic-library handles by path.
type Registry = dyld.Registry

const (
	Cdecl    = abi.Cdecl
	Stdcall  = abi.Stdcall
	Fastcall = abi.Fastcall
	Win64    = abi.Win64
	AAPCS64  = abi.AAPCS64
)

// Error kinds callers can branch on with errors.Is.
var (
	ErrLibraryNotFound       = dyld.ErrLibraryNotFound
	ErrSymbolNotFound        = dyld.ErrSymbolNotFound
	ErrTooManyArguments      = abi.ErrTooManyArguments
	ErrUnsupportedConvention = abi.ErrUnsupportedConvention
)

// Open resolves symbol in the library at path, loading the library through
// the process-wide registry (handles are cached by path and reused).
func Open(path, symbol string) (*Func, error) { return call.Open(path, symbol) }

// OpenIn is Open against a caller-owned registry, for embedders and tests
// that want their own library lifecycle.
func OpenIn(r *Registry, path, symbol string) (*Func, error) {
	return call.OpenIn(r, path, symbol)
}

// FromAddress targets an already-resolved native entry point.
func FromAddress(addr uintptr) *Func { return call.FromAddress(addr) }

// NewRegistry returns an empty, private library-handle registry.
func NewRegistry() *Registry { return dyld.NewRegistry() }

// DefaultRegistry returns the process-wide registry used by Open.
func DefaultRegistry() *Registry { return dyld.Default }

// ParseConvention maps a name like "cdecl" to its selector.
func ParseConvention(name string) (Convention, error) { return abi.ParseConvention(name) }

// Argument constructors.

func Int8(v int8) Arg       { return call.Int8(v) }
func Int16(v int16) Arg     { return call.Int16(v) }
func Int32(v int32) Arg     { return call.Int32(v) }
func Int64(v int64) Arg     { return call.Int64(v) }
func Uint8(v uint8) Arg     { return call.Uint8(v) }
func Uint16(v uint16) Arg   { return call.Uint16(v) }
func Uint32(v uint32) Arg   { return call.Uint32(v) }
func Uint64(v uint64) Arg   { return call.Uint64(v) }
func Uintptr(v uintptr) Arg { return call.Uintptr(v) }
func Float32(v float32) Arg { return call.Float32(v) }
func Float64(v float64) Arg { return call.Float64(v) }

// Pointer pushes the address of a Go allocation. The pointee is kept
// reachable until the dispatch completes, and the address is resolved only
// after dispatch can no longer relocate it. Raw foreign addresses go
// through Uintptr.
func Pointer(p unsafe.Pointer) Arg { return call.Pointer(p) }
