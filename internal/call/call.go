// Package call implements the call context: one argument buffer plus its
// eventual dispatch through a calling-convention layout, and the typed
// views of the captured return registers.
package call

import (
	"runtime"
	"unsafe"

	"github.com/Aloxaf/funcall/internal/abi"
	"github.com/Aloxaf/funcall/internal/dyld"
)

// Func is one call context: a resolved target address and the arguments
// accumulated for the next dispatch. A Func is not safe for concurrent
// use; independent Funcs may be dispatched concurrently.
type Func struct {
	target uintptr
	args   []abi.Arg
	// keep pins Go allocations whose addresses were pushed (PushBytes,
	// PushString) until the dispatch they belong to has completed.
	keep []any
}

// Open resolves symbol in the library at path through the process-wide
// registry and returns a context targeting it.
func Open(path, symbol string) (*Func, error) {
	return OpenIn(dyld.Default, path, symbol)
}

// OpenIn is Open against a caller-owned registry.
func OpenIn(r *dyld.Registry, path, symbol string) (*Func, error) {
	addr, err := r.Resolve(path, symbol)
	if err != nil {
		return nil, err
	}
	return FromAddress(addr), nil
}

// FromAddress returns a context targeting an already-resolved entry point.
// The address is borrowed: the caller keeps whatever owns it alive.
func FromAddress(addr uintptr) *Func {
	return &Func{target: addr}
}

// Target returns the resolved entry point.
func (f *Func) Target() uintptr { return f.target }

// Push appends one tagged argument. Order is preserved through dispatch.
func (f *Func) Push(a abi.Arg) {
	f.args = append(f.args, a)
}

// PushBytes copies b, appends a NUL terminator if missing, and pushes the
// copy's address. The copy stays pinned until the next dispatch completes,
// so C string consumers see stable memory.
func (f *Func) PushBytes(b []byte) {
	buf := make([]byte, 0, len(b)+1)
	buf = append(buf, b...)
	if len(buf) == 0 || buf[len(buf)-1] != 0 {
		buf = append(buf, 0)
	}
	f.keep = append(f.keep, buf)
	f.Push(Pointer(unsafe.Pointer(&buf[0])))
}

// PushString is PushBytes for a string value.
func (f *Func) PushString(s string) {
	f.PushBytes([]byte(s))
}

// Len reports how many arguments are pending.
func (f *Func) Len() int { return len(f.args) }

// Reset discards pending arguments without dispatching, preparing the
// context for a new call.
func (f *Func) Reset() {
	f.args = f.args[:0]
	f.keep = nil
}

// Call dispatches the pending arguments to the target under conv and
// returns the raw return registers. After a successful dispatch the
// argument buffer is cleared, so the context is immediately ready for the
// next call; a failed dispatch (ErrTooManyArguments,
// ErrUnsupportedConvention) performs no call and leaves the buffer intact.
//
// The argument count and kinds must match what the target actually
// expects. The dispatcher has no signature to check against: a mismatch is
// undefined behavior, not a detectable error. Likewise a callee that
// faults or never returns is outside this layer's control.
func (f *Func) Call(conv abi.Convention) (Ret, error) {
	frame, err := abi.Dispatch(f.target, f.args, conv)
	if err != nil {
		return Ret{}, err
	}
	runtime.KeepAlive(f.keep)
	f.Reset()
	return Ret{r0: frame.R0, r1: frame.R1, f0: frame.F0}, nil
}
