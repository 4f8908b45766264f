// Package abi builds machine-level call frames for dynamically invoked
// native functions. A caller-supplied sequence of tagged arguments is
// partitioned into register-class and stack-class operands according to a
// calling convention's layout table, loaded into a fixed-offset Frame, and
// handed to a per-architecture assembly stub that performs the actual
// transfer of control.
//
// All undefined-behavior risk of the capability (argument/return type
// mismatch against the real callee signature, faults inside the callee) is
// concentrated in the invoke stubs; everything above them is plain Go.
package abi

import (
	"fmt"
	"runtime"
	"unsafe"
)

// Kind tags the semantic type of a pushed argument.
type Kind uint8

const (
	Int8 Kind = iota
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Uintptr
	Pointer
	Float32
	Float64
)

var kindNames = [...]string{
	Int8:    "int8",
	Int16:   "int16",
	Int32:   "int32",
	Int64:   "int64",
	Uint8:   "uint8",
	Uint16:  "uint16",
	Uint32:  "uint32",
	Uint64:  "uint64",
	Uintptr: "uintptr",
	Pointer: "pointer",
	Float32: "float32",
	Float64: "float64",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// FloatClass reports whether arguments of this kind travel in
// floating-point registers rather than general-purpose ones.
func (k Kind) FloatClass() bool {
	return k == Float32 || k == Float64
}

// Arg is one tagged scalar argument. Bits holds the value's bit pattern
// zero-extended to 64 bits; Float32 keeps its pattern in the low 32 bits.
// Args are immutable once pushed and their order is significant.
//
// Pointer-kind arguments carry their payload in Ptr, not Bits. Keeping the
// payload a live pointer until frame build means the garbage collector
// keeps the pointee reachable and a moving stack copy updates the address;
// build flattens Ptr to an integer only after the dispatch stack has been
// grown.
type Arg struct {
	Kind Kind
	Bits uint64
	Ptr  unsafe.Pointer
}

// Convention selects an argument-placement and stack-cleanup contract.
type Convention uint8

const (
	// Cdecl is the default C convention of the current platform: System V
	// AMD64 on unix amd64, AAPCS64 on arm64, the x64 convention on Windows.
	Cdecl Convention = iota
	// Stdcall and Fastcall are x86-32 conventions. On 64-bit Windows they
	// collapse into the single x64 convention; elsewhere they are
	// unsupported.
	Stdcall
	Fastcall
	// Win64 names the x64 convention explicitly.
	Win64
	// AAPCS64 names the arm64 procedure call standard explicitly.
	AAPCS64
)

var conventionNames = [...]string{
	Cdecl:    "cdecl",
	Stdcall:  "stdcall",
	Fastcall: "fastcall",
	Win64:    "win64",
	AAPCS64:  "aapcs64",
}

func (c Convention) String() string {
	if int(c) < len(conventionNames) {
		return conventionNames[c]
	}
	return fmt.Sprintf("convention(%d)", uint8(c))
}

// ParseConvention maps a convention name to its selector.
func ParseConvention(name string) (Convention, error) {
	for c, n := range conventionNames {
		if n == name {
			return Convention(c), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedConvention, name)
}

// layout describes how one convention places arguments. Instances live in
// the per-target files; adding an architecture means adding a table and an
// invoke stub, not touching dispatch control flow.
type layout struct {
	name      string
	intRegs   int
	floatRegs int
	// positional conventions (x64) advance the integer and float register
	// files in lockstep and mirror float arguments into both, so variadic
	// callees find them either way.
	positional bool
	// calleeCleanup records who restores the stack pointer. All currently
	// implemented 64-bit conventions are caller-cleanup; the stubs restore
	// the pre-call stack pointer unconditionally, which is also correct for
	// callee-cleanup conventions.
	calleeCleanup bool
	invoke        func(entry uintptr, frame *Frame)
}

// build partitions args into the frame per the layout's rules. It fails
// with ErrTooManyArguments when the stack-class overflow area is exhausted;
// no other validation happens here, type tags are trusted input.
func (l *layout) build(args []Arg) (Frame, error) {
	var f Frame
	nInt, nFloat := 0, 0
	for i, a := range args {
		bits := a.Bits
		if a.Kind == Pointer {
			bits = uint64(uintptr(a.Ptr))
		}
		if l.positional {
			pos := nInt
			if pos < l.intRegs {
				f.Ints[pos] = uintptr(bits)
				if a.Kind.FloatClass() {
					f.Floats[pos] = bits
				}
				nInt++
				continue
			}
		} else if a.Kind.FloatClass() {
			if nFloat < l.floatRegs {
				f.Floats[nFloat] = bits
				nFloat++
				continue
			}
		} else if nInt < l.intRegs {
			f.Ints[nInt] = uintptr(bits)
			nInt++
			continue
		}
		if f.NStack == MaxStackArgs {
			return Frame{}, fmt.Errorf("%w: argument %d exceeds %d stack slots (%s)",
				ErrTooManyArguments, i, MaxStackArgs, l.name)
		}
		f.Stack[f.NStack] = uintptr(bits)
		f.NStack++
	}
	f.NFloat = uintptr(nFloat)
	return f, nil
}

// Dispatch builds the frame for conv and transfers control to entry. The
// returned frame carries the raw return registers. On error no call has
// been performed.
func Dispatch(entry uintptr, args []Arg, conv Convention) (Frame, error) {
	l, err := layoutFor(conv)
	if err != nil {
		return Frame{}, err
	}
	// Grow the stack before building the frame: growth moves the goroutine
	// stack, and any Pointer payload must be flattened to an address only
	// after the last possible move.
	reserveStack(calleeStackDepth)
	f, err := l.build(args)
	if err != nil {
		return Frame{}, err
	}
	l.invoke(entry, &f)
	runtime.KeepAlive(args)
	return f, nil
}
