package call

import (
	"math"
	"unsafe"

	"github.com/Aloxaf/funcall/internal/abi"
)

// Argument constructors. Integer payloads are zero-extended to the
// register word; the callee reads only the width it expects. Float32 keeps
// its bit pattern in the low 32 bits of the float slot, which is how
// non-variadic callees receive single-precision arguments. Variadic C
// callees apply default argument promotion, so pass Float64 there.

func Int8(v int8) abi.Arg   { return abi.Arg{Kind: abi.Int8, Bits: uint64(uint8(v))} }
func Int16(v int16) abi.Arg { return abi.Arg{Kind: abi.Int16, Bits: uint64(uint16(v))} }
func Int32(v int32) abi.Arg { return abi.Arg{Kind: abi.Int32, Bits: uint64(uint32(v))} }
func Int64(v int64) abi.Arg { return abi.Arg{Kind: abi.Int64, Bits: uint64(v)} }

func Uint8(v uint8) abi.Arg   { return abi.Arg{Kind: abi.Uint8, Bits: uint64(v)} }
func Uint16(v uint16) abi.Arg { return abi.Arg{Kind: abi.Uint16, Bits: uint64(v)} }
func Uint32(v uint32) abi.Arg { return abi.Arg{Kind: abi.Uint32, Bits: uint64(v)} }
func Uint64(v uint64) abi.Arg { return abi.Arg{Kind: abi.Uint64, Bits: v} }

func Uintptr(v uintptr) abi.Arg { return abi.Arg{Kind: abi.Uintptr, Bits: uint64(v)} }

// Pointer pushes the address of a Go allocation. The argument stays a live
// pointer until the frame is built, so the pointee remains reachable and
// its address is taken only once dispatch can no longer move it. Pass
// foreign addresses through Uintptr instead.
func Pointer(p unsafe.Pointer) abi.Arg {
	return abi.Arg{Kind: abi.Pointer, Ptr: p}
}

func Float32(v float32) abi.Arg {
	return abi.Arg{Kind: abi.Float32, Bits: uint64(math.Float32bits(v))}
}

func Float64(v float64) abi.Arg {
	return abi.Arg{Kind: abi.Float64, Bits: math.Float64bits(v)}
}
