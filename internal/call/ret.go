package call

import (
	"math"
	"unsafe"
)

// Ret is the raw return value of one dispatch: the integer return
// register pair and the first float return register, captured verbatim.
// Accessors reinterpret the relevant bits as the requested type; no
// numeric conversion happens. Reading a type the callee did not actually
// return yields garbage, memory-safely.
type Ret struct {
	r0 uintptr
	r1 uintptr
	f0 uint64
}

func (r Ret) Int8() int8   { return int8(r.r0) }
func (r Ret) Int16() int16 { return int16(r.r0) }
func (r Ret) Int32() int32 { return int32(r.r0) }
func (r Ret) Int64() int64 { return int64(r.r0) }

func (r Ret) Uint8() uint8   { return uint8(r.r0) }
func (r Ret) Uint16() uint16 { return uint16(r.r0) }
func (r Ret) Uint32() uint32 { return uint32(r.r0) }
func (r Ret) Uint64() uint64 { return uint64(r.r0) }

func (r Ret) Uintptr() uintptr { return r.r0 }

// Pointer reinterprets the integer return register as an address. The
// pointee is owned by the callee's world, not by Go.
func (r Ret) Pointer() unsafe.Pointer { return unsafe.Pointer(r.r0) }

// Pair returns the integer register pair (RAX:RDX, x0:x1) for conventions
// that deliver 128-bit results across two registers.
func (r Ret) Pair() (lo, hi uint64) { return uint64(r.r0), uint64(r.r1) }

func (r Ret) Float32() float32 { return math.Float32frombits(uint32(r.f0)) }
func (r Ret) Float64() float64 { return math.Float64frombits(r.f0) }
