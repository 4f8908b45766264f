package abi

// Register and stack capacities of the Frame. They cover every implemented
// convention: System V AMD64 uses 6 of the 8 integer slots, AAPCS64 all 8,
// the x64 convention 4 of each.
const (
	NumIntRegs   = 8
	NumFloatRegs = 8
	// MaxStackArgs bounds the transient stack-argument area. Exceeding it is
	// the one deterministic dispatch-time failure: ErrTooManyArguments.
	MaxStackArgs = 16
)

// Frame is the register and stack image consumed by the raw-call stubs and
// the place the return registers are captured into. The assembly in
// call_*.s addresses fields by byte offset:
//
//	Ints    +0
//	Floats  +64
//	Stack   +128
//	NStack  +256
//	NFloat  +264
//	R0      +272
//	R1      +280
//	F0      +288
//
// Do not reorder or resize fields without updating the stubs.
type Frame struct {
	Ints   [NumIntRegs]uintptr
	Floats [NumFloatRegs]uint64
	Stack  [MaxStackArgs]uintptr
	NStack uintptr
	// NFloat is the number of occupied float registers. System V varargs
	// callees read it from AL.
	NFloat uintptr
	// Return registers, captured verbatim after the call: RAX/RDX/XMM0 on
	// amd64, x0/x1/d0 on arm64. Valid until the next dispatch reuses the
	// frame's backing context.
	R0 uintptr
	R1 uintptr
	F0 uint64
}

// calleeStackDepth * ~1KiB of goroutine stack is grown before transferring
// control, since the callee runs below the stub's stack pointer without the
// runtime's grow checks.
const calleeStackDepth = 64

// reserveStack forces the goroutine stack to grow so the callee has
// headroom. The segment stays in place for the duration of the call: the
// runtime cannot move a stack while an assembly frame is active on it.
//
//go:noinline
func reserveStack(depth int) uint8 {
	var pad [1024]uint8
	pad[0] = uint8(depth)
	if depth <= 0 {
		return pad[0]
	}
	return reserveStack(depth-1) + pad[len(pad)-1]
}
