//go:build (linux || darwin) && arm64

package native

import "encoding/binary"

// Hand-assembled AAPCS64 callees with known signatures, used as dispatch
// targets by the tests. Each is a leaf function.

// NSumArgs is how many int64 arguments Sum takes on this target: 8
// register-class plus 2 stack-class.
const NSumArgs = 10

// FirstStackArgIndex is the zero-based position of the first integer
// argument that lands on the stack.
const FirstStackArgIndex = 8

const ret = 0xD65F03C0

func words(ws ...uint32) []byte {
	out := make([]byte, 0, len(ws)*4)
	var buf [4]byte
	for _, w := range ws {
		binary.LittleEndian.PutUint32(buf[:], w)
		out = append(out, buf[:]...)
	}
	return out
}

var (
	// EchoInt: func(a int64) int64 { return a }  (x0 passes through)
	EchoInt = words(ret)

	// EchoFloat64: func(a float64) float64 { return a }  (d0 passes through)
	EchoFloat64 = words(ret)

	// EchoFloat32: func(a float32) float32 { return a }  (s0 passes through)
	EchoFloat32 = words(ret)

	// SecondFloat64: func(a, b float64) float64 { return b }
	//   fmov d0, d1; ret
	SecondFloat64 = words(0x1E604020, ret)

	// FirstStackArg: func(a0..a8 int64) int64 { return a8 }
	// The 9th integer argument is the first stack slot.
	//   ldr x0, [sp]; ret
	FirstStackArg = words(0xF94003E0, ret)

	// StoreInt64: func(dst *int64, v int64) { *dst = v }
	//   str x1, [x0]; ret
	StoreInt64 = words(0xF9000001, ret)

	// AddInt32: func(a, b int32) int32 { return a + b }
	//   add w0, w0, w1; ret
	AddInt32 = words(0x0B010000, ret)

	// AddInt64: func(a, b int64) int64 { return a + b }
	//   add x0, x0, x1; ret
	AddInt64 = words(0x8B010000, ret)

	// AddFloat64: func(a, b float64) float64 { return a + b }
	//   fadd d0, d0, d1; ret
	AddFloat64 = words(0x1E612800, ret)

	// AddFloat32: func(a, b float32) float32 { return a + b }
	//   fadd s0, s0, s1; ret
	AddFloat32 = words(0x1E212800, ret)

	// AddInt32Float64: func(a int32, b float64) int32 { return a + int32(b) }
	// b truncates toward zero.
	//   fcvtzs w8, d0; add w0, w0, w8; ret
	AddInt32Float64 = words(0x1E780008, 0x0B080000, ret)

	// Sum: func(a0..a9 int64) int64 { return a0+...+a9 }
	// Exercises all eight integer registers and two stack slots.
	Sum = words(
		0x8B010000, // add x0, x0, x1
		0x8B020000, // add x0, x0, x2
		0x8B030000, // add x0, x0, x3
		0x8B040000, // add x0, x0, x4
		0x8B050000, // add x0, x0, x5
		0x8B060000, // add x0, x0, x6
		0x8B070000, // add x0, x0, x7
		0xF94003E9, // ldr x9, [sp]
		0x8B090000, // add x0, x0, x9
		0xF94007E9, // ldr x9, [sp, #8]
		0x8B090000, // add x0, x0, x9
		ret,
	)
)
