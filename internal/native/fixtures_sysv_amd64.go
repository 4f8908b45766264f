//go:build (linux || darwin) && amd64

package native

// Hand-assembled System V AMD64 callees with known signatures, used as
// dispatch targets by the tests. Each is a leaf function.

// NSumArgs is how many int64 arguments Sum takes on this target: 6
// register-class plus 2 stack-class.
const NSumArgs = 8

// FirstStackArgIndex is the zero-based position of the first integer
// argument that lands on the stack.
const FirstStackArgIndex = 6

var (
	// EchoInt: func(a int64) int64 { return a }
	//   mov rax, rdi; ret
	EchoInt = []byte{0x48, 0x89, 0xF8, 0xC3}

	// EchoFloat64: func(a float64) float64 { return a }
	// xmm0 passes straight through.
	EchoFloat64 = []byte{0xC3}

	// EchoFloat32: func(a float32) float32 { return a }
	// Low lane of xmm0 passes straight through.
	EchoFloat32 = []byte{0xC3}

	// SecondFloat64: func(a, b float64) float64 { return b }
	//   movaps xmm0, xmm1; ret
	SecondFloat64 = []byte{0x0F, 0x28, 0xC1, 0xC3}

	// FirstStackArg: func(a0..a6 int64) int64 { return a6 }
	// The 7th integer argument is the first stack slot.
	//   mov rax, [rsp+8]; ret
	FirstStackArg = []byte{0x48, 0x8B, 0x44, 0x24, 0x08, 0xC3}

	// StoreInt64: func(dst *int64, v int64) { *dst = v }
	//   mov [rdi], rsi; ret
	StoreInt64 = []byte{0x48, 0x89, 0x37, 0xC3}

	// AddInt32: func(a, b int32) int32 { return a + b }
	//   lea eax, [rdi+rsi]; ret
	AddInt32 = []byte{0x8D, 0x04, 0x37, 0xC3}

	// AddInt64: func(a, b int64) int64 { return a + b }
	//   lea rax, [rdi+rsi]; ret
	AddInt64 = []byte{0x48, 0x8D, 0x04, 0x37, 0xC3}

	// AddFloat64: func(a, b float64) float64 { return a + b }
	//   addsd xmm0, xmm1; ret
	AddFloat64 = []byte{0xF2, 0x0F, 0x58, 0xC1, 0xC3}

	// AddFloat32: func(a, b float32) float32 { return a + b }
	//   addss xmm0, xmm1; ret
	AddFloat32 = []byte{0xF3, 0x0F, 0x58, 0xC1, 0xC3}

	// AddInt32Float64: func(a int32, b float64) int32 { return a + int32(b) }
	// b truncates toward zero.
	//   cvttsd2si eax, xmm0; add eax, edi; ret
	AddInt32Float64 = []byte{0xF2, 0x0F, 0x2C, 0xC0, 0x01, 0xF8, 0xC3}

	// Sum: func(a0..a7 int64) int64 { return a0+...+a7 }
	// Exercises all six integer registers and two stack slots.
	//   lea rax, [rdi+rsi]
	//   add rax, rdx
	//   add rax, rcx
	//   add rax, r8
	//   add rax, r9
	//   add rax, [rsp+8]
	//   add rax, [rsp+16]
	//   ret
	Sum = []byte{
		0x48, 0x8D, 0x04, 0x37,
		0x48, 0x01, 0xD0,
		0x48, 0x01, 0xC8,
		0x4C, 0x01, 0xC0,
		0x4C, 0x01, 0xC8,
		0x48, 0x03, 0x44, 0x24, 0x08,
		0x48, 0x03, 0x44, 0x24, 0x10,
		0xC3,
	}
)
