package abi

import (
	"errors"
	"math"
	"testing"
	"unsafe"
)

func intArg(v uint64) Arg { return Arg{Kind: Int64, Bits: v} }

func floatArg(v float64) Arg {
	return Arg{Kind: Float64, Bits: math.Float64bits(v)}
}

func TestBuildPartitionsByClass(t *testing.T) {
	l := &layout{name: "test", intRegs: 6, floatRegs: 8}

	var args []Arg
	for i := 0; i < 8; i++ {
		args = append(args, intArg(uint64(i+1)))
	}
	args = append(args, floatArg(1.5), floatArg(2.5))

	f, err := l.build(args)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	for i := 0; i < 6; i++ {
		if got, want := f.Ints[i], uintptr(i+1); got != want {
			t.Fatalf("Ints[%d]=%d, want %d", i, got, want)
		}
	}
	// Integer arguments 7 and 8 overflow to the stack in push order.
	if got, want := f.NStack, uintptr(2); got != want {
		t.Fatalf("NStack=%d, want %d", got, want)
	}
	if f.Stack[0] != 7 || f.Stack[1] != 8 {
		t.Fatalf("Stack=[%d %d], want [7 8]", f.Stack[0], f.Stack[1])
	}
	// Floats land in the float file regardless of how many integers came
	// before them.
	if got, want := f.Floats[0], math.Float64bits(1.5); got != want {
		t.Fatalf("Floats[0]=%#x, want %#x", got, want)
	}
	if got, want := f.Floats[1], math.Float64bits(2.5); got != want {
		t.Fatalf("Floats[1]=%#x, want %#x", got, want)
	}
	if got, want := f.NFloat, uintptr(2); got != want {
		t.Fatalf("NFloat=%d, want %d", got, want)
	}
}

func TestBuildFloatOverflowGoesToStack(t *testing.T) {
	l := &layout{name: "test", intRegs: 6, floatRegs: 2}

	f, err := l.build([]Arg{floatArg(1), floatArg(2), floatArg(3)})
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if got, want := f.NFloat, uintptr(2); got != want {
		t.Fatalf("NFloat=%d, want %d", got, want)
	}
	if got, want := f.NStack, uintptr(1); got != want {
		t.Fatalf("NStack=%d, want %d", got, want)
	}
	if got, want := uint64(f.Stack[0]), math.Float64bits(3); got != want {
		t.Fatalf("Stack[0]=%#x, want %#x", got, want)
	}
}

func TestBuildPositionalMirrorsFloats(t *testing.T) {
	// x64-style: four positional register slots, floats mirrored into both
	// files.
	l := &layout{name: "test", intRegs: 4, floatRegs: 4, positional: true}

	f, err := l.build([]Arg{intArg(10), floatArg(2.5), intArg(30), intArg(40), intArg(50)})
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if f.Ints[0] != 10 || f.Ints[2] != 30 || f.Ints[3] != 40 {
		t.Fatalf("Ints=%v, want positions 0,2,3 = 10,30,40", f.Ints)
	}
	if got, want := uint64(f.Ints[1]), math.Float64bits(2.5); got != want {
		t.Fatalf("Ints[1]=%#x, want float bits %#x", got, want)
	}
	if got, want := f.Floats[1], math.Float64bits(2.5); got != want {
		t.Fatalf("Floats[1]=%#x, want %#x", got, want)
	}
	if f.Floats[0] != 0 || f.Floats[2] != 0 || f.Floats[3] != 0 {
		t.Fatalf("integer positions leaked into the float file: %v", f.Floats)
	}
	if got, want := f.NStack, uintptr(1); got != want {
		t.Fatalf("NStack=%d, want %d", got, want)
	}
	if got, want := f.Stack[0], uintptr(50); got != want {
		t.Fatalf("Stack[0]=%d, want %d", got, want)
	}
}

func TestBuildTooManyArguments(t *testing.T) {
	l := &layout{name: "test", intRegs: 6, floatRegs: 8}

	var args []Arg
	for i := 0; i < 64; i++ {
		args = append(args, intArg(uint64(i)))
	}
	_, err := l.build(args)
	if !errors.Is(err, ErrTooManyArguments) {
		t.Fatalf("build err=%v, want ErrTooManyArguments", err)
	}
}

func TestBuildExactCapacity(t *testing.T) {
	l := &layout{name: "test", intRegs: 6, floatRegs: 8}

	var args []Arg
	for i := 0; i < 6+MaxStackArgs; i++ {
		args = append(args, intArg(uint64(i)))
	}
	if _, err := l.build(args); err != nil {
		t.Fatalf("build at exact capacity failed: %v", err)
	}
	args = append(args, intArg(99))
	if _, err := l.build(args); !errors.Is(err, ErrTooManyArguments) {
		t.Fatalf("build one past capacity err=%v, want ErrTooManyArguments", err)
	}
}

func TestParseConvention(t *testing.T) {
	for _, name := range []string{"cdecl", "stdcall", "fastcall", "win64", "aapcs64"} {
		c, err := ParseConvention(name)
		if err != nil {
			t.Fatalf("ParseConvention(%q) failed: %v", name, err)
		}
		if c.String() != name {
			t.Fatalf("ParseConvention(%q).String()=%q", name, c.String())
		}
	}
	if _, err := ParseConvention("pascal"); !errors.Is(err, ErrUnsupportedConvention) {
		t.Fatalf("ParseConvention(pascal) err=%v, want ErrUnsupportedConvention", err)
	}
}

func TestBuildFlattensPointerPayloads(t *testing.T) {
	l := &layout{name: "test", intRegs: 6, floatRegs: 8}

	v := new(int64)
	f, err := l.build([]Arg{{Kind: Pointer, Ptr: unsafe.Pointer(v)}})
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if got, want := f.Ints[0], uintptr(unsafe.Pointer(v)); got != want {
		t.Fatalf("Ints[0]=%#x, want %#x", got, want)
	}
}

func TestKindClasses(t *testing.T) {
	floats := map[Kind]bool{Float32: true, Float64: true}
	for k := Int8; k <= Float64; k++ {
		if got, want := k.FloatClass(), floats[k]; got != want {
			t.Fatalf("%s.FloatClass()=%v, want %v", k, got, want)
		}
	}
}
