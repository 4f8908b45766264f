//go:build (linux || darwin) && arm64

package abi

import (
	"fmt"
	"runtime"
)

// AAPCS64: integer arguments in x0-x7, floats in d0-d7, the rest on the
// stack in 8-byte slots with the stack pointer kept 16-byte aligned,
// caller cleanup.
//
// Apple's arm64 ABI passes variadic arguments on the stack instead; callers
// invoking variadic functions on darwin must account for that themselves
// (the dispatcher has no signature to consult).
var aapcs = &layout{
	name:      "aapcs64",
	intRegs:   8,
	floatRegs: 8,
	invoke:    aapcsCall,
}

func layoutFor(conv Convention) (*layout, error) {
	switch conv {
	case Cdecl, AAPCS64:
		return aapcs, nil
	default:
		return nil, fmt.Errorf("%w: %s on %s/%s",
			ErrUnsupportedConvention, conv, runtime.GOOS, runtime.GOARCH)
	}
}

// Implemented in call_arm64.s.
//
//go:noescape
func aapcsCall(entry uintptr, frame *Frame)
