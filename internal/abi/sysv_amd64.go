//go:build (linux || darwin) && amd64

package abi

import (
	"fmt"
	"runtime"
)

// System V AMD64: integer arguments in RDI,RSI,RDX,RCX,R8,R9, floats in
// XMM0-XMM7, the rest on the stack in 8-byte slots, caller cleanup. AL
// carries the vector-register count for variadic callees.
var sysv = &layout{
	name:      "sysv64",
	intRegs:   6,
	floatRegs: 8,
	invoke:    sysvCall,
}

func layoutFor(conv Convention) (*layout, error) {
	switch conv {
	case Cdecl:
		return sysv, nil
	default:
		return nil, fmt.Errorf("%w: %s on %s/%s",
			ErrUnsupportedConvention, conv, runtime.GOOS, runtime.GOARCH)
	}
}

// Implemented in call_amd64.s.
//
//go:noescape
func sysvCall(entry uintptr, frame *Frame)
