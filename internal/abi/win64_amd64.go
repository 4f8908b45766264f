//go:build windows && amd64

package abi

import (
	"fmt"
	"runtime"
)

// The x64 convention: the first four arguments in RCX,RDX,R8,R9 with floats
// mirrored into XMM0-XMM3 by position, a 32-byte shadow area, the rest on
// the stack in 8-byte slots, caller cleanup. Mirroring float bits into both
// register files makes variadic callees work without signature knowledge.
//
// Stdcall, fastcall and cdecl all collapse into this single convention on
// 64-bit Windows, so every selector maps to the same table.
var win64 = &layout{
	name:       "win64",
	intRegs:    4,
	floatRegs:  4,
	positional: true,
	invoke:     win64Call,
}

func layoutFor(conv Convention) (*layout, error) {
	switch conv {
	case Cdecl, Stdcall, Fastcall, Win64:
		return win64, nil
	default:
		return nil, fmt.Errorf("%w: %s on %s/%s",
			ErrUnsupportedConvention, conv, runtime.GOOS, runtime.GOARCH)
	}
}

// Implemented in call_windows_amd64.s.
//
//go:noescape
func win64Call(entry uintptr, frame *Frame)
