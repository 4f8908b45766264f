//go:build windows

package native

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

func mapExec(code []byte) (uintptr, func(), error) {
	if len(code) == 0 {
		return 0, nil, fmt.Errorf("empty code")
	}

	addr, err := windows.VirtualAlloc(0, uintptr(len(code)),
		windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return 0, nil, fmt.Errorf("VirtualAlloc code region: %w", err)
	}

	dst := unsafe.Slice((*byte)(unsafe.Pointer(addr)), len(code))
	copy(dst, code)

	var old uint32
	if err := windows.VirtualProtect(addr, uintptr(len(code)),
		windows.PAGE_EXECUTE_READ, &old); err != nil {
		_ = windows.VirtualFree(addr, 0, windows.MEM_RELEASE)
		return 0, nil, fmt.Errorf("VirtualProtect code region: %w", err)
	}

	return addr, func() {
		_ = windows.VirtualFree(addr, 0, windows.MEM_RELEASE)
	}, nil
}
