//go:build linux || darwin

package native

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

func mapExec(code []byte) (uintptr, func(), error) {
	if len(code) == 0 {
		return 0, nil, fmt.Errorf("empty code")
	}

	pageSize := unix.Getpagesize()
	allocSize := ((len(code) + pageSize - 1) / pageSize) * pageSize

	mem, err := unix.Mmap(-1, 0, allocSize,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return 0, nil, fmt.Errorf("mmap code region: %w", err)
	}

	copy(mem, code)

	if err := unix.Mprotect(mem, unix.PROT_READ|unix.PROT_EXEC); err != nil {
		_ = unix.Munmap(mem)
		return 0, nil, fmt.Errorf("mprotect code region: %w", err)
	}

	return uintptr(unsafe.Pointer(&mem[0])), func() {
		_ = unix.Munmap(mem)
	}, nil
}
