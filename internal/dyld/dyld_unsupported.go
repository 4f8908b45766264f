//go:build !linux && !darwin && !windows

package dyld

import (
	"fmt"
	"runtime"
)

func dlopen(path string) (uintptr, error) {
	return 0, fmt.Errorf("dynamic loading not supported on %s", runtime.GOOS)
}

func dlsym(handle uintptr, name string) (uintptr, error) {
	return 0, fmt.Errorf("dynamic loading not supported on %s", runtime.GOOS)
}

func dlclose(handle uintptr) error {
	return nil
}
