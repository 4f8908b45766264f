//go:build !linux && !darwin && !windows

package native

import (
	"fmt"
	"runtime"
)

func mapExec(code []byte) (uintptr, func(), error) {
	return 0, nil, fmt.Errorf("executable mappings not supported on %s", runtime.GOOS)
}
