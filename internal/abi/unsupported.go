//go:build !((linux || darwin) && (amd64 || arm64)) && !(windows && amd64)

package abi

import (
	"fmt"
	"runtime"
)

func layoutFor(conv Convention) (*layout, error) {
	return nil, fmt.Errorf("%w: %s on %s/%s",
		ErrUnsupportedConvention, conv, runtime.GOOS, runtime.GOARCH)
}
