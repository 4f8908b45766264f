package abi

import "errors"

// Dispatch-time failures. Both are reported before any control transfer;
// a failed dispatch performs no call.
var (
	ErrTooManyArguments      = errors.New("too many stack-class arguments")
	ErrUnsupportedConvention = errors.New("unsupported calling convention")
)
