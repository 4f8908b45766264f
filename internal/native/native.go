// Package native places machine code into executable memory. It backs the
// test suite's known-signature callees and is useful anywhere a raw entry
// point is needed for dispatch.
package native

// Map copies code into a fresh executable mapping and returns its entry
// address plus a release func that unmaps it. The code must be
// position-independent; no relocation is applied.
func Map(code []byte) (uintptr, func(), error) {
	return mapExec(code)
}

// MustMap is Map for fixtures of known-good code. It panics on mapping
// failure.
func MustMap(code []byte) (uintptr, func()) {
	entry, release, err := mapExec(code)
	if err != nil {
		panic(err)
	}
	return entry, release
}
