//go:build (linux || darwin) && (amd64 || arm64)

package native

import "testing"

func TestMap(t *testing.T) {
	entry, release, err := Map(EchoInt)
	if err != nil {
		t.Fatalf("Map failed: %v", err)
	}
	defer release()
	if entry == 0 {
		t.Fatal("Map returned a nil entry")
	}
}

func TestMapEmpty(t *testing.T) {
	if _, _, err := Map(nil); err == nil {
		t.Fatal("Map(nil) succeeded, want error")
	}
}

func TestMapIndependentRegions(t *testing.T) {
	e1, r1, err := Map(EchoInt)
	if err != nil {
		t.Fatalf("Map failed: %v", err)
	}
	defer r1()
	e2, r2, err := Map(EchoInt)
	if err != nil {
		t.Fatalf("Map failed: %v", err)
	}
	defer r2()
	if e1 == e2 {
		t.Fatalf("two mappings share entry %#x", e1)
	}
}
