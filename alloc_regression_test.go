package rawprint

import "testing"

// Regression: the raw write path must allocate 0 bytes per call. The package
// exists for panic, signal, and teardown paths where the allocator may be
// unusable, so any allocation here is a bug.
func TestWritePathAllocatesZero(t *testing.T) {
	swapRawWrite(t, func(fd int, p []byte) (int, bool) {
		return len(p), true
	})

	w := NewWriter(Stdout)
	payload := []byte("zero allocation write path")

	if allocs := testing.AllocsPerRun(1000, func() {
		_, _ = w.Write(payload)
	}); allocs != 0 {
		t.Fatalf("Write: expected 0 allocs, got %.2f", allocs)
	}

	if allocs := testing.AllocsPerRun(1000, func() {
		_, _ = w.WriteString("zero allocation write path")
		w.Newline()
	}); allocs != 0 {
		t.Fatalf("WriteString+Newline: expected 0 allocs, got %.2f", allocs)
	}

	if allocs := testing.AllocsPerRun(1000, func() {
		Print("literal fast path")
	}); allocs != 0 {
		t.Fatalf("Print fast path: expected 0 allocs, got %.2f", allocs)
	}

	if allocs := testing.AllocsPerRun(1000, func() {
		Eprintln("literal fast path")
	}); allocs != 0 {
		t.Fatalf("Eprintln fast path: expected 0 allocs, got %.2f", allocs)
	}
}
