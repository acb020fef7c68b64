package rawprint

import (
	"unsafe"

	"pkt.systems/rawprint/internal/rawfd"
)

// Stream identifies one of the process's standard streams by its
// conventional descriptor number. Exactly two values are meaningful for the
// lifetime of the process; they are never opened or closed by this package.
type Stream int32

const (
	// Stdout is the standard output stream, descriptor 1 by OS convention.
	Stdout Stream = 1
	// Stderr is the standard error stream, descriptor 2 by OS convention.
	Stderr Stream = 2
)

const newline = "\n"

// rawWrite is the single-shot descriptor write. The indirection is a test
// seam; outside of tests it is always rawfd.Write.
var rawWrite = rawfd.Write

// Writer is a best-effort byte sink bound to one standard stream. It holds
// nothing beyond the stream identity: no buffer, no descriptor ownership, no
// Close obligation. Construct one with NewWriter, use it, drop it.
type Writer struct {
	stream Stream
}

// NewWriter returns a Writer bound to s.
func NewWriter(s Stream) Writer {
	return Writer{stream: s}
}

// Write pushes p to the stream, reissuing the descriptor write until every
// byte has been accepted or the stream stops making progress, at which point
// the rest is dropped. Write always reports len(p) consumed and a nil error
// so a formatter draining fragments into it never aborts mid-output.
func (w Writer) Write(p []byte) (int, error) {
	w.writeAll(p)
	return len(p), nil
}

// WriteString writes s through the same retry loop without copying it into a
// fresh byte slice first.
func (w Writer) WriteString(s string) (int, error) {
	w.writeAll(stringBytes(s))
	return len(s), nil
}

// Newline writes a single newline byte. Callers that only need a line
// terminator use this instead of going through a formatter.
func (w Writer) Newline() {
	w.writeAll(stringBytes(newline))
}

// writeAll advances a cursor over p, handing the remaining suffix to the raw
// primitive until the slice is exhausted or the primitive reports no
// progress. The cursor strictly increases on every accepted write, so the
// loop terminates after at most len(p) iterations.
func (w Writer) writeAll(p []byte) {
	for off := 0; off < len(p); {
		n, ok := rawWrite(int(w.stream), p[off:])
		if !ok || n <= 0 {
			return
		}
		off += n
	}
}

// stringBytes aliases the bytes of s without copying. Safe here because the
// write path never retains or mutates the slice.
func stringBytes(s string) []byte {
	if s == "" {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
