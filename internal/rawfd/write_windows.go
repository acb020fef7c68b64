//go:build windows

package rawfd

import (
	"math"
	"syscall"
)

// Write issues a single WriteFile against the standard handle named by fd.
// Only the conventional stdout/stderr descriptor numbers map to handles;
// anything else is no progress. Requests beyond the DWORD range are clamped,
// surfacing as a short write the caller's retry loop picks up.
func Write(fd int, p []byte) (int, bool) {
	if len(p) == 0 {
		return 0, false
	}
	var h syscall.Handle
	switch fd {
	case 1:
		h = syscall.Stdout
	case 2:
		h = syscall.Stderr
	default:
		return 0, false
	}
	n := len(p)
	if n > math.MaxInt32 {
		n = math.MaxInt32
	}
	var done uint32
	if err := syscall.WriteFile(h, p[:n], &done, nil); err != nil || done == 0 {
		return 0, false
	}
	return int(done), true
}
