//go:build unix

package rawfd

import "golang.org/x/sys/unix"

// Write issues a single write(2) against fd. It returns the number of bytes
// the kernel accepted and whether any progress was made. No retry happens at
// this layer.
func Write(fd int, p []byte) (int, bool) {
	if len(p) == 0 {
		return 0, false
	}
	n, err := unix.Write(fd, p)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
