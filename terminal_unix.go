//go:build unix

package rawprint

import "golang.org/x/term"

func isTerminalFd(fd int) bool {
	return term.IsTerminal(fd)
}
