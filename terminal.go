package rawprint

// IsTerminal reports whether the stream is attached to a terminal. Callers
// layering colour or prompts over this package can gate on it; nothing on
// the write path consults it.
func IsTerminal(s Stream) bool {
	switch s {
	case Stdout, Stderr:
		return isTerminalFd(int(s))
	default:
		return false
	}
}
