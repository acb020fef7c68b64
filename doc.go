// Package rawprint provides best-effort formatted output straight to the
// process's standard output and standard error descriptors, bypassing the
// runtime's buffered stdio and allocating nothing on the write path.
//
// It is meant for the places where ordinary printing is unsafe or
// unavailable: very early startup, signal handlers, panic and teardown
// paths, and minimal execution environments without a working allocator.
// Every call is self-contained: no global buffers, no open-handle state,
// no initialization order to get wrong.
//
// # Design overview
//
//   - Raw write primitive: internal/rawfd issues exactly one OS write per
//     call and collapses every failure mode (error, zero-byte result) into a
//     single "no progress" outcome that is never inspected further.
//   - Retrying sink: Writer pushes a byte slice through the primitive with a
//     cursor, reissuing the write until the whole slice is accepted or the
//     stream stops making progress, then gives up silently.
//   - Stateless dispatch: Print, Println, Eprint and Eprintln construct a
//     fresh Writer per call. Format strings without arguments skip fmt
//     entirely and go out as raw bytes.
//
// Failures are swallowed by contract: nothing on the print surface panics,
// returns an error, or allocates to describe one. On failure the output is
// truncated or absent, which is the documented trade-off for remaining
// usable where raising an error is itself unsafe.
//
// # Usage
//
//	rawprint.Println("pid %d ready", os.Getpid())
//	rawprint.Eprintln("giving up")
//
// The Dbg helpers annotate a value with its call site and source expression,
// write it to standard error in a multi-line dump format, and hand the value
// back unchanged:
//
//	total := rawprint.Dbg(base + tax)
//
// Concurrent callers are not serialized; interleaving at the descriptor
// level matches whatever the OS stream does, exactly as with write(2).
package rawprint
