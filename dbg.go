package rawprint

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

const unknownFile = "unknown"

// Here writes the calling source location alone to standard error, as
// "[file:line]" with a trailing newline. Useful as a breadcrumb in paths
// where a full debugger is unavailable.
func Here() {
	file, line := callerSite(1)
	w := NewWriter(Stderr)
	_, _ = fmt.Fprintf(w, "[%s:%d]", shortFile(file), line)
	w.Newline()
}

// Dbg writes the calling source location, the argument's source expression,
// and a multi-line dump of v to standard error, then returns v unchanged so
// it can wrap any expression in place:
//
//	total := rawprint.Dbg(base + tax)
//
// emits something like
//
//	[checkout.go:42] base + tax = (int) 117
//
// The expression text is recovered from the caller's source file when it is
// readable; otherwise the annotation degrades to location and value. The
// value dump deliberately uses a verbose multi-line format distinct from the
// plain rendering of Print, trading compactness for debugging readability.
func Dbg[T any](v T) T {
	file, line := callerSite(1)
	exprs := callArgExprs(file, line, 1)
	emitDbg(shortFile(file), line, exprAt(exprs, 0), v)
	return v
}

// Dbg2 applies Dbg to both arguments left to right, one annotated line each,
// and returns them in order.
func Dbg2[A, B any](a A, b B) (A, B) {
	file, line := callerSite(1)
	exprs := callArgExprs(file, line, 2)
	short := shortFile(file)
	emitDbg(short, line, exprAt(exprs, 0), a)
	emitDbg(short, line, exprAt(exprs, 1), b)
	return a, b
}

// Dbg3 applies Dbg to all three arguments left to right and returns them in
// order. For wider call sites, chain Dbg per value.
func Dbg3[A, B, C any](a A, b B, c C) (A, B, C) {
	file, line := callerSite(1)
	exprs := callArgExprs(file, line, 3)
	short := shortFile(file)
	emitDbg(short, line, exprAt(exprs, 0), a)
	emitDbg(short, line, exprAt(exprs, 1), b)
	emitDbg(short, line, exprAt(exprs, 2), c)
	return a, b, c
}

func emitDbg(short string, line int, expr string, v any) {
	w := NewWriter(Stderr)
	if expr == "" {
		_, _ = fmt.Fprintf(w, "[%s:%d] %s", short, line, dumpValue(v))
	} else {
		_, _ = fmt.Fprintf(w, "[%s:%d] %s = %s", short, line, expr, dumpValue(v))
	}
	w.Newline()
}

// dumpValue renders v in spew's multi-line dump format, without the dump's
// own trailing newline so emitDbg controls line termination.
func dumpValue(v any) string {
	return strings.TrimRight(spew.Sdump(v), "\n")
}

// callerSite returns the full path and line of the caller skip frames up.
func callerSite(skip int) (string, int) {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "", 0
	}
	return file, line
}

func shortFile(file string) string {
	if file == "" {
		return unknownFile
	}
	if i := strings.LastIndexByte(file, '/'); i >= 0 {
		file = file[i+1:]
	}
	if file == "" {
		return unknownFile
	}
	return file
}

func exprAt(exprs []string, i int) string {
	if i < 0 || i >= len(exprs) {
		return ""
	}
	return exprs[i]
}

// dbgCallLineSpan caps how many source lines past the call line are joined
// when balancing a multi-line call's parentheses.
const dbgCallLineSpan = 8

var dbgCallNames = []string{"Dbg2", "Dbg3", "Dbg"}

// callArgExprs recovers the argument expressions of the Dbg call at
// file:line by scanning the source text. Best effort only: it returns nil
// when the file is unreadable, the call cannot be located, or the argument
// count does not match want.
func callArgExprs(file string, line int, want int) []string {
	if file == "" || line <= 0 {
		return nil
	}
	src, err := os.ReadFile(file)
	if err != nil {
		return nil
	}
	lines := strings.Split(string(src), "\n")
	if line > len(lines) {
		return nil
	}
	end := min(line+dbgCallLineSpan, len(lines))
	text := strings.Join(lines[line-1:end], "\n")
	open := callOpenParen(text)
	if open < 0 {
		return nil
	}
	args, ok := splitCallArgs(text[open+1:])
	if !ok || len(args) != want {
		return nil
	}
	return args
}

// callOpenParen locates the opening parenthesis of the earliest Dbg-family
// call in text, skipping an explicit type-argument list when present.
func callOpenParen(text string) int {
	bestName := len(text)
	bestParen := -1
	for _, name := range dbgCallNames {
		from := 0
		for {
			i := strings.Index(text[from:], name)
			if i < 0 {
				break
			}
			i += from
			from = i + len(name)
			if i >= bestName {
				break
			}
			if i > 0 && isIdentByte(text[i-1]) {
				continue
			}
			j := i + len(name)
			if j < len(text) && text[j] == '[' {
				depth := 0
				for ; j < len(text); j++ {
					if text[j] == '[' {
						depth++
					} else if text[j] == ']' {
						depth--
						if depth == 0 {
							j++
							break
						}
					}
				}
			}
			if j < len(text) && text[j] == '(' {
				bestName = i
				bestParen = j
				break
			}
		}
	}
	return bestParen
}

// splitCallArgs splits the text following a call's opening parenthesis on
// top-level commas, up to the matching close. It tracks bracket nesting and
// string/rune literals so commas inside them do not split.
func splitCallArgs(text string) ([]string, bool) {
	var args []string
	depth := 0
	start := 0
	for i := 0; i < len(text); i++ {
		switch c := text[i]; c {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			if depth == 0 && c == ')' {
				tail := normalizeExpr(text[start:i])
				if tail != "" {
					args = append(args, tail)
				}
				return args, true
			}
			depth--
		case ',':
			if depth == 0 {
				args = append(args, normalizeExpr(text[start:i]))
				start = i + 1
			}
		case '"', '\'', '`':
			end := skipLiteral(text, i, c)
			if end < 0 {
				return nil, false
			}
			i = end
		}
	}
	return nil, false
}

// normalizeExpr trims expr and flattens the line breaks of a multi-line
// argument into single spaces.
func normalizeExpr(expr string) string {
	expr = strings.TrimSpace(expr)
	if strings.ContainsAny(expr, "\n\t") {
		expr = strings.Join(strings.Fields(expr), " ")
	}
	return expr
}

// skipLiteral returns the index of the closing quote of the literal opened
// at text[i], honoring backslash escapes outside raw strings, or -1 when the
// literal never closes.
func skipLiteral(text string, i int, quote byte) int {
	for j := i + 1; j < len(text); j++ {
		switch text[j] {
		case '\\':
			if quote != '`' {
				j++
			}
		case quote:
			return j
		}
	}
	return -1
}

func isIdentByte(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
