package rawprint

import "fmt"

// Print writes format to standard output. With no args the string goes out
// verbatim as raw bytes, bypassing fmt entirely; otherwise it is expanded
// like fmt.Printf. Output is best-effort: failures truncate silently.
func Print(format string, args ...any) {
	fprint(NewWriter(Stdout), false, format, args)
}

// Println is Print with a trailing newline.
func Println(format string, args ...any) {
	fprint(NewWriter(Stdout), true, format, args)
}

// Eprint writes format to standard error, following the same rules as Print.
func Eprint(format string, args ...any) {
	fprint(NewWriter(Stderr), false, format, args)
}

// Eprintln is Eprint with a trailing newline.
func Eprintln(format string, args ...any) {
	fprint(NewWriter(Stderr), true, format, args)
}

// fprint is the single dispatch point behind the print surface: literal fast
// path when there is nothing to substitute, fmt as the formatting engine
// otherwise, newline appended through the sink rather than the formatter.
func fprint(w Writer, nl bool, format string, args []any) {
	if len(args) == 0 {
		_, _ = w.WriteString(format)
	} else {
		_, _ = fmt.Fprintf(w, format, args...)
	}
	if nl {
		w.Newline()
	}
}
