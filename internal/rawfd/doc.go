// Package rawfd issues single-shot writes against raw descriptor numbers,
// normalizing each OS's return convention into "bytes accepted" or "no
// progress". Errors are collapsed into the no-progress result and never
// inspected, so the caller has nothing to format and nothing to allocate.
package rawfd
