// Package zc (zero-copy) holds the opt-in policy for handing out views
// into a decode buffer instead of copies. Views are only valid while
// the caller keeps the buffer alive and unmodified.
package zc

import "unsafe"

// Options contains runtime flags controlling zero-copy behaviour.
type Options struct {
	// UnsafeStrings lets text fields alias the input buffer.
	UnsafeStrings bool
}

// String converts b to a string, without copying when UnsafeStrings
// is set.
func (o Options) String(b []byte) string {
	if !o.UnsafeStrings || len(b) == 0 {
		return string(b)
	}
	return unsafe.String(&b[0], len(b))
}
