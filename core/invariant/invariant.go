// Package invariant provides contract assertions for add2vals.
//
// Violations are programming errors, not user errors: every function here
// panics with a VIOLATION message that names the call site.
package invariant

import (
	"fmt"
	"runtime"
)

// Precondition checks an input contract at function entry.
//
// Example:
//
//	func Render(k Kind) string {
//	    invariant.Precondition(k.Valid(), "unknown kind %d", k)
//	    ...
//	}
func Precondition(condition bool, format string, args ...any) {
	if !condition {
		fail("PRECONDITION", format, args...)
	}
}

// Postcondition checks an output contract before function return.
func Postcondition(condition bool, format string, args ...any) {
	if !condition {
		fail("POSTCONDITION", format, args...)
	}
}

// Invariant checks internal consistency, typically in the default arm of a
// switch over a closed set of tags.
func Invariant(condition bool, format string, args ...any) {
	if !condition {
		fail("INVARIANT", format, args...)
	}
}

// fail panics with the violation kind, the message and the caller's file:line.
func fail(kind, format string, args ...any) {
	pc := make([]uintptr, 4)
	n := runtime.Callers(3, pc)
	frames := runtime.CallersFrames(pc[:n])

	msg := kind + " VIOLATION: " + fmt.Sprintf(format, args...)
	if frame, ok := frames.Next(); ok {
		msg += fmt.Sprintf("\n  at %s:%d", frame.File, frame.Line)
	}

	panic(msg)
}
