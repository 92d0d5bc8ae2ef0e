// Package enforce halts the program when an internal invariant breaks.
//
// It is reserved for programming errors: a corrupted adjacency structure or a
// lookup the construction guarantees can never miss. Input problems are
// reported as ordinary errors by the packages that accept input.
package enforce

import "fmt"

// That panics with a formatted message when cond is false.
func That(cond bool, format string, args ...any) {
	if !cond {
		panic("enforce: " + fmt.Sprintf(format, args...))
	}
}

// NoError panics if err is non-nil.
func NoError(err error, context string) {
	if err != nil {
		panic(fmt.Errorf("enforce: %s: %w", context, err))
	}
}
