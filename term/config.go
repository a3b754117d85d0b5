// Copyright © 2026 The curt authors

package term

// Config is a function that configures an interpreter.
type Config func(in *Interp)

// WithMaximumDepth returns a Config that prevents an interpreter from
// allowing the reduction depth to exceed n.  A reduction that would
// exceed the ceiling fails with a depth-error.  Passing n <= 0 removes
// the ceiling entirely, leaving deeply nested programs to the mercy of
// the host stack.
func WithMaximumDepth(n int) Config {
	return func(in *Interp) {
		in.maxDepth = n
	}
}

// WithProfiler returns a Config that makes an interpreter notify p around
// every operator and lambda application.
func WithProfiler(p Profiler) Config {
	return func(in *Interp) {
		in.profiler = p
	}
}
