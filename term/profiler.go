// Copyright © 2026 The curt authors

package term

// Version of the curt language.
const CurtVersion = "0.1"

// Profiler is notified around operator and lambda applications during a
// reduction.
type Profiler interface {
	// Is the profiler enabled?
	IsEnabled() bool
	// Enable the profiler
	Enable() error
	// End the profiling session
	Complete() error
	// Start marks the start of an application and returns a function
	// marking its end.
	Start(fun *Term) func()
}
