// Copyright © 2026 The curt authors

package profiler

import (
	"github.com/curtlang/curt/term"
)

// SkipFilter reports whether an application of fun should be left out of
// the trace.
type SkipFilter func(fun *term.Term) bool

func defaultSkipFilter(fun *term.Term) bool {
	switch fun.Type {
	case term.TOperator, term.TLambda:
		return false
	case term.TInt, term.TSymbol, term.TList, term.TError:
		return true
	default:
		return true
	}
}

// WithSkipFilter sets the filter for tracing spans.
func WithSkipFilter(skipFilter SkipFilter) Option {
	return func(p *profiler) {
		p.skipFilter = skipFilter
	}
}

// WithArithmeticOnly filters to only include spans for arithmetic
// operator applications.
func WithArithmeticOnly() Option {
	return WithSkipFilter(func(fun *term.Term) bool {
		if fun.Type != term.TOperator {
			return true
		}
		switch fun.Op {
		case term.OpPlus, term.OpSubtract, term.OpMultiply, term.OpDivide:
			return false
		}
		return true
	})
}
