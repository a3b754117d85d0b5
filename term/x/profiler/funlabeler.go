// Copyright © 2026 The curt authors

package profiler

import (
	"github.com/curtlang/curt/term"
)

// FunLabeler provides an alternative name for a term label in the trace.
type FunLabeler func(fun *term.Term) string

// WithFunLabeler sets the labeler for tracing spans.
func WithFunLabeler(funLabeler FunLabeler) Option {
	return func(p *profiler) {
		p.funLabeler = funLabeler
	}
}

// maxLabelLen bounds span labels; a partially reduced lambda can render
// arbitrarily large.
const maxLabelLen = 64

func defaultFunLabel(fun *term.Term) string {
	label := ""
	switch fun.Type {
	case term.TOperator:
		label = fun.Op.String()
	case term.TLambda:
		label = "lambda " + fun.Params().String()
	default:
		label = fun.String()
	}
	if len(label) > maxLabelLen {
		label = label[:maxLabelLen-3] + "..."
	}
	return label
}
