// Copyright © 2026 The curt authors

package profiler

import (
	"context"
	"errors"

	"github.com/curtlang/curt/term"
	"go.opencensus.io/trace"
)

var _ term.Profiler = &ocAnnotator{}

type ocAnnotator struct {
	profiler
	currentContext context.Context
	currentSpan    *trace.Span
	contexts       []context.Context
}

// NewOpenCensusAnnotator returns a term.Profiler that emits one
// OpenCensus span per operator or lambda application.
func NewOpenCensusAnnotator(parentContext context.Context, opts ...Option) *ocAnnotator {
	p := &ocAnnotator{
		currentContext: parentContext,
	}
	p.profiler.applyConfigs(opts...)
	return p
}

func (p *ocAnnotator) Enable() error {
	if p.currentContext == nil {
		return errors.New("we can only append spans to a context that is linked to opencensus")
	}
	return p.profiler.Enable()
}

func (p *ocAnnotator) Complete() error {
	if p.currentSpan != nil {
		p.currentSpan.End()
	}
	return nil
}

func (p *ocAnnotator) Start(fun *term.Term) func() {
	if p.skipTrace(fun) {
		return func() {}
	}
	p.contexts = append(p.contexts, p.currentContext)
	p.currentContext, p.currentSpan = trace.StartSpan(p.currentContext, p.label(fun))
	p.currentSpan.AddAttributes(trace.StringAttribute("curt.term.type", fun.Type.String()))
	return func() {
		p.currentSpan.End()
		n := len(p.contexts)
		p.currentContext = p.contexts[n-1]
		p.contexts = p.contexts[:n-1]
		p.currentSpan = trace.FromContext(p.currentContext)
	}
}
