// Copyright © 2026 The curt authors

package profiler

import (
	"context"
	"errors"

	"github.com/curtlang/curt/term"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// ContextOpenTelemetryTracerKey looks up a parent tracer name from a
	// context key.
	ContextOpenTelemetryTracerKey = "otelParentTracer"
)

var _ term.Profiler = &otelAnnotator{}

type otelAnnotator struct {
	profiler
	currentContext context.Context
	currentSpan    trace.Span
}

// NewOpenTelemetryAnnotator returns a term.Profiler that emits one
// OpenTelemetry span per operator or lambda application.
func NewOpenTelemetryAnnotator(parentContext context.Context, opts ...Option) *otelAnnotator {
	p := &otelAnnotator{
		currentContext: parentContext,
	}
	p.profiler.applyConfigs(opts...)
	return p
}

func (p *otelAnnotator) Enable() error {
	if p.currentContext == nil {
		return errors.New("we can only append spans to a context that is linked to opentelemetry")
	}
	return p.profiler.Enable()
}

func (p *otelAnnotator) Complete() error {
	if p.currentSpan != nil {
		p.currentSpan.End()
	}
	return nil
}

func contextTracer(ctx context.Context) trace.Tracer {
	tracerName, ok := ctx.Value(ContextOpenTelemetryTracerKey).(string)
	if !ok {
		tracerName = "curt"
	}
	return otel.GetTracerProvider().Tracer(tracerName)
}

func (p *otelAnnotator) Start(fun *term.Term) func() {
	if p.skipTrace(fun) {
		return func() {}
	}
	oldContext := p.currentContext
	p.currentContext, p.currentSpan = contextTracer(p.currentContext).Start(p.currentContext, p.label(fun))
	p.addTermAttributes(fun)
	return func() {
		p.currentSpan.End()
		// And pop the current context back
		p.currentContext = oldContext
		p.currentSpan = trace.SpanFromContext(p.currentContext)
	}
}

func (p *otelAnnotator) addTermAttributes(fun *term.Term) {
	p.currentSpan.SetAttributes(
		attribute.String("curt.term.type", fun.Type.String()),
		attribute.String("curt.term", defaultFunLabel(fun)),
	)
}
