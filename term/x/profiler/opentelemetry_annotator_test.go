// Copyright © 2026 The curt authors

package profiler_test

import (
	"context"
	"testing"

	"github.com/curtlang/curt/parser"
	"github.com/curtlang/curt/term"
	"github.com/curtlang/curt/term/x/profiler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

const testCurt = `((\ a \ b * (+ a b) (- a b)) 12 5)`

func evalSource(t *testing.T, in *term.Interp, source string) *term.Term {
	t.Helper()
	v, err := parser.ParseString(source)
	require.NoError(t, err)
	res, err := in.Eval(v)
	require.NoError(t, err)
	return res
}

func TestNewOpenTelemetryAnnotator(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()

	tp := trace.NewTracerProvider(
		trace.WithSyncer(exporter),
		trace.WithSampler(trace.AlwaysSample()),
	)
	t.Cleanup(func() {
		err := tp.Shutdown(context.Background())
		assert.NoError(t, err, "TracerProvider shutdown")
	})
	otel.SetTracerProvider(tp)

	ppa := profiler.NewOpenTelemetryAnnotator(context.Background())
	assert.NoError(t, ppa.Enable())
	in := term.New(term.WithProfiler(ppa))
	res := evalSource(t, in, testCurt)
	assert.Equal(t, "119", res.String())
	assert.NoError(t, ppa.Complete())

	spans := exporter.GetSpans()
	assert.GreaterOrEqual(t, len(spans), 3, "Expected at least three spans")
}

func TestNewOpenTelemetryAnnotatorSkip(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()

	tp := trace.NewTracerProvider(
		trace.WithSyncer(exporter),
		trace.WithSampler(trace.AlwaysSample()),
	)
	t.Cleanup(func() {
		err := tp.Shutdown(context.Background())
		assert.NoError(t, err, "TracerProvider shutdown")
	})
	otel.SetTracerProvider(tp)

	ppa := profiler.NewOpenTelemetryAnnotator(context.Background(),
		profiler.WithArithmeticOnly())
	assert.NoError(t, ppa.Enable())
	in := term.New(term.WithProfiler(ppa))
	evalSource(t, in, testCurt)
	assert.NoError(t, ppa.Complete())

	for _, span := range exporter.GetSpans() {
		assert.Contains(t, []string{"+", "-", "*"}, span.Name, "Expected arithmetic spans only")
	}
}

func TestOpenTelemetryAnnotatorRequiresContext(t *testing.T) {
	ppa := profiler.NewOpenTelemetryAnnotator(nil)
	assert.Error(t, ppa.Enable())
}
