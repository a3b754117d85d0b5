// Copyright © 2026 The curt authors

// Package profiler provides span annotators that trace term reduction.
// An annotator emits one span per operator or lambda application, labeled
// with the applied term's rendering.
package profiler

import (
	"fmt"

	"github.com/curtlang/curt/term"
)

// profiler is a minimal term.Profiler
type profiler struct {
	enabled    bool
	skipFilter SkipFilter
	funLabeler FunLabeler
}

var _ term.Profiler = &profiler{}

func (p *profiler) IsEnabled() bool {
	return p.enabled
}

// Option configures an annotator.
type Option func(*profiler)

func (p *profiler) applyConfigs(opts ...Option) {
	for _, opt := range opts {
		opt(p)
	}
}

func (p *profiler) Enable() error {
	if p.enabled {
		return fmt.Errorf("profiler already enabled")
	}
	p.enabled = true
	return nil
}

func (p *profiler) Complete() error {
	return nil
}

func (p *profiler) Start(fun *term.Term) func() {
	return func() {}
}

// label returns the span label for an application of fun.
func (p *profiler) label(fun *term.Term) string {
	label := ""
	if p.funLabeler != nil {
		label = p.funLabeler(fun)
	}
	if label == "" {
		label = defaultFunLabel(fun)
	}
	return label
}

// skipTrace is a helper function to decide whether to skip tracing.
func (p *profiler) skipTrace(v *term.Term) bool {
	return !p.enabled || defaultSkipFilter(v) || p.skipFilter != nil && p.skipFilter(v)
}
