// Copyright © 2026 The curt authors

// Package termtest provides a table-driven harness for testing term
// reduction through the textual surface.
package termtest

import (
	"fmt"
	"testing"

	"github.com/curtlang/curt/parser"
	"github.com/curtlang/curt/term"
)

// TestSequence is a sequence of termination conditions for sequential
// expression evaluations.
type TestSequence []struct {
	Expr   string // a curt expression
	Result string // the rendered result, empty when an error is expected
	Err    string // the expected error condition, empty on success
}

// TestSuite is a set of named TestSequences.
type TestSuite []struct {
	Name string
	TestSequence
}

// RunTestSuite runs each TestSequence in tests on isolated interpreters.
// Diagnostic output is routed through a Logger so that it interleaves
// with the standard test log.
func RunTestSuite(t *testing.T, tests TestSuite, cfg ...term.Config) {
	log := NewLogger(t)
	defer log.Flush()
	for i, test := range tests {
		fmt.Fprintf(log, "test %d -- %s\n", i, test.Name) //nolint:errcheck // diagnostic output
		in := term.New(cfg...)
		for j, expr := range test.TestSequence {
			v, err := parser.ParseString(expr.Expr)
			if err != nil {
				t.Errorf("test %d %q: expr %d: parse error: %v", i, test.Name, j, err)
				continue
			}
			res, err := in.Eval(v)
			if err != nil {
				if expr.Err == "" {
					t.Errorf("test %d %q: expr %d: unexpected error: %v", i, test.Name, j, err)
				} else if term.Condition(err) != expr.Err {
					t.Errorf("test %d %q: expr %d: expected condition %s (got %v)", i, test.Name, j, expr.Err, err)
				}
				continue
			}
			if expr.Err != "" {
				t.Errorf("test %d %q: expr %d: expected condition %s (got result %s)", i, test.Name, j, expr.Err, res)
				continue
			}
			if res.String() != expr.Result {
				t.Errorf("test %d %q: expr %d: expected result %s (got %s)", i, test.Name, j, expr.Result, res)
			}
		}
	}
}

// RunBenchmark runs a standard benchmark that reduces expressions parsed
// from source.
func RunBenchmark(b *testing.B, source string) {
	b.StopTimer()
	exprs, _, err := parser.Parse([]byte(source))
	if err != nil {
		b.Fatalf("parse error: %v", err)
	}
	for i := 0; i < b.N; i++ {
		in := term.New()
		b.StartTimer()
		for _, expr := range exprs {
			_, err := in.Eval(expr)
			if err != nil {
				b.Fatalf("eval error: %v", err)
			}
		}
		b.StopTimer()
	}
}
