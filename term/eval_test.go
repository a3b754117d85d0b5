// Copyright © 2026 The curt authors

package term_test

import (
	"testing"

	"github.com/curtlang/curt/term"
	"github.com/curtlang/curt/termtest"
)

func TestEval(t *testing.T) {
	tests := termtest.TestSuite{
		{"atoms", termtest.TestSequence{
			{"12", "12", ""},
			{"-4", "-4", ""},
			{"x", "'x", ""},
			{"'x", "'x", ""},
			{"()", "[]", ""},
		}},
		{"arithmetic", termtest.TestSequence{
			{"(+ 2 3)", "5", ""},
			{"(- 7 3)", "4", ""},
			{"(* 3 2)", "6", ""},
			{"(/ 242 11)", "22", ""},
			{"(- 3 7)", "-4", ""},
			{"(* (+ 1 2) (- 5 1))", "12", ""},
		}},
		{"partial-application", termtest.TestSequence{
			{"(+ 1)", "<+ 1>", ""},
			{"((+ 1) 3)", "4", ""},
			{"((* 2) (+ 1 2))", "6", ""},
		}},
		{"list-operators", termtest.TestSequence{
			{"(car x y z)", "'x", ""},
			{"(cdr x y z)", "['y, 'z]", ""},
			{"(cdr x)", "[]", ""},
			// car returns its argument unevaluated
			{"(car (+ 1 2) y)", "[<+>, 1, 2]", ""},
		}},
		{"lambdas", termtest.TestSequence{
			{`((\ x x) 42)`, "42", ""},
			{"((lambda x lambda y + x y) 3 4)", "7", ""},
			{`((\ a \ b + a b) 3 1)`, "4", ""},
			{"((lambda f f 1 2) +)", "3", ""},
			{"((lambda x ((lambda x + x 1) 5)) 100)", "6", ""},
		}},
		{"errors", termtest.TestSequence{
			{"(/ 1 0)", "", term.DivisionError},
			{"(car)", "", term.ArityError},
			{"(+ x 1)", "", term.TypeError},
			{"(+ 1 2 3)", "", term.UnboundReductionError},
			{"(x 1)", "", term.UnboundReductionError},
		}},
		{"comments", termtest.TestSequence{
			{"(+ 1 2) ; adds", "3", ""},
		}},
	}
	termtest.RunTestSuite(t, tests)
}

func TestEvalDepth(t *testing.T) {
	tests := termtest.TestSuite{
		{"omega", termtest.TestSequence{
			{`((\ x x x) (\ x x x))`, "", term.DepthError},
		}},
	}
	termtest.RunTestSuite(t, tests, term.WithMaximumDepth(512))
}

func BenchmarkEval(b *testing.B) {
	termtest.RunBenchmark(b, `
	((\ a \ b * (+ a b) (- a b)) 12 5)
	(car (cdr x y z))
	`)
}
