// Copyright © 2026 The curt authors

package term

// DefaultMaximumDepth bounds the recursive reduction performed by an
// Interp constructed without an explicit WithMaximumDepth config.
// Neither Apply nor Replace is tail-call-flattened, so deeply nested
// programs produce proportionally deep recursion; the ceiling makes such
// programs fail cleanly instead of exhausting the host stack.
const DefaultMaximumDepth = 10000

// Interp carries the state needed to drive a reduction: the recursion
// depth counter, the depth ceiling, and an optional profiler.  Evaluation
// itself is pure; an Interp holds no term state and may be reused for any
// number of Execute calls, but it is not safe for concurrent use.
type Interp struct {
	depth    int
	maxDepth int
	profiler Profiler
}

// New returns an interpreter with the given configuration applied.
func New(cfg ...Config) *Interp {
	in := &Interp{maxDepth: DefaultMaximumDepth}
	for _, fn := range cfg {
		fn(in)
	}
	return in
}

// Execute builds source into a term and reduces it against the empty
// list using a default interpreter.  Execute is all-or-nothing: it
// returns either a fully reduced term or an error, never both.
func Execute(source interface{}) (*Term, error) {
	return New().Execute(source)
}

// Execute builds source into a term and reduces it against the empty
// list.
func (in *Interp) Execute(source interface{}) (*Term, error) {
	return in.Eval(Build(source))
}

// Eval reduces an already-built term against the empty list.
func (in *Interp) Eval(v *Term) (*Term, error) {
	res := in.Apply(v, Nil())
	if res.Type == TError {
		return nil, GoError(res)
	}
	return res, nil
}

// ApplyTo reduces v against the argument list args using a default
// interpreter.  Applying a term with no outstanding required operands to
// the empty list is the identity transform (or the term's fully reduced
// self when v is an unreduced expression).
func (v *Term) ApplyTo(args *Term) *Term {
	return New().Apply(v, args)
}

// Apply reduces fun against the argument list args, producing a new term.
// Errors propagate unchanged through every level of application.
func (in *Interp) Apply(fun, args *Term) *Term {
	if fun.Type == TError {
		return fun
	}
	if args.Type == TError {
		return args
	}
	if args.Type != TList {
		return ErrorConditionf(TypeError, "argument list is not a list: %v", args)
	}
	if lerr := in.push(); lerr != nil {
		return lerr
	}
	defer in.pop()
	switch fun.Type {
	case TInt, TSymbol:
		if args.IsNil() {
			return fun
		}
		return ErrorConditionf(UnboundReductionError, "cannot apply %v to %v", fun, args)
	case TList:
		return in.applyList(fun, args)
	case TLambda:
		defer in.start(fun)()
		return in.applyLambda(fun, args)
	case TOperator:
		defer in.start(fun)()
		return in.applyOp(fun, args)
	}
	return ErrorConditionf(TypeError, "invalid term: %v", fun.Type)
}

// applyList turns the flat sequence (f a b c) into the fully curried call
// ((f(a))(b))(c).  A single-element list evaluates its sole element; the
// empty list absorbs any arguments and remains the empty list.
func (in *Interp) applyList(fun, args *Term) *Term {
	if len(fun.Cells) == 0 {
		return fun
	}
	var res *Term
	if len(fun.Cells) == 1 {
		res = in.Apply(fun.Cells[0], Nil())
	} else {
		res = in.Apply(fun.Head(), fun.Tail())
	}
	return in.chain(res, args)
}

// applyLambda consumes as many leading parameters as there are supplied
// arguments in a single pass.  Binding is literal substitution into the
// body; there is no environment.
func (in *Interp) applyLambda(fun, args *Term) *Term {
	params := fun.Cells[0]
	body := fun.Cells[1]
	if params.IsNil() {
		// The lambda is exhausted; its reduced body takes over any
		// remaining arguments.
		return in.chain(in.Apply(body, Nil()), args)
	}
	if args.IsNil() {
		return fun
	}
	body = body.Replace(params.Head(), args.Head())
	return in.Apply(Lambda(params.Tail(), body), args.Tail())
}

// chain applies a reduced term to whatever arguments remain.  A finished
// result is never re-evaluated against an empty argument list, so lists
// produced by reduction stand as data rather than as pending calls.
func (in *Interp) chain(res, args *Term) *Term {
	if args.IsNil() {
		return res
	}
	return in.Apply(res, args)
}

func (in *Interp) push() *Term {
	if in.maxDepth > 0 && in.depth >= in.maxDepth {
		return ErrorConditionf(DepthError, "reduction depth exceeds maximum height %d", in.maxDepth)
	}
	in.depth++
	return nil
}

func (in *Interp) pop() {
	in.depth--
}

func (in *Interp) start(fun *Term) func() {
	if in.profiler == nil || !in.profiler.IsEnabled() {
		return func() {}
	}
	return in.profiler.Start(fun)
}
