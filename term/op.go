// Copyright © 2026 The curt authors

package term

import (
	"bytes"
)

// OpCode identifies a built-in operator kind.
type OpCode uint

// Possible OpCode values.  The four arithmetic kinds are binary and
// support partial application; car, cdr, and the lambda constructor are
// strict single-pass primitives with no partial application state.
const (
	OpInvalid OpCode = iota
	OpPlus
	OpSubtract
	OpMultiply
	OpDivide
	OpCar
	OpCdr
	OpLambda
	OpCodeMax
)

var opTokens = []string{
	OpInvalid:  "INVALID",
	OpPlus:     "+",
	OpSubtract: "-",
	OpMultiply: "*",
	OpDivide:   "/",
	OpCar:      "car",
	OpCdr:      "cdr",
	OpLambda:   "lambda",
}

func (op OpCode) String() string {
	if op >= OpCodeMax {
		return opTokens[OpInvalid]
	}
	return opTokens[op]
}

// Op returns an unbound operator term of the given kind.
func Op(op OpCode) *Term {
	return &Term{
		Type: TOperator,
		Op:   op,
	}
}

// OpWith returns an arithmetic operator term holding one bound operand.
func OpWith(op OpCode, bound *Term) *Term {
	return &Term{
		Type:  TOperator,
		Op:    op,
		Cells: []*Term{bound},
	}
}

func opString(v *Term) string {
	var buf bytes.Buffer
	buf.WriteString("<")
	buf.WriteString(v.Op.String())
	for _, cell := range v.Cells {
		buf.WriteString(" ")
		buf.WriteString(cell.String())
	}
	buf.WriteString(">")
	return buf.String()
}

// arith computes the result of a binary arithmetic operator over host
// ints.  Division checks its divisor explicitly so that a zero divisor
// surfaces as a division-error and never as a host trap.
func arith(op OpCode, x, y int) *Term {
	switch op {
	case OpPlus:
		return Int(x + y)
	case OpSubtract:
		return Int(x - y)
	case OpMultiply:
		return Int(x * y)
	case OpDivide:
		if y == 0 {
			return ErrorConditionf(DivisionError, "division by zero")
		}
		return Int(x / y)
	}
	return ErrorConditionf(TypeError, "not an arithmetic operator: %s", op)
}

func (in *Interp) applyOp(v, args *Term) *Term {
	switch v.Op {
	case OpPlus, OpSubtract, OpMultiply, OpDivide:
		return in.applyArith(v, args)
	case OpCar:
		if args.IsNil() {
			return ErrorConditionf(ArityError, "%s requires an argument", opString(v))
		}
		return args.Head()
	case OpCdr:
		if args.IsNil() {
			return ErrorConditionf(ArityError, "%s requires an argument", opString(v))
		}
		return args.Tail()
	case OpLambda:
		if args.IsNil() {
			return ErrorConditionf(ArityError, "%s requires a parameter list", opString(v))
		}
		params := formals(args.Head())
		if params.Type == TError {
			return params
		}
		return Lambda(params, args.Tail())
	}
	return ErrorConditionf(TypeError, "invalid operator: %v", v.Op)
}

// applyArith implements the partial application protocol for the binary
// arithmetic kinds.  An unbound operator binds its first operand raw and
// continues with the remaining arguments.  A bound operator reduces both
// operands, computes, and applies the resulting atom to whatever
// arguments remain so that the result chains into further application.
func (in *Interp) applyArith(v, args *Term) *Term {
	if len(v.Cells) == 0 {
		if args.IsNil() {
			return ErrorConditionf(ArityError, "%s requires an argument", opString(v))
		}
		return in.Apply(OpWith(v.Op, args.Head()), args.Tail())
	}
	if args.IsNil() {
		// Partial application awaiting its second operand.
		return v
	}
	x := in.number(v.Cells[0])
	if x.Type == TError {
		return x
	}
	y := in.number(args.Head())
	if y.Type == TError {
		return y
	}
	res := arith(v.Op, x.Int, y.Int)
	if res.Type == TError {
		return res
	}
	return in.Apply(res, args.Tail())
}

// number reduces an operand against the empty list and requires an int
// atom.
func (in *Interp) number(v *Term) *Term {
	v = in.Apply(v, Nil())
	if v.Type == TError || v.Type == TInt {
		return v
	}
	return ErrorConditionf(TypeError, "operand is not a number: %v", v)
}

// formals normalizes the head of a lambda-constructor argument list into
// a parameter list.  A lone atom is promoted to a one-element list.  Int
// atoms are accepted as parameters because substitution can legally
// rewrite a parameter token before the inner lambda is constructed.
func formals(v *Term) *Term {
	switch v.Type {
	case TInt, TSymbol:
		return List([]*Term{v})
	case TList:
		for _, p := range v.Cells {
			if p.Type != TInt && p.Type != TSymbol {
				return ErrorConditionf(TypeError, "parameter is not an atom: %v", p)
			}
		}
		return v
	case TError:
		return v
	}
	return ErrorConditionf(TypeError, "parameter list is not an atom or list: %v", v)
}
