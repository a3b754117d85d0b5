// Copyright © 2026 The curt authors

package term

import (
	"errors"
	"fmt"
)

// Error condition symbols carried by TError terms.  All conditions are
// unrecoverable within a reduction: the enclosing Execute call aborts with
// no partial result.
const (
	// ArityError reports an operator, lambda constructor, or unbound
	// arithmetic operator applied with no operands when at least one is
	// required.
	ArityError = "arity-error"
	// EmptyListError reports Head or Tail invoked on an empty list.
	EmptyListError = "empty-list-error"
	// UnboundReductionError reports an atomic, non-functional term
	// applied to a non-empty argument list.
	UnboundReductionError = "unbound-reduction-error"
	// DivisionError reports a division with a zero divisor.
	DivisionError = "division-error"
	// TypeError reports a malformed operand, argument list, or
	// parameter list.
	TypeError = "type-error"
	// DepthError reports a reduction that exceeded the interpreter's
	// depth ceiling.
	DepthError = "depth-error"
)

// EvalError implements the error interface so that error terms can be
// returned to Go callers.  The condition symbol is stored in the Str field
// and the message in the Msg field.
type EvalError Term

// Error implements the error interface.  When the error condition is not
// "error" it will be printed preceding the message.
func (e *EvalError) Error() string {
	if e.Str != "" && e.Str != "error" {
		return fmt.Sprintf("%s: %s", e.Str, e.Msg)
	}
	return e.Msg
}

// Condition returns the error condition symbol (e.g., "arity-error").
// This is the programmatic error classification stored in the Term.Str
// field for TError values.
func (e *EvalError) Condition() string {
	return e.Str
}

// Errorf returns a TError term with condition "error" and a formatted
// message.
func Errorf(format string, v ...interface{}) *Term {
	return ErrorConditionf("error", format, v...)
}

// ErrorConditionf returns a TError term with the given condition symbol
// and a formatted message.
func ErrorConditionf(condition string, format string, v ...interface{}) *Term {
	return &Term{
		Type: TError,
		Str:  condition,
		Msg:  fmt.Sprintf(format, v...),
	}
}

// GoError converts a TError term into a Go error.  GoError returns nil if
// v is not a TError.
func GoError(v *Term) error {
	if v == nil || v.Type != TError {
		return nil
	}
	return (*EvalError)(v)
}

// Condition returns the condition symbol carried by an error produced
// during evaluation, or the empty string if err did not come from the
// evaluator.
func Condition(err error) string {
	var e *EvalError
	if errors.As(err, &e) {
		return e.Condition()
	}
	return ""
}
