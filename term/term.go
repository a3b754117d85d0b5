// Copyright © 2026 The curt authors

// Package term implements a minimal functional evaluator: a curried,
// substitution-based reduction engine over immutable symbolic term trees.
// Every term is a function that can be applied to a (possibly empty)
// argument list.  There is no environment and no closure structure;
// variable binding is realized entirely through substitution.
package term

import (
	"bytes"
	"strconv"
)

// TType is the type of a Term.
type TType uint

// Possible TType values.
const (
	// TInvalid (0) is not a valid term type.
	TInvalid TType = iota
	// TInt atoms store an int in the Term.Int field.
	TInt
	// TSymbol atoms store the symbol name in the Term.Str field.
	TSymbol
	// TList terms store their ordered elements in the Term.Cells slice.
	// A zero-length TList is the empty list.
	TList
	// TLambda terms use the Term.Cells slice to store the following items:
	//		[0] the parameter list, a TList containing only atoms,
	//		    consumed front to back
	//		[1] the body term
	TLambda
	// TOperator terms store their kind in the Term.Op field.  The binary
	// arithmetic kinds additionally use Term.Cells to hold between zero
	// and two already-bound operands (partial application state).  The
	// car, cdr, and lambda-constructor kinds never hold operands.
	TOperator
	// TError terms store an error condition symbol in the Term.Str field
	// and a message in the Term.Msg field.  Errors abort a reduction
	// entirely; Apply propagates them unchanged.
	TError
	// TTypeMax is not a real type.  It is numerically greater than all
	// valid TType values.
	TTypeMax
)

var ttypeStrings = []string{
	TInvalid:  "INVALID",
	TInt:      "int",
	TSymbol:   "symbol",
	TList:     "list",
	TLambda:   "lambda",
	TOperator: "operator",
	TError:    "error",
}

func (t TType) String() string {
	if t >= TTypeMax {
		return ttypeStrings[TInvalid]
	}
	return ttypeStrings[t]
}

// Term is a node in an immutable symbolic term tree.  Terms must not be
// mutated after construction; every reduction step produces a new tree.
type Term struct {
	// Type tags the variant and determines which payload fields are valid.
	Type TType
	// Int holds the value of a TInt atom.
	Int int
	// Str holds a TSymbol's name or a TError's condition symbol.
	Str string
	// Msg holds a TError's message.
	Msg string
	// Op holds a TOperator's kind.
	Op OpCode
	// Cells holds ordered subterms:  list elements, a lambda's parameter
	// list and body, or an operator's bound operands.
	Cells []*Term
}

var singletonNil = &Term{Type: TList}

// Int returns an atom representing the number x.
func Int(x int) *Term {
	return &Term{
		Type: TInt,
		Int:  x,
	}
}

// Symbol returns an atom representing the symbol s.
func Symbol(s string) *Term {
	return &Term{
		Type: TSymbol,
		Str:  s,
	}
}

// Nil returns the empty list.
//
// The returned value is a shared singleton; callers MUST NOT mutate it.
// Emptiness is always determined by length, never by identity, so a
// zero-length List(nil) behaves identically.
func Nil() *Term {
	return singletonNil
}

// List returns a list term with the given elements.  Provided cells are
// used as backing storage for the returned list and are not copied.
func List(cells []*Term) *Term {
	return &Term{
		Type:  TList,
		Cells: cells,
	}
}

// Lambda returns a curried function term.  The params list must contain
// only atoms; body may be any term.
func Lambda(params, body *Term) *Term {
	return &Term{
		Type:  TLambda,
		Cells: []*Term{params, body},
	}
}

// IsNil returns true if v is the empty list.
func (v *Term) IsNil() bool {
	return v.Type == TList && len(v.Cells) == 0
}

// Len returns the number of elements in a list, or -1 if v is not a list.
func (v *Term) Len() int {
	if v.Type != TList {
		return -1
	}
	return len(v.Cells)
}

// Head returns the first element of a list.  Head is a partial operation
// and produces an empty-list-error term when v is the empty list.
func (v *Term) Head() *Term {
	if v.Type != TList {
		return ErrorConditionf(TypeError, "head of non-list: %v", v)
	}
	if len(v.Cells) == 0 {
		return ErrorConditionf(EmptyListError, "head of empty list")
	}
	return v.Cells[0]
}

// Tail returns a list containing all elements of v but the first.  Tail is
// a partial operation and produces an empty-list-error term when v is the
// empty list.
func (v *Term) Tail() *Term {
	if v.Type != TList {
		return ErrorConditionf(TypeError, "tail of non-list: %v", v)
	}
	if len(v.Cells) == 0 {
		return ErrorConditionf(EmptyListError, "tail of empty list")
	}
	return List(v.Cells[1:])
}

// Params returns the parameter list of a lambda term.
func (v *Term) Params() *Term {
	if v.Type != TLambda {
		return ErrorConditionf(TypeError, "parameters of non-lambda: %v", v)
	}
	return v.Cells[0]
}

// Body returns the body of a lambda term.
func (v *Term) Body() *Term {
	if v.Type != TLambda {
		return ErrorConditionf(TypeError, "body of non-lambda: %v", v)
	}
	return v.Cells[1]
}

// Equal returns true if v and other are structurally equal.  Equality
// coincides exactly with equality of canonical renderings, but is computed
// on the variant so that differently typed values which might render alike
// can never collide (an int atom never equals a symbol atom).
func (v *Term) Equal(other *Term) bool {
	if v.Type != other.Type {
		return false
	}
	switch v.Type {
	case TInt:
		return v.Int == other.Int
	case TSymbol:
		return v.Str == other.Str
	case TList:
		return equalCells(v.Cells, other.Cells)
	case TLambda:
		return v.Cells[0].Equal(other.Cells[0]) && v.Cells[1].Equal(other.Cells[1])
	case TOperator:
		return v.Op == other.Op && equalCells(v.Cells, other.Cells)
	case TError:
		return v.Str == other.Str && v.Msg == other.Msg
	}
	return false
}

func equalCells(a, b []*Term) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// String returns the canonical textual rendering of v.  Symbol atoms
// render with a leading quote marker, int atoms render bare, and lists
// render as a comma-separated bracketed sequence with no trailing
// terminator token.
func (v *Term) String() string {
	switch v.Type {
	case TInt:
		return strconv.Itoa(v.Int)
	case TSymbol:
		return "'" + v.Str
	case TList:
		return exprString(v.Cells, "[", "]")
	case TLambda:
		return "(" + v.Cells[0].String() + " -> " + v.Cells[1].String() + ")"
	case TOperator:
		return opString(v)
	case TError:
		return GoError(v).Error()
	default:
		return "#<" + v.Type.String() + ">"
	}
}

func exprString(cells []*Term, open, close string) string {
	var buf bytes.Buffer
	buf.WriteString(open)
	for i, cell := range cells {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(cell.String())
	}
	buf.WriteString(close)
	return buf.String()
}
