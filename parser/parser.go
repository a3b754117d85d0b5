// Copyright © 2026 The curt authors

/*
Package parser provides the textual surface for curt terms.

	expr     := '(' <expr>* ')' | <number> | <operator> | <symbol>
	number   := /[+-]?[0-9]+/
	operator := 'car' | 'cdr' | 'lambda' | '+' | '-' | '*' | '/' | '\'
	symbol   := /'?[^\s()]+/

The grammar is flat: parentheses group terms into lists and every other
token is an atom or an operator.  Currying supplies all remaining
structure during evaluation, so there is no precedence and no nesting
beyond parenthesized groups.
*/
package parser

import (
	"fmt"
	"io"
	"strconv"

	"github.com/curtlang/curt/term"
	parsec "github.com/prataprc/goparsec"
)

// Parse parses terms from text and returns them.  The number of bytes
// read is returned along with any error that was encountered in parsing.
func Parse(text []byte) ([]*term.Term, int, error) {
	var v []*term.Term
	s := parsec.NewScanner(text)
	parser := newParsecParser()
	root, s := parser(s)
	for root != nil {
		t, err := getTerm(root)
		if err != nil {
			return v, s.GetCursor(), err
		}
		if t != nil {
			v = append(v, t)
		}
		root, s = parser(s)
	}
	_, s = s.SkipWS()
	if !s.Endof() {
		b, _ := s.Match(`.{1,16}`)
		if len(b) > 15 {
			b = append(b[:15:15], []byte("...")...)
		}
		return v, s.GetCursor(), fmt.Errorf("unexpected source text possibly starting: %s", b)
	}
	return v, s.GetCursor(), nil
}

// ParseString parses a single term from text.  Trailing input after the
// first term is an error.
func ParseString(text string) (*term.Term, error) {
	vals, n, err := Parse([]byte(text))
	if err != nil {
		return nil, err
	}
	if n != len(text) {
		return nil, io.ErrUnexpectedEOF
	}
	switch len(vals) {
	case 0:
		return term.Nil(), nil
	case 1:
		return vals[0], nil
	}
	return nil, fmt.Errorf("expected a single expression but found %d", len(vals))
}

// Reader parses terms from a stream.
func Reader(r io.Reader) ([]*term.Term, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	vals, n, err := Parse(b)
	if err != nil {
		return nil, err
	}
	if n != len(b) {
		return nil, io.ErrUnexpectedEOF
	}
	return vals, nil
}

const (
	nodeInvalid nodeType = iota
	nodeTerm
	nodeSExpr
	nodeSExprOUnmatched
)

var nodeTypeStrings = []string{
	nodeInvalid:         "INVALID",
	nodeTerm:            "TERM",
	nodeSExpr:           "SEXPR",
	nodeSExprOUnmatched: "SEXPROPENUNMATCHED",
}

func newParsecParser() parsec.Parser {
	openP := parsec.Atom("(", "OPENP")
	closeP := parsec.Atom(")", "CLOSEP")
	comment := parsec.Token(`;([^\n]*[^\s])?`, "COMMENT")
	number := parsec.Token(`[+-]?[0-9]+`, "NUMBER")
	operator := parsec.Token(`(?:car|cdr|lambda)\b|[+\-*/\\]`, "OPERATOR")
	// symbol comes last because it swallows anything
	symbol := parsec.Token(`'?[^\s()]+`, "SYMBOL")
	tok := parsec.OrdChoice(astNode(nodeTerm),
		number,
		operator,
		symbol,
	)
	var expr parsec.Parser // forward declaration allows for recursive parsing
	exprList := parsec.Kleene(nil, &expr)
	sexpr := parsec.And(astNode(nodeSExpr), openP, exprList, closeP)
	sexprOUnmatched := parsec.And(astNode(nodeSExprOUnmatched), openP, exprList, parsec.End())
	expr = parsec.OrdChoice(nil,
		comment,
		tok,
		sexpr,
		// Error matching cases come last because they have the lowest
		// precedence.
		sexprOUnmatched,
	)
	return expr
}

type nodeType uint

func (t nodeType) String() string {
	if int(t) >= len(nodeTypeStrings) {
		return "INVALID"
	}
	return nodeTypeStrings[t]
}

func astNode(t nodeType) parsec.Nodify {
	return func(nodes []parsec.ParsecNode) parsec.ParsecNode {
		return newNode(t, nodes)
	}
}

var operatorCodes = map[string]term.OpCode{
	"+":      term.OpPlus,
	"-":      term.OpSubtract,
	"*":      term.OpMultiply,
	"/":      term.OpDivide,
	"car":    term.OpCar,
	"cdr":    term.OpCdr,
	"lambda": term.OpLambda,
	`\`:      term.OpLambda,
}

func newNode(typ nodeType, nodes []parsec.ParsecNode) parsec.ParsecNode {
	nodes, ok := cleanParsecNodeList(nodes)
	if len(nodes) == 0 {
		return term.Nil()
	}
	if !ok {
		// There is an error in the first position.
		return nodes[0]
	}
	switch typ {
	case nodeTerm:
		t, ok := nodes[0].(*parsec.Terminal)
		if !ok {
			return nodes[0]
		}
		switch t.Name {
		case "NUMBER":
			x, err := strconv.Atoi(t.Value)
			if err != nil {
				return fmt.Errorf("bad number: %v (%s)", err, t.Value)
			}
			return term.Int(x)
		case "OPERATOR":
			return term.Op(operatorCodes[t.Value])
		case "SYMBOL":
			name := t.Value
			if name[0] == '\'' {
				name = name[1:]
			}
			if name == "" {
				return fmt.Errorf("empty symbol name")
			}
			return term.Symbol(name)
		}
		return fmt.Errorf("unknown token: %s %q", t.Name, t.Value)
	case nodeSExpr:
		// We don't want terminal parsec nodes '(' and ')'
		cells := make([]*term.Term, 0, len(nodes)-2)
		for _, c := range nodes {
			if c, ok := c.(*term.Term); ok {
				cells = append(cells, c)
			}
		}
		return term.List(cells)
	case nodeSExprOUnmatched:
		open := nodes[0].(*parsec.Terminal)
		return fmt.Errorf("unmatched %q", open.GetValue())
	default:
		panic(fmt.Sprintf("unknown nodeType: %s (%d)", typ, typ))
	}
}

func cleanParsecNodeList(lis []parsec.ParsecNode) ([]parsec.ParsecNode, bool) {
	var nodes []parsec.ParsecNode
	for _, n := range lis {
		switch node := n.(type) {
		case *parsec.Terminal:
			if node.Name == "COMMENT" {
				continue
			}
			nodes = append(nodes, node)
		case error:
			nodes = []parsec.ParsecNode{node}
			return nodes, false
		case []parsec.ParsecNode:
			clean, ok := cleanParsecNodeList(node)
			if !ok {
				return clean, false
			}
			nodes = append(nodes, clean...)
		default:
			nodes = append(nodes, node)
		}
	}
	return nodes, true
}

func getTerm(root parsec.ParsecNode) (*term.Term, error) {
	nodes, ok := cleanParsecNodeList([]parsec.ParsecNode{root})
	if len(nodes) == 0 {
		// we can be here if there is only whitespace on a line
		return nil, nil
	}
	if !ok {
		return nil, nodes[0].(error)
	}
	t, ok := nodes[0].(*term.Term)
	if !ok {
		// we can be here if there is only a comment on a line
		return nil, nil
	}
	return t, nil
}
