/*
File    : minipyth/parser/node.go
*/

// Package parser turns a Minipyth token stream into the expression tree
// (spec §3.2) that the evaluator walks: a stack-driven transformation that
// resolves variable-arity higher-order operators and balanced/unbalanced
// quote marks into one correctly nested Func tree.
package parser

import "github.com/akashmaji946/minipyth/lexer"

// FuncKind identifies which of the four Func shapes a node is.
type FuncKind int

const (
	// BasicKind wraps a nullary primitive tag.
	BasicKind FuncKind = iota
	// HigherKind applies a single-argument higher-order operator to a body.
	HigherKind
	// DoubleKind applies a two-argument higher-order operator to two bodies.
	DoubleKind
	// BoundKind is a left-to-right textual composition of Funcs.
	BoundKind
)

// Func is one node of the expression tree (spec §3.2). Exactly the fields
// matching Kind are meaningful; this mirrors the teacher's pattern of a
// GoMixObject sum type discriminated by a Kind/Type field, but kept as one
// struct (rather than one-interface-per-variant) since Func nodes need
// structural equality for parser tests and a single struct makes that trivial
// with reflect.DeepEqual.
type Func struct {
	Kind FuncKind

	// BasicKind
	Basic lexer.Primitive

	// HigherKind
	HigherOp   lexer.HigherOp
	HigherBody *Func

	// DoubleKind
	DoubleOp    lexer.DoubleOp
	DoubleLeft  *Func
	DoubleRight *Func

	// BoundKind
	Seq []*Func
}

// NewBasic builds a Basic(p) node.
func NewBasic(p lexer.Primitive) *Func {
	return &Func{Kind: BasicKind, Basic: p}
}

// NewHigher builds a Higher(h, body) node.
func NewHigher(h lexer.HigherOp, body *Func) *Func {
	return &Func{Kind: HigherKind, HigherOp: h, HigherBody: body}
}

// NewDouble builds a Double(d, left, right) node.
func NewDouble(d lexer.DoubleOp, left, right *Func) *Func {
	return &Func{Kind: DoubleKind, DoubleOp: d, DoubleLeft: left, DoubleRight: right}
}

// NewBound builds a Bound(seq) node. A nil or empty seq is the identity
// function, per the GLOSSARY's definition of Bound.
func NewBound(seq []*Func) *Func {
	if seq == nil {
		seq = []*Func{}
	}
	return &Func{Kind: BoundKind, Seq: seq}
}

// emptyBound is the synthetic Bound([]) body used throughout the parser to
// fill in an operator that never received a body.
func emptyBound() *Func { return NewBound(nil) }
