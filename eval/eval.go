/*
File    : minipyth/eval/eval.go
*/

// Package eval walks the parser's Func tree against the universal Value
// domain (spec §4.3): Forward applies a Func to a Value the way the program
// text reads; Inverse undoes it where an inverse is defined at all.
package eval

import (
	"github.com/akashmaji946/minipyth/lexer"
	"github.com/akashmaji946/minipyth/parser"
	"github.com/akashmaji946/minipyth/value"
)

// Forward evaluates f applied to v (spec §4.3.2): Bound composes its
// sequence right-to-left (the last-written Func runs first), Basic dispatches
// a nullary primitive, Higher and Double dispatch their respective operator
// tables.
func Forward(f *parser.Func, v value.Value) value.Value {
	switch f.Kind {
	case parser.BoundKind:
		working := v
		for i := len(f.Seq) - 1; i >= 0; i-- {
			working = Forward(f.Seq[i], working)
		}
		return working
	case parser.BasicKind:
		return basicForward(f.Basic, v)
	case parser.HigherKind:
		return higherForward(f.HigherOp, f.HigherBody, v)
	case parser.DoubleKind:
		return doubleForward(f.DoubleOp, f.DoubleLeft, f.DoubleRight, v)
	default:
		panic("eval: unknown Func kind")
	}
}

// Inverse evaluates the inverse of f applied to v (spec §4.3.4). Bound undoes
// its composition in textual (left-to-right) order — the opposite of
// Forward's right-to-left application. Order and the Inverse operator itself
// carry an explicit inverse rule; every other Higher or Double operator falls
// back to running its own forward rule with every sub-body wrapped in
// Higher(Inverse, body).
func Inverse(f *parser.Func, v value.Value) value.Value {
	switch f.Kind {
	case parser.BoundKind:
		working := v
		for _, fn := range f.Seq {
			working = Inverse(fn, working)
		}
		return working
	case parser.BasicKind:
		return basicInverse(f.Basic, v)
	case parser.HigherKind:
		switch f.HigherOp {
		case lexer.Order:
			return orderInverse(f.HigherBody, v)
		case lexer.Inverse:
			return Forward(f.HigherBody, v)
		default:
			wrapped := parser.NewHigher(lexer.Inverse, f.HigherBody)
			return higherForward(f.HigherOp, wrapped, v)
		}
	case parser.DoubleKind:
		wrappedLeft := parser.NewHigher(lexer.Inverse, f.DoubleLeft)
		wrappedRight := parser.NewHigher(lexer.Inverse, f.DoubleRight)
		return doubleForward(f.DoubleOp, wrappedLeft, wrappedRight, v)
	default:
		panic("eval: unknown Func kind")
	}
}

// firstErrorOrList returns the first Error among elems if any is present,
// else a List of elems. Map and Order both replace their whole result with
// the first Error they produced rather than returning a list that merely
// contains one.
func firstErrorOrList(elems []value.Value) value.Value {
	for _, e := range elems {
		if value.IsError(e) {
			return e
		}
	}
	return value.NewList(elems)
}
