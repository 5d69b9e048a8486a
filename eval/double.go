package eval

import (
	"github.com/akashmaji946/minipyth/lexer"
	"github.com/akashmaji946/minipyth/parser"
	"github.com/akashmaji946/minipyth/value"
)

// doubleForward dispatches the two double operators (spec §4.3.3). Neither
// gets a blanket entry-point Error check — each has its own rule for where
// an Error in its evaluation surfaces.
func doubleForward(op lexer.DoubleOp, left, right *parser.Func, v value.Value) value.Value {
	switch op {
	case lexer.While:
		return whileForward(left, right, v)
	case lexer.Bifurcate:
		return bifurcateForward(left, right, v)
	default:
		panic("eval: unknown double operator")
	}
}

// whileForward collects v into a sequence, stepping current <- right(current)
// while left(current) is truthy, and stops (without appending) the moment
// current becomes an Error.
func whileForward(left, right *parser.Func, v value.Value) value.Value {
	var out []value.Value
	current := v
	for {
		if value.IsError(current) {
			break
		}
		out = append(out, current)
		if !value.Truthy(Forward(left, current)) {
			break
		}
		current = Forward(right, current)
	}
	return value.NewList(out)
}

// bifurcateForward computes both branches, returning the first Error if
// either produced one (left checked first), else the pair as a List.
func bifurcateForward(left, right *parser.Func, v value.Value) value.Value {
	a := Forward(left, v)
	if value.IsError(a) {
		return a
	}
	b := Forward(right, v)
	if value.IsError(b) {
		return b
	}
	return value.NewList([]value.Value{a, b})
}
