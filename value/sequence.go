package value

import "math/big"

var big1 = big.NewInt(1)
var big0 = big.NewInt(0)

// AsSequence implements the "iterate as sequence" coercion (spec §3.1): a
// List yields its own elements; an Integer n yields [0, 1, ..., n-1] when
// n >= 0, or the reversed range [|n|-1, ..., 0] when n < 0. Calling this on
// an Error is a violation of the evaluator's own invariant — every primitive
// that reaches here has already propagated Errors before coercing — so it
// panics rather than returning a Value-level Error.
func AsSequence(v Value) []Value {
	switch t := v.(type) {
	case *List:
		return t.Elems
	case *Integer:
		n := t.V
		out := []Value{}
		if n.Sign() >= 0 {
			for i := new(big.Int); i.Cmp(n) < 0; i.Add(i, big1) {
				out = append(out, &Integer{V: new(big.Int).Set(i)})
			}
			return out
		}
		abs := new(big.Int).Neg(n)
		for i := new(big.Int).Sub(abs, big1); i.Sign() >= 0; i.Sub(i, big1) {
			out = append(out, &Integer{V: new(big.Int).Set(i)})
		}
		return out
	case *ErrorVal:
		panic("value: AsSequence called on an Error value; callers must check IsError first")
	default:
		panic("value: AsSequence on unknown Value implementation")
	}
}
