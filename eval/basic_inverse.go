package eval

import (
	"math/big"

	"github.com/akashmaji946/minipyth/lexer"
	"github.com/akashmaji946/minipyth/value"
)

// basicInverse dispatches the five primitives spec §4.3.4 gives an explicit
// inverse for. The remaining five (PowerSet, Negate, Equal, Combine, AllPair)
// have no inverse defined anywhere in the spec — unlike Higher/Double
// operators, Basic primitives get no generic fallback — so asking for their
// inverse yields a Value-level Error rather than aborting evaluation.
func basicInverse(p lexer.Primitive, v value.Value) value.Value {
	if value.IsError(v) {
		return v
	}
	switch p {
	case lexer.Head:
		return headInverse(v)
	case lexer.Tail:
		return tailInverse(v)
	case lexer.Sum:
		return value.NewList([]value.Value{v})
	case lexer.Product:
		return productInverse(v)
	case lexer.Length:
		return lengthInverse(v)
	default:
		return value.NewError("%s has no inverse", primitiveName(p))
	}
}

func primitiveName(p lexer.Primitive) string {
	switch p {
	case lexer.PowerSet:
		return "PowerSet"
	case lexer.Negate:
		return "Negate"
	case lexer.Equal:
		return "Equal"
	case lexer.Combine:
		return "Combine"
	case lexer.AllPair:
		return "AllPair"
	default:
		return "primitive"
	}
}

func headInverse(v value.Value) value.Value {
	switch t := v.(type) {
	case *value.Integer:
		return &value.Integer{V: new(big.Int).Sub(t.V, big1)}
	case *value.List:
		if len(t.Elems) == 0 {
			return value.NewError("Head inverse of empty list")
		}
		return t.Elems[len(t.Elems)-1]
	default:
		panic("eval: headInverse on non-Integer/List Value")
	}
}

// tailInverse on Integer is left undefined by the original this evaluator's
// semantics descend from: no inverse arm exists there for Tail on an Integer,
// and this implementation keeps that gap as a Value-level Error rather than
// picking an arbitrary arithmetic rule.
func tailInverse(v value.Value) value.Value {
	switch t := v.(type) {
	case *value.Integer:
		_ = t
		return value.NewError("tail has no integer inverse")
	case *value.List:
		if len(t.Elems) == 0 {
			return value.NewError("Tail inverse of empty list")
		}
		return value.NewList(t.Elems[:len(t.Elems)-1])
	default:
		panic("eval: tailInverse on non-Integer/List Value")
	}
}

func productInverse(v value.Value) value.Value {
	switch t := v.(type) {
	case *value.Integer:
		if isPrime(t.V) {
			return value.NewInt(1)
		}
		return value.NewInt(0)
	case *value.List:
		if len(t.Elems) != 2 {
			return value.NewError("Product inverse requires a two-element list")
		}
		num, ok1 := t.Elems[0].(*value.Integer)
		den, ok2 := t.Elems[1].(*value.Integer)
		if !ok1 || !ok2 {
			return value.NewError("Product inverse requires a two-element integer list")
		}
		if den.V.Sign() == 0 {
			return value.NewError("division by zero")
		}
		q := new(big.Int).Quo(num.V, den.V)
		r := new(big.Int).Rem(num.V, den.V)
		return value.NewList([]value.Value{&value.Integer{V: q}, &value.Integer{V: r}})
	default:
		panic("eval: productInverse on non-Integer/List Value")
	}
}

// isPrime reports n's primality by trial division; n <= 1 is not prime by
// convention (spec §4.3.4).
func isPrime(n *big.Int) bool {
	if n.Cmp(big1) <= 0 {
		return false
	}
	if n.Cmp(big2) == 0 {
		return true
	}
	if new(big.Int).Mod(n, big2).Sign() == 0 {
		return false
	}
	d := new(big.Int).Set(big.NewInt(3))
	for {
		sq := new(big.Int).Mul(d, d)
		if sq.Cmp(n) > 0 {
			return true
		}
		if new(big.Int).Mod(n, d).Sign() == 0 {
			return false
		}
		d.Add(d, big2)
	}
}

// lengthInverse treats ℓ as a base-2 positional number, most-significant
// first — the literal reading of "binary digits MSB first" generalizes
// cleanly to digits outside {0,1}, which is what lets this double as the
// inverse of Map(identity) ∘ as_sequence chains as well as of Length itself.
func lengthInverse(v value.Value) value.Value {
	l, ok := v.(*value.List)
	if !ok {
		return value.NewError("Length inverse requires a list")
	}
	acc := new(big.Int)
	weight := new(big.Int).Set(big1)
	for i := len(l.Elems) - 1; i >= 0; i-- {
		d, ok := l.Elems[i].(*value.Integer)
		if !ok {
			return value.NewError("Length inverse requires a list of integers")
		}
		acc.Add(acc, new(big.Int).Mul(d.V, weight))
		weight.Mul(weight, big2)
	}
	return &value.Integer{V: acc}
}
