package eval

import (
	"math/big"

	"github.com/akashmaji946/minipyth/lexer"
	"github.com/akashmaji946/minipyth/value"
)

// basicForward dispatches one of the ten nullary primitives (spec §4.3.1).
// Every arm falls through to propagating v unchanged when v is already an
// Error, mirroring the blanket catch-all arm the original evaluator places
// after each primitive's Integer/List cases.
func basicForward(p lexer.Primitive, v value.Value) value.Value {
	if value.IsError(v) {
		return v
	}
	switch p {
	case lexer.Head:
		return headForward(v)
	case lexer.Tail:
		return tailForward(v)
	case lexer.Sum:
		return sumForward(v)
	case lexer.Product:
		return productForward(v)
	case lexer.PowerSet:
		return powerSetForward(v)
	case lexer.Length:
		return lengthForward(v)
	case lexer.Negate:
		return negateForward(v)
	case lexer.Equal:
		return equalForward(v)
	case lexer.Combine:
		return combineForward(v)
	case lexer.AllPair:
		return allPairForward(v)
	default:
		panic("eval: unknown primitive")
	}
}

func headForward(v value.Value) value.Value {
	switch t := v.(type) {
	case *value.Integer:
		return &value.Integer{V: new(big.Int).Add(t.V, big1)}
	case *value.List:
		if len(t.Elems) == 0 {
			return value.NewError("Head of empty list")
		}
		return t.Elems[0]
	default:
		panic("eval: headForward on non-Integer/List Value")
	}
}

func tailForward(v value.Value) value.Value {
	switch t := v.(type) {
	case *value.Integer:
		return &value.Integer{V: new(big.Int).Sub(t.V, big1)}
	case *value.List:
		if len(t.Elems) == 0 {
			return value.NewError("Tail of empty list")
		}
		return value.NewList(t.Elems[1:])
	default:
		panic("eval: tailForward on non-Integer/List Value")
	}
}

func sumForward(v value.Value) value.Value {
	switch t := v.(type) {
	case *value.Integer:
		if t.V.Sign() == 0 {
			return value.NewInt(1)
		}
		return value.NewInt(0)
	case *value.List:
		if allInteger(t.Elems) {
			acc := new(big.Int)
			for _, e := range t.Elems {
				acc.Add(acc, e.(*value.Integer).V)
			}
			return &value.Integer{V: acc}
		}
		var out []value.Value
		for _, e := range t.Elems {
			if l, ok := e.(*value.List); ok {
				out = append(out, l.Elems...)
			} else {
				out = append(out, e)
			}
		}
		return value.NewList(out)
	default:
		panic("eval: sumForward on non-Integer/List Value")
	}
}

func productForward(v value.Value) value.Value {
	switch t := v.(type) {
	case *value.Integer:
		abs := new(big.Int).Abs(t.V)
		if abs.Cmp(big2) < 0 {
			return value.NewList(nil)
		}
		factors := primeFactors(abs)
		out := make([]value.Value, len(factors))
		for i, f := range factors {
			out[i] = &value.Integer{V: f}
		}
		return value.NewList(out)
	case *value.List:
		if allInteger(t.Elems) {
			acc := new(big.Int).Set(big1)
			for _, e := range t.Elems {
				acc.Mul(acc, e.(*value.Integer).V)
			}
			return &value.Integer{V: acc}
		}
		if err, ok := firstListError(t.Elems); ok {
			return err
		}
		return cartesianProduct(t.Elems)
	default:
		panic("eval: productForward on non-Integer/List Value")
	}
}

func cartesianProduct(elems []value.Value) value.Value {
	seqs := make([][]value.Value, len(elems))
	for i, e := range elems {
		seqs[i] = value.AsSequence(e)
	}
	var rows []value.Value
	var walk func(i int, acc []value.Value)
	walk = func(i int, acc []value.Value) {
		if i == len(seqs) {
			row := make([]value.Value, len(acc))
			copy(row, acc)
			rows = append(rows, value.NewList(row))
			return
		}
		for _, e := range seqs[i] {
			walk(i+1, append(acc, e))
		}
	}
	if len(seqs) > 0 {
		walk(0, make([]value.Value, 0, len(seqs)))
	}
	return value.NewList(rows)
}

func powerSetForward(v value.Value) value.Value {
	switch t := v.(type) {
	case *value.Integer:
		if t.V.Sign() < 0 {
			return value.NewError("powerset of a negative exponent is not defined")
		}
		return &value.Integer{V: new(big.Int).Lsh(big1, uint(t.V.Uint64()))}
	case *value.List:
		n := uint(len(t.Elems))
		total := new(big.Int).Lsh(big1, n)
		out := make([]value.Value, 0, total.Uint64())
		for i := new(big.Int); i.Cmp(total) < 0; i.Add(i, big1) {
			var subset []value.Value
			for j := uint(0); j < n; j++ {
				if i.Bit(int(j)) == 1 {
					subset = append(subset, t.Elems[j])
				}
			}
			out = append(out, value.NewList(subset))
		}
		return value.NewList(out)
	default:
		panic("eval: powerSetForward on non-Integer/List Value")
	}
}

func lengthForward(v value.Value) value.Value {
	switch t := v.(type) {
	case *value.Integer:
		abs := new(big.Int).Abs(t.V)
		if abs.Sign() == 0 {
			return value.NewList([]value.Value{value.NewInt(0)})
		}
		nbits := abs.BitLen()
		out := make([]value.Value, nbits)
		for i := 0; i < nbits; i++ {
			out[i] = value.NewInt(int64(abs.Bit(nbits - 1 - i)))
		}
		return value.NewList(out)
	case *value.List:
		return value.NewInt(int64(len(t.Elems)))
	default:
		panic("eval: lengthForward on non-Integer/List Value")
	}
}

func negateForward(v value.Value) value.Value {
	switch t := v.(type) {
	case *value.Integer:
		return &value.Integer{V: new(big.Int).Neg(t.V)}
	case *value.List:
		n := len(t.Elems)
		out := make([]value.Value, n)
		for i, e := range t.Elems {
			out[n-1-i] = e
		}
		return value.NewList(out)
	default:
		panic("eval: negateForward on non-Integer/List Value")
	}
}

// equalForward and combineForward both act on as_sequence(v) (spec §4.3.1
// leaves Equal and Combine's Integer column blank; an Integer argument is
// coerced through the same sequence rule Map/Filter/Order use, rather than
// left undefined).
func equalForward(v value.Value) value.Value {
	elems := value.AsSequence(v)
	if len(elems) == 0 {
		return value.NewInt(1)
	}
	first := elems[0]
	for _, e := range elems[1:] {
		if !value.Equal(first, e) {
			return value.NewInt(0)
		}
	}
	return value.NewInt(1)
}

func combineForward(v value.Value) value.Value {
	elems := value.AsSequence(v)
	if err, ok := firstListError(elems); ok {
		return err
	}
	maxLen := 0
	for _, e := range elems {
		l := combineLen(e)
		if l > maxLen {
			maxLen = l
		}
	}
	out := make([]value.Value, 0, maxLen)
	for i := 0; i < maxLen; i++ {
		var row []value.Value
		for _, e := range elems {
			if it, ok := combineItem(e, i); ok {
				row = append(row, it)
			}
		}
		out = append(out, value.NewList(row))
	}
	return value.NewList(out)
}

func combineLen(e value.Value) int {
	if l, ok := e.(*value.List); ok {
		return len(l.Elems)
	}
	return 1
}

func combineItem(e value.Value, i int) (value.Value, bool) {
	if l, ok := e.(*value.List); ok {
		if i < len(l.Elems) {
			return l.Elems[i], true
		}
		return nil, false
	}
	if i == 0 {
		return e, true
	}
	return nil, false
}

// allPairForward implements AllPair's three-way case split (spec §4.3.1),
// pinned down against the all_pairs* scenario family: on Integer n, pair n
// with each element of as_sequence(n); on a List with a List among its
// trailing elements, pair the leading element with each trailing list's
// as_sequence unconditionally, including the element equal to the leading
// one (all_pairs on "abzmh"/5 expects the trailing [5,5] self-pair);
// symmetrically when the leading element is itself a List; and otherwise
// pair the whole list with each of its own elements, unfiltered. A row set of
// exactly one row unwraps to that row directly.
func allPairForward(v value.Value) value.Value {
	if n, ok := v.(*value.Integer); ok {
		seq := value.AsSequence(n)
		out := make([]value.Value, len(seq))
		for i, e := range seq {
			out[i] = value.NewList([]value.Value{n, e})
		}
		return value.NewList(out)
	}
	l := v.(*value.List)
	elems := l.Elems

	if len(elems) >= 2 && anyListAmong(elems[1:]) {
		x := elems[0]
		rows := make([]value.Value, 0, len(elems)-1)
		for _, e := range elems[1:] {
			rows = append(rows, pairRow(x, value.AsSequence(e), false))
		}
		return unwrapSingle(rows)
	}
	if len(elems) >= 2 {
		if _, ok := elems[0].(*value.List); ok {
			rows := make([]value.Value, 0, len(elems)-1)
			for _, y := range elems[1:] {
				rows = append(rows, pairRow(y, value.AsSequence(elems[0]), true))
			}
			return unwrapSingle(rows)
		}
	}

	out := make([]value.Value, len(elems))
	for i, e := range elems {
		out[i] = value.NewList([]value.Value{l, e})
	}
	return value.NewList(out)
}

func anyListAmong(elems []value.Value) bool {
	for _, e := range elems {
		if _, ok := e.(*value.List); ok {
			return true
		}
	}
	return false
}

// pairRow builds [[fixed, e] for e in seq], or [[e, fixed] for e in seq] when
// swapped is true (the symmetric branch pairs each member of the leading
// list's sequence with the fixed trailing element) — unconditionally,
// including the row where e equals fixed, matching the self-pair the
// all_pairs and all_pairs_second oracles both expect.
func pairRow(fixed value.Value, seq []value.Value, swapped bool) value.Value {
	var out []value.Value
	for _, e := range seq {
		if swapped {
			out = append(out, value.NewList([]value.Value{e, fixed}))
		} else {
			out = append(out, value.NewList([]value.Value{fixed, e}))
		}
	}
	return value.NewList(out)
}

func unwrapSingle(rows []value.Value) value.Value {
	if len(rows) == 1 {
		return rows[0]
	}
	return value.NewList(rows)
}

func allInteger(elems []value.Value) bool {
	for _, e := range elems {
		if _, ok := e.(*value.Integer); !ok {
			return false
		}
	}
	return true
}

// firstListError reports the first Error among elems, for primitives whose
// whole-list result is a single combined value rather than an elementwise
// mapping — there is no single output slot to carry a buried Error in place,
// so the first one short-circuits the whole primitive.
func firstListError(elems []value.Value) (value.Value, bool) {
	for _, e := range elems {
		if value.IsError(e) {
			return e, true
		}
	}
	return nil, false
}
