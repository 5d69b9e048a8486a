package eval

import (
	"math/big"
	"sort"

	"github.com/akashmaji946/minipyth/lexer"
	"github.com/akashmaji946/minipyth/parser"
	"github.com/akashmaji946/minipyth/value"
)

// higherForward dispatches the six single-argument higher-order operators
// (spec §4.3.2). Every one propagates an Error argument unchanged before
// dispatching, mirroring HigherFunc::execute's blanket check in the original.
func higherForward(op lexer.HigherOp, body *parser.Func, v value.Value) value.Value {
	if value.IsError(v) {
		return v
	}
	switch op {
	case lexer.Map:
		return mapForward(body, v)
	case lexer.Filter:
		return filterForward(body, v)
	case lexer.Order:
		return orderForward(body, v)
	case lexer.FixedPoint:
		return fixedPointForward(body, v)
	case lexer.Inverse:
		return Inverse(body, v)
	case lexer.Repeat:
		return repeatForward(body, v)
	default:
		panic("eval: unknown higher-order operator")
	}
}

func mapForward(body *parser.Func, v value.Value) value.Value {
	seq := value.AsSequence(v)
	out := make([]value.Value, len(seq))
	for i, e := range seq {
		out[i] = Forward(body, e)
	}
	return firstErrorOrList(out)
}

func filterForward(body *parser.Func, v value.Value) value.Value {
	seq := value.AsSequence(v)
	var out []value.Value
	for _, e := range seq {
		if value.Truthy(Forward(body, e)) {
			out = append(out, e)
		}
	}
	return value.NewList(out)
}

// orderForward stably sorts as_sequence(v) by the order-key of body applied
// to each element, then — like Map — replaces the whole result with the
// first Error it finds among the sorted elements rather than returning a
// list that merely contains one.
func orderForward(body *parser.Func, v value.Value) value.Value {
	seq := value.AsSequence(v)
	out := make([]value.Value, len(seq))
	keys := make([]value.Value, len(seq))
	for i, e := range seq {
		keys[i] = Forward(body, e)
	}
	idx := make([]int, len(seq))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return value.Compare(keys[idx[a]], keys[idx[b]]) < 0
	})
	for i, j := range idx {
		out[i] = seq[j]
	}
	return firstErrorOrList(out)
}

// fixedPointForward implements spec §4.3.2's FixedPoint: repeatedly apply
// body from v, collecting each value seen before it repeats or an Error
// appears. The Error itself, if one is produced, is not included.
func fixedPointForward(body *parser.Func, v value.Value) value.Value {
	seen := map[string]bool{}
	var result []value.Value
	current := v
	for {
		if value.IsError(current) {
			break
		}
		key := value.CanonicalKey(current)
		if seen[key] {
			break
		}
		seen[key] = true
		result = append(result, current)
		current = Forward(body, current)
	}
	return value.NewList(result)
}

// repeatForward implements spec §4.3.2's Repeat, including its three-way
// decomposition of v into (times, start).
func repeatForward(body *parser.Func, v value.Value) value.Value {
	times, start := repeatArgs(v)
	switch t := times.(type) {
	case *value.List:
		k := len(t.Elems)
		out := make([]value.Value, 0, k+1)
		cur := start
		out = append(out, cur)
		for i := 0; i < k; i++ {
			cur = Forward(body, cur)
			out = append(out, cur)
		}
		return value.NewList(out)
	case *value.Integer:
		if t.V.Sign() < 0 {
			return value.NewList(nil)
		}
		out := []value.Value{}
		cur := start
		for i := new(big.Int); i.Cmp(t.V) < 0; i.Add(i, big1) {
			cur = Forward(body, cur)
			out = append(out, cur)
		}
		return value.NewList(out)
	default:
		return value.NewList(nil)
	}
}

func repeatArgs(v value.Value) (times, start value.Value) {
	if l, ok := v.(*value.List); ok {
		switch len(l.Elems) {
		case 0:
			return value.NewList(nil), value.NewList(nil)
		case 1:
			return l.Elems[0], l.Elems[0]
		default:
			return l.Elems[0], l.Elems[1]
		}
	}
	return v, v
}

// orderInverse implements spec §4.3.4's Order⁻¹: treating as_sequence(v) as
// a permutation of itself sorted by body, recover the inverse permutation —
// for each position, where it would have landed had forward Order sorted the
// identity sequence of the same length by the same keys.
func orderInverse(body *parser.Func, v value.Value) value.Value {
	if value.IsError(v) {
		return v
	}
	seq := value.AsSequence(v)
	n := len(seq)
	keys := make([]value.Value, n)
	for i, e := range seq {
		keys[i] = Forward(body, e)
	}
	if e, ok := firstListError(keys); ok {
		return e
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return value.Compare(keys[idx[a]], keys[idx[b]]) < 0
	})
	invPerm := make([]int, n)
	for pos, origIdx := range idx {
		invPerm[origIdx] = pos
	}
	out := make([]value.Value, n)
	for i, p := range invPerm {
		out[i] = value.NewInt(int64(p))
	}
	return value.NewList(out)
}
