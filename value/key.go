package value

// category orders the three Value variants relative to one another: every
// Integer precedes every List precedes every Error (spec §3.1 total order,
// rule 1).
type category int

const (
	catInteger category = iota
	catList
	catError
)

func categoryOf(v Value) category {
	switch v.(type) {
	case *Integer:
		return catInteger
	case *List:
		return catList
	case *ErrorVal:
		return catError
	default:
		panic("value: categoryOf on unknown Value implementation")
	}
}

// Compare implements the total order over Value from spec §3.1: Integers
// compare numerically, Lists compare lexicographically by their elements'
// order keys (a shorter list that agrees with a longer one on every shared
// prefix element sorts first), and Errors compare equal to one another. It
// returns a negative number if a sorts before b, zero if they are order-equal,
// and a positive number if a sorts after b.
func Compare(a, b Value) int {
	ca, cb := categoryOf(a), categoryOf(b)
	if ca != cb {
		return int(ca) - int(cb)
	}
	switch av := a.(type) {
	case *Integer:
		return av.V.Cmp(b.(*Integer).V)
	case *List:
		bv := b.(*List)
		n := len(av.Elems)
		if len(bv.Elems) < n {
			n = len(bv.Elems)
		}
		for i := 0; i < n; i++ {
			if c := Compare(av.Elems[i], bv.Elems[i]); c != 0 {
				return c
			}
		}
		return len(av.Elems) - len(bv.Elems)
	case *ErrorVal:
		return 0
	default:
		panic("value: Compare on unknown Value implementation")
	}
}
