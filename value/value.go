/*
File    : minipyth/value/value.go
*/

// Package value implements Minipyth's universal value domain (spec §3.1):
// arbitrary-precision Integer, heterogeneous nested List, and Error, plus the
// structural equality, total order, truthiness, and sequence-coercion rules
// every evaluator primitive is defined against.
package value

import (
	"fmt"
	"math/big"
	"strings"
)

// Kind identifies which of the three Value variants a given Value is.
type Kind int

const (
	// IntegerKind marks an arbitrary-precision integer scalar.
	IntegerKind Kind = iota
	// ListKind marks a finite ordered, possibly heterogeneous, sequence.
	ListKind
	// ErrorKind marks a propagating failure value.
	ErrorKind
)

// Value is the common interface implemented by Integer, List, and ErrorVal.
// It is deliberately small: everything else (ordering, truthiness, sequence
// coercion, hashing) is a free function over Value, following the teacher's
// convention of keeping per-type methods to identity and display only.
type Value interface {
	// Kind reports which of the three variants this Value is.
	Kind() Kind
	// String renders the Value using the grammar in spec §6.3, except
	// ErrorVal which renders as "Error: <reason>" (not re-parseable).
	String() string
}

// Integer is the arbitrary-precision signed integer variant.
type Integer struct {
	V *big.Int
}

// NewInt builds an Integer from a native int64, a convenience used
// throughout the evaluator for small constants (0, 1, -1, ...).
func NewInt(n int64) *Integer {
	return &Integer{V: big.NewInt(n)}
}

// Kind identifies Integer as IntegerKind.
func (i *Integer) Kind() Kind { return IntegerKind }

// String renders the integer in decimal, e.g. "42" or "-7".
func (i *Integer) String() string { return i.V.String() }

// List is the finite ordered, possibly heterogeneous sequence variant.
// Lists never contain cycles; every List is a freshly built tree with
// exclusive ownership of its elements, per spec §9.
type List struct {
	Elems []Value
}

// NewList builds a List from the given elements (no copy; caller must not
// alias the backing slice afterward).
func NewList(elems []Value) *List {
	if elems == nil {
		elems = []Value{}
	}
	return &List{Elems: elems}
}

// Kind identifies List as ListKind.
func (l *List) Kind() Kind { return ListKind }

// String renders the list as "[elem, elem, ...]" per spec §6.3.
func (l *List) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range l.Elems {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.String())
	}
	b.WriteByte(']')
	return b.String()
}

// ErrorVal is the propagating-failure variant. It carries a human-readable
// reason and flows through most operators unchanged (spec §7 stratum 1).
type ErrorVal struct {
	Reason string
}

// NewError builds an ErrorVal from a format string, mirroring the teacher's
// createError helper convention.
func NewError(format string, args ...interface{}) *ErrorVal {
	return &ErrorVal{Reason: fmt.Sprintf(format, args...)}
}

// Kind identifies ErrorVal as ErrorKind.
func (e *ErrorVal) Kind() Kind { return ErrorKind }

// String renders as "Error: <reason>"; this form is not parseable back into
// a Value by the §6.3 grammar.
func (e *ErrorVal) String() string { return "Error: " + e.Reason }

// IsError reports whether v is the Error variant — the single predicate most
// primitive implementations need before deciding whether to propagate.
func IsError(v Value) bool {
	_, ok := v.(*ErrorVal)
	return ok
}

// Truthy implements spec §3.1's truthiness predicate: Integer is truthy iff
// nonzero, List is truthy iff nonempty, Error is always falsy.
func Truthy(v Value) bool {
	switch t := v.(type) {
	case *Integer:
		return t.V.Sign() != 0
	case *List:
		return len(t.Elems) > 0
	case *ErrorVal:
		return false
	default:
		panic(fmt.Sprintf("value: unknown Value implementation %T", v))
	}
}

// Equal implements structural equality over Value, used by the Equal
// primitive and the parser/evaluator test suites. Two Errors are never
// structurally equal to each other (spec only asks for ordering equality
// among Errors, not value equality) unless they carry the same reason.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case *Integer:
		bv, ok := b.(*Integer)
		return ok && av.V.Cmp(bv.V) == 0
	case *List:
		bv, ok := b.(*List)
		if !ok || len(av.Elems) != len(bv.Elems) {
			return false
		}
		for i := range av.Elems {
			if !Equal(av.Elems[i], bv.Elems[i]) {
				return false
			}
		}
		return true
	case *ErrorVal:
		bv, ok := b.(*ErrorVal)
		return ok && av.Reason == bv.Reason
	default:
		panic(fmt.Sprintf("value: unknown Value implementation %T", a))
	}
}
