package parser

import (
	"fmt"

	"github.com/akashmaji946/minipyth/lexer"
)

// ParseError reports an ill-formed program (spec §7 stratum 2): a bind with
// nothing open to close, a quote reaching the bottom of the stack, or a
// SoloQuote with no preceding open operator.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string { return "parse error: " + e.Msg }

// entryKind identifies what a single working-stack slot holds (spec §4.2).
type entryKind int

const (
	entryHigher entryKind = iota
	entryDouble
	entryDoubleHalf
	entryFunc
	entryQuote
)

// entry is one slot of the parser's working stack. Exactly the fields
// matching Kind are meaningful.
type entry struct {
	kind   entryKind
	higher lexer.HigherOp
	double lexer.DoubleOp
	left   *Func // entryDoubleHalf: the already-closed left body
	f      *Func // entryFunc: the closed Func
}

// Parse runs the stack machine described in spec §4.2 over tokens and
// returns the single Bound(funcs) tree it produces.
func Parse(tokens []lexer.Token) (*Func, error) {
	var stack []entry

	for _, tok := range tokens {
		if tok.Kind == lexer.KindSoloQuote {
			if err := insertSoloQuoteMarker(&stack); err != nil {
				return nil, err
			}
		}

		switch tok.Kind {
		case lexer.KindBasic:
			stack = append(stack, entry{kind: entryFunc, f: NewBasic(tok.Basic)})
		case lexer.KindHigher:
			stack = append(stack, entry{kind: entryHigher, higher: tok.Higher})
		case lexer.KindDouble:
			stack = append(stack, entry{kind: entryDouble, double: tok.Double})
		case lexer.KindBound1:
			if err := closeBound1(&stack); err != nil {
				return nil, err
			}
		case lexer.KindBoundQuote, lexer.KindSoloQuote:
			if err := closeQuote(&stack); err != nil {
				return nil, err
			}
		default:
			return nil, &ParseError{Msg: fmt.Sprintf("unhandled token kind %v", tok.Kind)}
		}
	}

	return finalize(stack), nil
}

// insertSoloQuoteMarker implements the SoloQuote rule: before anything else
// happens this moment, find the first (bottom-most) stack entry that is not
// a bare Func — an still-open operator — and splice a Quote marker in
// immediately after it. The token is then dispatched exactly like any other
// BoundQuote, which (since exactly one Quote now sits on the stack) closes
// it immediately.
func insertSoloQuoteMarker(stack *[]entry) error {
	idx := -1
	for i, e := range *stack {
		if e.kind != entryFunc {
			idx = i
			break
		}
	}
	if idx == -1 {
		return &ParseError{Msg: "SoloQuote has no preceding open operator"}
	}
	s := *stack
	s = append(s, entry{})
	copy(s[idx+2:], s[idx+1:])
	s[idx+1] = entry{kind: entryQuote}
	*stack = s
	return nil
}

// closeBound1 implements the 'z' token (spec §4.2, Bound1): pop entries into
// a reversal buffer until an open operator is found, then close it.
func closeBound1(stack *[]entry) error {
	var buf []*Func
	for {
		s := *stack
		if len(s) == 0 {
			return &ParseError{Msg: "bind (z) reached the bottom of the stack"}
		}
		top := s[len(s)-1]
		*stack = s[:len(s)-1]

		switch top.kind {
		case entryFunc:
			buf = append(buf, top.f)
		case entryHigher:
			body := NewBound(reversed(buf))
			*stack = append(*stack, entry{kind: entryFunc, f: NewHigher(top.higher, body)})
			return nil
		case entryDouble:
			body := NewBound(reversed(buf))
			*stack = append(*stack, entry{kind: entryDoubleHalf, double: top.double, left: body})
			return nil
		case entryDoubleHalf:
			body2 := NewBound(reversed(buf))
			*stack = append(*stack, entry{kind: entryFunc, f: NewDouble(top.double, top.left, body2)})
			return nil
		case entryQuote:
			return &ParseError{Msg: "bind (z) reached an open quote"}
		}
	}
}

// closeQuote implements the BoundQuote/SoloQuote token (spec §4.2): if no
// Quote currently sits on the stack, push one. Otherwise pop toward the
// paired Quote, closing any open operators encountered along the way either
// with an empty body (buffer empty) or the immediately preceding buffered
// Func (buffer nonempty), then close the operator found just below the
// Quote using the reversed buffer as its body.
func closeQuote(stack *[]entry) error {
	quoteCount := 0
	for _, e := range *stack {
		if e.kind == entryQuote {
			quoteCount++
		}
	}
	if quoteCount == 0 {
		*stack = append(*stack, entry{kind: entryQuote})
		return nil
	}

	var buf []*Func
	for {
		s := *stack
		if len(s) == 0 {
			return &ParseError{Msg: "quote close reached the bottom of the stack"}
		}
		top := s[len(s)-1]
		*stack = s[:len(s)-1]

		switch top.kind {
		case entryFunc:
			buf = append(buf, top.f)

		case entryHigher:
			if len(buf) == 0 {
				buf = append(buf, NewHigher(top.higher, emptyBound()))
			} else {
				g := buf[len(buf)-1]
				buf = buf[:len(buf)-1]
				buf = append(buf, NewHigher(top.higher, g))
			}

		case entryDouble:
			if len(buf) == 0 {
				buf = append(buf, NewDouble(top.double, emptyBound(), emptyBound()))
			} else {
				g := buf[len(buf)-1]
				buf = buf[:len(buf)-1]
				*stack = append(*stack, entry{kind: entryDoubleHalf, double: top.double, left: g})
			}

		case entryDoubleHalf:
			if len(buf) == 0 {
				buf = append(buf, NewDouble(top.double, top.left, emptyBound()))
			} else {
				g := buf[len(buf)-1]
				buf = buf[:len(buf)-1]
				buf = append(buf, NewDouble(top.double, top.left, g))
			}

		case entryQuote:
			body := NewBound(reversed(buf))
			s := *stack
			if len(s) == 0 {
				return &ParseError{Msg: "quote has nothing to close"}
			}
			x := s[len(s)-1]
			*stack = s[:len(s)-1]

			switch x.kind {
			case entryHigher:
				*stack = append(*stack, entry{kind: entryFunc, f: NewHigher(x.higher, body)})
			case entryDouble:
				*stack = append(*stack, entry{kind: entryDoubleHalf, double: x.double, left: body})
			case entryDoubleHalf:
				*stack = append(*stack, entry{kind: entryFunc, f: NewDouble(x.double, x.left, body)})
			case entryFunc:
				s2 := *stack
				if len(s2) == 0 || s2[len(s2)-1].kind != entryDouble {
					return &ParseError{Msg: "quote after a Func must be preceded by an open Double"}
				}
				nextUnder := s2[len(s2)-1]
				*stack = s2[:len(s2)-1]
				*stack = append(*stack, entry{kind: entryFunc, f: NewDouble(nextUnder.double, x.f, body)})
			default:
				return &ParseError{Msg: "quote close found an invalid preceding entry"}
			}
			return nil
		}
	}
}

// hdKind/hd model the secondary "open" stack used by finalize, mirroring
// the still-open Higher/Double/DoubleHalf operators walked past during
// end-of-stream finalisation (spec §4.2).
type hdKind int

const (
	hdHigher hdKind = iota
	hdDouble
	hdDoubleHalf
)

type hd struct {
	kind   hdKind
	higher lexer.HigherOp
	double lexer.DoubleOp
	f      *Func // hdDoubleHalf: the already-closed left body
}

// finalize implements end-of-stream finalisation (spec §4.2): walk the final
// stack left-to-right, letting each Func be absorbed by however many open
// operators immediately precede it, then close out anything still open
// against a synthetic empty Bound([]) body.
func finalize(stack []entry) *Func {
	var funcs []*Func
	var open []hd

	for _, e := range stack {
		switch e.kind {
		case entryFunc:
			working := e.f
			for {
				if len(open) == 0 {
					funcs = append(funcs, working)
					break
				}
				top := open[len(open)-1]
				open = open[:len(open)-1]
				if top.kind == hdDouble {
					open = append(open, hd{kind: hdDoubleHalf, double: top.double, f: working})
					break
				}
				if top.kind == hdHigher {
					working = NewHigher(top.higher, working)
				} else {
					working = NewDouble(top.double, top.f, working)
				}
			}
		case entryHigher:
			open = append(open, hd{kind: hdHigher, higher: e.higher})
		case entryDouble:
			open = append(open, hd{kind: hdDouble, double: e.double})
		case entryDoubleHalf:
			open = append(open, hd{kind: hdDoubleHalf, double: e.double, f: e.left})
		case entryQuote:
			// Every Quote is paired by the time parsing reaches end of
			// stream; closeQuote never leaves one on the stack unpaired.
			panic("parser: unpaired Quote survived to end-of-stream finalisation")
		}
	}

	if len(open) > 0 {
		working := emptyBound()
		for len(open) > 0 {
			top := open[len(open)-1]
			open = open[:len(open)-1]
			switch top.kind {
			case hdHigher:
				working = NewHigher(top.higher, working)
			case hdDouble:
				working = NewDouble(top.double, working, emptyBound())
			case hdDoubleHalf:
				working = NewDouble(top.double, top.f, working)
			}
		}
		funcs = append(funcs, working)
	}

	return NewBound(funcs)
}

func reversed(fs []*Func) []*Func {
	out := make([]*Func, len(fs))
	for i, f := range fs {
		out[len(fs)-1-i] = f
	}
	return out
}
