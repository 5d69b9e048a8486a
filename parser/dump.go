package parser

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/minipyth/lexer"
)

// Dump renders f as an indented tree, adapted from the teacher's
// PrintingVisitor (main.go's VisitRootNode/VisitExpressionNode family):
// where that visitor walks a statement/expression AST printing one line per
// node with growing indentation, Dump does the same over the much smaller
// Func sum type, for the --debug CLI flag (spec §4.4, §6.2).
func Dump(f *Func) string {
	var b strings.Builder
	dumpNode(&b, f, 0)
	return b.String()
}

const dumpIndentSize = 2

func dumpNode(b *strings.Builder, f *Func, indent int) {
	pad := strings.Repeat(" ", indent)
	switch f.Kind {
	case BasicKind:
		fmt.Fprintf(b, "%sBasic(%s)\n", pad, basicName(f.Basic))
	case HigherKind:
		fmt.Fprintf(b, "%sHigher(%s)\n", pad, higherName(f.HigherOp))
		dumpNode(b, f.HigherBody, indent+dumpIndentSize)
	case DoubleKind:
		fmt.Fprintf(b, "%sDouble(%s)\n", pad, doubleName(f.DoubleOp))
		dumpNode(b, f.DoubleLeft, indent+dumpIndentSize)
		dumpNode(b, f.DoubleRight, indent+dumpIndentSize)
	case BoundKind:
		fmt.Fprintf(b, "%sBound[%d]\n", pad, len(f.Seq))
		for _, g := range f.Seq {
			dumpNode(b, g, indent+dumpIndentSize)
		}
	default:
		fmt.Fprintf(b, "%s<unknown Func kind>\n", pad)
	}
}

func basicName(p lexer.Primitive) string {
	switch p {
	case lexer.Head:
		return "Head"
	case lexer.Tail:
		return "Tail"
	case lexer.Sum:
		return "Sum"
	case lexer.Product:
		return "Product"
	case lexer.PowerSet:
		return "PowerSet"
	case lexer.Length:
		return "Length"
	case lexer.Negate:
		return "Negate"
	case lexer.Equal:
		return "Equal"
	case lexer.Combine:
		return "Combine"
	case lexer.AllPair:
		return "AllPair"
	default:
		return "?"
	}
}

func higherName(h lexer.HigherOp) string {
	switch h {
	case lexer.Map:
		return "Map"
	case lexer.Filter:
		return "Filter"
	case lexer.Order:
		return "Order"
	case lexer.FixedPoint:
		return "FixedPoint"
	case lexer.Inverse:
		return "Inverse"
	case lexer.Repeat:
		return "Repeat"
	default:
		return "?"
	}
}

func doubleName(d lexer.DoubleOp) string {
	switch d {
	case lexer.While:
		return "While"
	case lexer.Bifurcate:
		return "Bifurcate"
	default:
		return "?"
	}
}
