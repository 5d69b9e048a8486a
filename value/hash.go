package value

import (
	"strconv"
	"strings"
)

// CanonicalKey builds a string fingerprint of v suitable for use as a hash-map
// key, implementing the structural hashing spec §9 requires for FixedPoint's
// cycle detection. Rather than a hash that could theoretically collide, this
// builds an exact canonical encoding (tagged by variant so an Integer can
// never collide with a same-looking List or Error) — the acceptable
// alternative spec §9 names explicitly, since equal Values always produce
// identical strings and unequal Values always produce distinct ones.
func CanonicalKey(v Value) string {
	var b strings.Builder
	writeCanonicalKey(&b, v)
	return b.String()
}

func writeCanonicalKey(b *strings.Builder, v Value) {
	switch t := v.(type) {
	case *Integer:
		b.WriteString("i:")
		b.WriteString(t.V.String())
	case *List:
		b.WriteString("l:[")
		for i, e := range t.Elems {
			if i > 0 {
				b.WriteByte(',')
			}
			writeCanonicalKey(b, e)
		}
		b.WriteByte(']')
	case *ErrorVal:
		b.WriteString("e:")
		b.WriteString(strconv.Quote(t.Reason))
	default:
		panic("value: CanonicalKey on unknown Value implementation")
	}
}
