package query

import (
	"fmt"
	"strings"
)

// String renders q as a readable boolean expression, for example
//
//	anxiety MoreThan 2 AND (depression LessThan 3 OR NOT elevation EqualTo 1)
//
// And/Or operands that are themselves And/Or are parenthesized. The output
// is for display only.
func String(q Queryable) string {
	var b strings.Builder
	writeNode(&b, q)
	return b.String()
}

func writeNode(b *strings.Builder, q Queryable) {
	if isNil(q) {
		b.WriteString("<nil>")
		return
	}

	switch n := q.(type) {
	case *Filter:
		fmt.Fprintf(b, "%s %s %d", n.Field, n.Comparison, int(n.Value))
	case *And:
		writeOperand(b, n.Left)
		b.WriteString(" AND ")
		writeOperand(b, n.Right)
	case *Or:
		writeOperand(b, n.Left)
		b.WriteString(" OR ")
		writeOperand(b, n.Right)
	case *Not:
		b.WriteString("NOT ")
		writeOperand(b, n.Query)
	case *Duration:
		fmt.Fprintf(b, "%s %d days of ", n.Comparison, n.Days)
		writeOperand(b, n.Query)
	}
}

func writeOperand(b *strings.Builder, q Query) {
	switch q.(type) {
	case *And, *Or:
		if !isNil(q) {
			b.WriteByte('(')
			writeNode(b, q)
			b.WriteByte(')')
			return
		}
	}
	writeNode(b, q)
}
