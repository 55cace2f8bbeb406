package query

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// DomainQuery prefixes query hashes. The version suffix leaves room for a
// different signature format later.
const DomainQuery = "dayquery/query/v1"

// Signature returns the canonical structural form of q, e.g.
// "And(Filter(MoreThan,2,anxiety),Not(Filter(EqualTo,1,elevation)))".
// Two trees have the same signature exactly when they have the same shape
// and attributes.
func Signature(q Queryable) string {
	var b strings.Builder
	writeSignature(&b, q)
	return b.String()
}

func writeSignature(b *strings.Builder, q Queryable) {
	if isNil(q) {
		b.WriteString("nil")
		return
	}
	switch n := q.(type) {
	case *Filter:
		fmt.Fprintf(b, "Filter(%s,%d,%s)", n.Comparison, int(n.Value), n.Field)
	case *And:
		b.WriteString("And(")
		writeSignature(b, n.Left)
		b.WriteByte(',')
		writeSignature(b, n.Right)
		b.WriteByte(')')
	case *Or:
		b.WriteString("Or(")
		writeSignature(b, n.Left)
		b.WriteByte(',')
		writeSignature(b, n.Right)
		b.WriteByte(')')
	case *Not:
		b.WriteString("Not(")
		writeSignature(b, n.Query)
		b.WriteByte(')')
	case *Duration:
		fmt.Fprintf(b, "Duration(%s,%d,", n.Comparison, n.Days)
		writeSignature(b, n.Query)
		b.WriteByte(')')
	}
}

// Hash returns a content hash of q: SHA-256 over DomainQuery, a 0x00
// separator, and Signature(q), hex encoded.
func Hash(q Queryable) string {
	h := sha256.New()
	h.Write([]byte(DomainQuery))
	h.Write([]byte{0x00})
	h.Write([]byte(Signature(q)))
	return hex.EncodeToString(h.Sum(nil))
}

// Equal reports whether a and b are structurally identical.
func Equal(a, b Queryable) bool {
	return Signature(a) == Signature(b)
}
