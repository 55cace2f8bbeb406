package query

import (
	"errors"
	"fmt"
	"strings"
)

// Comparison is the relation a Filter or Duration applies.
type Comparison int

const (
	EqualTo Comparison = iota + 1
	LessThan
	MoreThan
)

// Comparisons lists every Comparison in display order.
var Comparisons = []Comparison{MoreThan, LessThan, EqualTo}

var (
	// ErrUnknownKind is returned when a node kind name is not recognised.
	ErrUnknownKind = errors.New("unknown query kind")

	// ErrUnknownComparison is returned when a comparison name is not recognised.
	ErrUnknownComparison = errors.New("unknown comparison")
)

// Apply reports whether a <cmp> b holds. An invalid Comparison never holds.
func (c Comparison) Apply(a, b int) bool {
	switch c {
	case EqualTo:
		return a == b
	case LessThan:
		return a < b
	case MoreThan:
		return a > b
	default:
		return false
	}
}

// Valid reports whether c is one of the defined comparisons.
func (c Comparison) Valid() bool {
	return c >= EqualTo && c <= MoreThan
}

func (c Comparison) String() string {
	switch c {
	case EqualTo:
		return "EqualTo"
	case LessThan:
		return "LessThan"
	case MoreThan:
		return "MoreThan"
	default:
		return fmt.Sprintf("Comparison(%d)", int(c))
	}
}

// ParseComparison accepts the canonical names, case-insensitively, and the
// symbols "=", "<" and ">".
func ParseComparison(s string) (Comparison, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "equalto", "equal", "eq", "=", "==":
		return EqualTo, nil
	case "lessthan", "less", "lt", "<":
		return LessThan, nil
	case "morethan", "more", "gt", ">":
		return MoreThan, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownComparison, s)
}

// MarshalText implements encoding.TextMarshaler.
func (c Comparison) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownComparison, int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Comparison) UnmarshalText(text []byte) error {
	parsed, err := ParseComparison(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
