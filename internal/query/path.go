package query

import (
	"fmt"
	"strconv"
	"strings"
)

// PathSegment is one descent step from a node to one of its children.
type PathSegment int

const (
	// Left descends into the left child of an And or Or.
	Left PathSegment = iota + 1
	// Right descends into the right child of an And or Or.
	Right
	// DirectChild descends into the only child of a Not or Duration.
	DirectChild
)

// Path addresses a node by the steps taken from the root. The empty path
// addresses the root itself.
type Path []PathSegment

func (s PathSegment) String() string {
	switch s {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case DirectChild:
		return "DirectChild"
	default:
		return fmt.Sprintf("PathSegment(%d)", int(s))
	}
}

// key is the short form used in path keys.
func (s PathSegment) key() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	case DirectChild:
		return "child"
	default:
		return strconv.Itoa(int(s))
	}
}

// ParseSegment accepts "Left", "Right", "DirectChild" in any case, and the
// short key forms "left", "right", "child".
func ParseSegment(s string) (PathSegment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	case "directchild", "child":
		return DirectChild, nil
	}
	return 0, fmt.Errorf("unknown path segment %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (s PathSegment) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *PathSegment) UnmarshalText(text []byte) error {
	parsed, err := ParseSegment(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (p Path) String() string {
	parts := make([]string, len(p))
	for i, s := range p {
		parts[i] = s.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Child returns a new path extended by s. The receiver is not modified.
func (p Path) Child(s PathSegment) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, s)
}

// PathError reports a path segment the addressed node cannot follow.
type PathError struct {
	// Path is the full path that was attempted.
	Path Path
	// Depth is the index of the offending segment within Path.
	Depth int
	// Segment is the offending segment.
	Segment PathSegment
	// Actual is the kind of node the segment was applied to. Empty when the
	// walk reached a nil child.
	Actual Kind
}

func (e *PathError) Error() string {
	actual := string(e.Actual)
	if actual == "" {
		actual = "nil node"
	}
	return fmt.Sprintf("invalid path %s: segment %d is %s, which needs %s, but found %s",
		e.Path, e.Depth, e.Segment, expectedFor(e.Segment), actual)
}

func expectedFor(s PathSegment) string {
	switch s {
	case Left, Right:
		return "an And or Or node"
	case DirectChild:
		return "a Not or Duration node"
	default:
		return "a known segment"
	}
}

// Locate walks path from root and returns the node it addresses. It never
// panics; a segment the current node cannot follow yields a *PathError.
func Locate(path Path, root Queryable) (Queryable, error) {
	node := root
	for depth, seg := range path {
		next, ok := child(node, seg)
		if !ok {
			return nil, &PathError{Path: path, Depth: depth, Segment: seg, Actual: kindOf(node)}
		}
		node = next
	}
	return node, nil
}

// child returns the child of node selected by seg.
func child(node Queryable, seg PathSegment) (Queryable, bool) {
	var next Query
	switch n := node.(type) {
	case *And:
		if n == nil {
			return nil, false
		}
		switch seg {
		case Left:
			next = n.Left
		case Right:
			next = n.Right
		default:
			return nil, false
		}
	case *Or:
		if n == nil {
			return nil, false
		}
		switch seg {
		case Left:
			next = n.Left
		case Right:
			next = n.Right
		default:
			return nil, false
		}
	case *Not:
		if n == nil || seg != DirectChild {
			return nil, false
		}
		next = n.Query
	case *Duration:
		if n == nil || seg != DirectChild {
			return nil, false
		}
		next = n.Query
	default:
		return nil, false
	}
	if isNil(next) {
		return nil, false
	}
	return next, true
}

func kindOf(node Queryable) Kind {
	if isNil(node) {
		return ""
	}
	return node.Kind()
}

// isNil reports whether q is nil or a typed nil node pointer.
func isNil(q Queryable) bool {
	switch n := q.(type) {
	case nil:
		return true
	case *Filter:
		return n == nil
	case *And:
		return n == nil
	case *Or:
		return n == nil
	case *Not:
		return n == nil
	case *Duration:
		return n == nil
	}
	return false
}

// FormatKey encodes a list index and path as a single string such as
// "2-left-child". Keys identify a node across renders of the query list.
func FormatKey(index int, path Path) string {
	parts := make([]string, 0, len(path)+1)
	parts = append(parts, strconv.Itoa(index))
	for _, seg := range path {
		parts = append(parts, seg.key())
	}
	return strings.Join(parts, "-")
}

// ParseKey decodes a key produced by FormatKey.
func ParseKey(key string) (int, Path, error) {
	pieces := strings.Split(strings.TrimSpace(key), "-")
	index, err := strconv.Atoi(pieces[0])
	if err != nil {
		return 0, nil, fmt.Errorf("parse key %q: index: %w", key, err)
	}
	if index < 0 {
		return 0, nil, fmt.Errorf("parse key %q: negative index", key)
	}

	path := make(Path, 0, len(pieces)-1)
	for _, piece := range pieces[1:] {
		seg, err := ParseSegment(piece)
		if err != nil {
			return 0, nil, fmt.Errorf("parse key %q: %w", key, err)
		}
		path = append(path, seg)
	}
	return index, path, nil
}
