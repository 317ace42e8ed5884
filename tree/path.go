package tree

import (
	"fmt"
	"strings"
)

type Side int

const (
	LeftSide Side = iota
	RightSide
)

func (s Side) String() string {
	if s == LeftSide {
		return "left"
	}
	return "right"
}

// Path is a sequence of sides leading down from a root. The zero Path
// addresses the root itself and is written "$".
type Path []Side

func (p Path) String() string {
	buf := &strings.Builder{}
	buf.WriteString("$")
	for _, s := range p {
		buf.WriteByte('.')
		buf.WriteString(s.String())
	}
	return buf.String()
}

// Child returns a new path extending p by s. p is not modified.
func (p Path) Child(s Side) Path {
	res := make(Path, len(p), len(p)+1)
	copy(res, p)
	return append(res, s)
}

// ParsePath parses paths like "$", "$.left.right" or the short "$.l.r". The
// leading "$" may be omitted.
func ParsePath(v string) (Path, error) {
	v = strings.TrimPrefix(v, "$")
	if v == "" {
		return Path{}, nil
	}
	if v[0] != '.' {
		return nil, fmt.Errorf("%w: %q", ErrBadPath, v)
	}
	parts := strings.Split(v[1:], ".")
	res := make(Path, 0, len(parts))
	for _, part := range parts {
		switch part {
		case "left", "l":
			res = append(res, LeftSide)
		case "right", "r":
			res = append(res, RightSide)
		default:
			return nil, fmt.Errorf("%w: unknown segment %q", ErrBadPath, part)
		}
	}
	return res, nil
}

// GetPath returns the node at p below n.
func (n *Node) GetPath(p Path) (*Node, error) {
	cur := n
	for i, s := range p {
		if cur == nil {
			return nil, fmt.Errorf("%w: %s", ErrNoSuchNode, p[:i])
		}
		if s == LeftSide {
			cur = cur.Left
		} else {
			cur = cur.Right
		}
	}
	if cur == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoSuchNode, p)
	}
	return cur, nil
}
