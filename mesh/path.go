package mesh

import (
	"fmt"
	"strconv"
	"strings"
)

// Path is the sequence of collection entry indices leading from the
// root of a hierarchy to one of its nodes. The empty path addresses the
// root itself.
type Path []int

// String formats the path as "/0/2/1". The empty path formats as "/".
func (p Path) String() string {
	if len(p) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, i := range p {
		b.WriteByte('/')
		b.WriteString(strconv.Itoa(i))
	}
	return b.String()
}

// clone returns a copy of the path with its own backing array.
func (p Path) clone() Path {
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// ParsePath parses a path string as produced by Path.String.
//
// Examples:
//   - "/" -> Path{}
//   - "/0" -> Path{0}
//   - "/1/0/2" -> Path{1, 0, 2}
func ParsePath(s string) (Path, error) {
	if s == "" {
		return nil, fmt.Errorf("empty path")
	}
	if s == "/" {
		return Path{}, nil
	}
	parts := strings.Split(strings.Trim(s, "/"), "/")
	out := make(Path, len(parts))
	for i, part := range parts {
		v, err := strconv.Atoi(part)
		if err != nil || v < 0 {
			return nil, fmt.Errorf("invalid path component %q in %q", part, s)
		}
		out[i] = v
	}
	return out, nil
}
