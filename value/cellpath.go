package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Member is one step of a CellPath: a column name or a row index.
type Member struct {
	Name     string
	Index    int
	IsIndex  bool
	Optional bool
}

func (m Member) String() string {
	var s string
	switch {
	case m.IsIndex:
		s = strconv.Itoa(m.Index)
	case m.Name == "" || strings.ContainsAny(m.Name, ".?\" ") || isIndex(m.Name):
		s = strconv.Quote(m.Name)
	default:
		s = m.Name
	}
	if m.Optional {
		s += "?"
	}
	return s
}

// CellPath addresses a value nested inside records and lists, e.g. a.b.0.c.
type CellPath struct {
	Members []Member
}

func (p CellPath) String() string {
	parts := make([]string, len(p.Members))
	for i, m := range p.Members {
		parts[i] = m.String()
	}
	return strings.Join(parts, ".")
}

// ParseCellPath parses dot-separated members. Unquoted all-digit members are
// row indexes; a double-quoted member is always a column name; a trailing ?
// marks the member optional.
func ParseCellPath(s string) (CellPath, error) {
	if s == "" {
		return CellPath{}, fmt.Errorf("empty cell path")
	}
	var p CellPath
	rest := s
	for {
		m, tail, err := parseMember(rest)
		if err != nil {
			return CellPath{}, fmt.Errorf("cell path %q: %w", s, err)
		}
		p.Members = append(p.Members, m)
		if tail == "" {
			return p, nil
		}
		if tail[0] != '.' {
			return CellPath{}, fmt.Errorf("cell path %q: unexpected %q after member", s, tail[:1])
		}
		rest = tail[1:]
	}
}

// MustParseCellPath is like ParseCellPath but panics on error.
func MustParseCellPath(s string) CellPath {
	p, err := ParseCellPath(s)
	if err != nil {
		panic(err)
	}
	return p
}

func parseMember(s string) (Member, string, error) {
	var m Member
	var tail string
	if strings.HasPrefix(s, `"`) {
		end := 1
		for end < len(s) && s[end] != '"' {
			if s[end] == '\\' {
				end++
			}
			end++
		}
		if end >= len(s) {
			return Member{}, "", fmt.Errorf("unterminated quoted member")
		}
		name, err := strconv.Unquote(s[:end+1])
		if err != nil {
			return Member{}, "", fmt.Errorf("bad quoted member: %w", err)
		}
		m.Name = name
		tail = s[end+1:]
	} else {
		end := strings.IndexAny(s, ".?")
		if end < 0 {
			end = len(s)
		}
		raw := s[:end]
		if raw == "" {
			return Member{}, "", fmt.Errorf("empty member")
		}
		if isIndex(raw) {
			n, err := strconv.Atoi(raw)
			if err != nil {
				return Member{}, "", fmt.Errorf("bad row index %q: %w", raw, err)
			}
			m.Index, m.IsIndex = n, true
		} else {
			m.Name = raw
		}
		tail = s[end:]
	}
	if strings.HasPrefix(tail, "?") {
		m.Optional = true
		tail = tail[1:]
	}
	return m, tail, nil
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Update returns a copy of v with the value addressed by p replaced by
// fn(old). Containers along the path are rebuilt; v itself is not modified.
//
// A column member applied to a list addresses that column in every row.
// Optional members that do not resolve leave v unchanged. Any other
// resolution failure is returned as an *Error and the result is v.
func (v Value) Update(p CellPath, fn func(Value) Value) (Value, error) {
	out, err := update(v, p, 0, fn)
	if err != nil {
		return v, err
	}
	return out, nil
}

func update(v Value, p CellPath, depth int, fn func(Value) Value) (Value, error) {
	if depth == len(p.Members) {
		return fn(v), nil
	}
	m := p.Members[depth]

	switch v.kind {
	case KindError:
		return v, v.err
	case KindRecord:
		if m.IsIndex {
			if m.Optional {
				return v, nil
			}
			return v, typeMismatch(p, m, v)
		}
		old, ok := v.rec.Get(m.Name)
		if !ok {
			if m.Optional {
				return v, nil
			}
			return v, &Error{
				Kind:    CellPathNotFound,
				Path:    p.String(),
				Message: fmt.Sprintf("column %q not found", m.Name),
			}
		}
		nv, err := update(old, p, depth+1, fn)
		if err != nil {
			return v, err
		}
		return FromRecord(v.rec.With(m.Name, nv)), nil
	case KindList:
		if m.IsIndex {
			if m.Index >= len(v.list) {
				if m.Optional {
					return v, nil
				}
				return v, &Error{
					Kind:    CellPathNotFound,
					Path:    p.String(),
					Message: fmt.Sprintf("row index %d out of range (%d rows)", m.Index, len(v.list)),
				}
			}
			nv, err := update(v.list[m.Index], p, depth+1, fn)
			if err != nil {
				return v, err
			}
			rows := make([]Value, len(v.list))
			copy(rows, v.list)
			rows[m.Index] = nv
			return List(rows...), nil
		}
		rows := make([]Value, len(v.list))
		for i, row := range v.list {
			nv, err := update(row, p, depth, fn)
			if err != nil {
				return v, err
			}
			rows[i] = nv
		}
		return List(rows...), nil
	default:
		if m.Optional {
			return v, nil
		}
		return v, typeMismatch(p, m, v)
	}
}

func typeMismatch(p CellPath, m Member, v Value) *Error {
	expected := "record or list"
	if m.IsIndex {
		expected = "list"
	}
	return &Error{
		Kind:     CellPathType,
		Expected: expected,
		Actual:   v.TypeName(),
		Path:     p.String(),
		Message:  fmt.Sprintf("cannot follow member %s", m),
	}
}
