package jsontree

import (
	"math"
	"sort"
	"strconv"
)

// Marshal renders the most compact JSON form of v, with no inserted
// whitespace. It is total: every Value tree renders, and every tree produced
// by Parse round-trips to an Equal tree, except that non-finite Numbers
// (NaN/±Inf, reachable by hand or through overflowing literals such as 1e999)
// render as null and therefore re-parse as Null.
//
// Object key order follows map iteration order and is therefore not stable;
// use MarshalSorted when deterministic output is required.
func Marshal(v Value) []byte {
	e := encoder{indent: -1}
	e.value(v)
	return e.buf
}

// MarshalIndent pretty-prints v: a newline plus width spaces per nesting
// level after every ',' and after '{'/'[', closing delimiters on their own
// line, and a space after ':'. Empty containers stay compact.
func MarshalIndent(v Value, width int) []byte {
	if width < 0 {
		width = 0
	}
	e := encoder{indent: width}
	e.value(v)
	return e.buf
}

// MarshalSorted renders the compact form with object keys in lexicographic
// order, for callers that need deterministic output.
func MarshalSorted(v Value) []byte {
	e := encoder{indent: -1, sorted: true}
	e.value(v)
	return e.buf
}

type encoder struct {
	buf    []byte
	indent int // spaces per level; -1 selects the compact form
	sorted bool
	depth  int
}

func (e *encoder) value(v Value) {
	switch x := v.(type) {
	case Null, nil:
		e.buf = append(e.buf, "null"...)
	case Bool:
		if x {
			e.buf = append(e.buf, "true"...)
		} else {
			e.buf = append(e.buf, "false"...)
		}
	case Number:
		e.number(float64(x))
	case String:
		e.string(string(x))
	case Array:
		e.array(x)
	case Object:
		e.object(x)
	}
}

func (e *encoder) number(f float64) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		// Not representable in JSON. Parse only yields non-finite numbers when
		// the input magnitude overflowed float64; render as null.
		e.buf = append(e.buf, "null"...)
		return
	}
	// Shortest representation that re-parses to the same float64.
	e.buf = strconv.AppendFloat(e.buf, f, 'g', -1, 64)
}

const hexDigits = "0123456789abcdef"

func (e *encoder) string(s string) {
	e.buf = append(e.buf, '"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"':
			e.buf = append(e.buf, '\\', '"')
		case c == '\\':
			e.buf = append(e.buf, '\\', '\\')
		case c == '\n':
			e.buf = append(e.buf, '\\', 'n')
		case c == '\r':
			e.buf = append(e.buf, '\\', 'r')
		case c == '\t':
			e.buf = append(e.buf, '\\', 't')
		case c == '\b':
			e.buf = append(e.buf, '\\', 'b')
		case c == '\f':
			e.buf = append(e.buf, '\\', 'f')
		case c < 0x20:
			e.buf = append(e.buf, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xF])
		default:
			// UTF-8 passes through unescaped.
			e.buf = append(e.buf, c)
		}
	}
	e.buf = append(e.buf, '"')
}

func (e *encoder) array(a Array) {
	if len(a) == 0 {
		e.buf = append(e.buf, '[', ']')
		return
	}
	e.buf = append(e.buf, '[')
	e.depth++
	for i, el := range a {
		if i > 0 {
			e.buf = append(e.buf, ',')
		}
		e.newline()
		e.value(el)
	}
	e.depth--
	e.newline()
	e.buf = append(e.buf, ']')
}

func (e *encoder) object(m Object) {
	if len(m) == 0 {
		e.buf = append(e.buf, '{', '}')
		return
	}
	e.buf = append(e.buf, '{')
	e.depth++
	first := true
	pair := func(k string, v Value) {
		if !first {
			e.buf = append(e.buf, ',')
		}
		first = false
		e.newline()
		e.string(k)
		e.buf = append(e.buf, ':')
		if e.indent >= 0 {
			e.buf = append(e.buf, ' ')
		}
		e.value(v)
	}
	if e.sorted {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			pair(k, m[k])
		}
	} else {
		for k, v := range m {
			pair(k, v)
		}
	}
	e.depth--
	e.newline()
	e.buf = append(e.buf, '}')
}

func (e *encoder) newline() {
	if e.indent < 0 {
		return
	}
	e.buf = append(e.buf, '\n')
	for i := 0; i < e.depth*e.indent; i++ {
		e.buf = append(e.buf, ' ')
	}
}
