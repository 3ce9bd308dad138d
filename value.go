package jsontree

// Kind discriminates the variants of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "invalid"
	}
}

// Value is the closed set of JSON value variants: Null, Bool, Number, String,
// Array and Object. A Value tree is produced atomically by one successful
// Parse call and owns its children exclusively; the parser never hands out a
// partially built tree.
//
// Equality is structural: same variant plus recursively equal payloads.
// Object equality is order-independent, Array equality is positional, and
// Number compares by float64 value.
type Value interface {
	Kind() Kind
	Equal(Value) bool

	// sealed keeps the variant set closed.
	sealed()
}

// Null is the JSON null value.
type Null struct{}

// Bool is a JSON true/false value.
type Bool bool

// Number is a JSON number. Every numeric literal, integer or fractional, is
// stored as a float64; there is no separate integer variant.
type Number float64

// String is a JSON string with all escape sequences already decoded.
type String string

// Array is an ordered sequence of values. Order is significant and preserved
// exactly as parsed.
type Array []Value

// Object maps text keys to values. Iteration order is unspecified; when the
// input contains duplicate keys within one object the last occurrence wins.
type Object map[string]Value

func (Null) Kind() Kind   { return KindNull }
func (Bool) Kind() Kind   { return KindBool }
func (Number) Kind() Kind { return KindNumber }
func (String) Kind() Kind { return KindString }
func (Array) Kind() Kind  { return KindArray }
func (Object) Kind() Kind { return KindObject }

func (Null) sealed()   {}
func (Bool) sealed()   {}
func (Number) sealed() {}
func (String) sealed() {}
func (Array) sealed()  {}
func (Object) sealed() {}

func (Null) Equal(v Value) bool {
	_, ok := v.(Null)
	return ok
}

func (b Bool) Equal(v Value) bool {
	o, ok := v.(Bool)
	return ok && b == o
}

func (n Number) Equal(v Value) bool {
	o, ok := v.(Number)
	return ok && n == o
}

func (s String) Equal(v Value) bool {
	o, ok := v.(String)
	return ok && s == o
}

func (a Array) Equal(v Value) bool {
	o, ok := v.(Array)
	if !ok || len(a) != len(o) {
		return false
	}
	for i := range a {
		if !a[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

func (m Object) Equal(v Value) bool {
	o, ok := v.(Object)
	if !ok || len(m) != len(o) {
		return false
	}
	for k, mv := range m {
		ov, ok := o[k]
		if !ok || !mv.Equal(ov) {
			return false
		}
	}
	return true
}
