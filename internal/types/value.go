package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is the type of a literal value.
type Kind uint8

const (
	KindNull Kind = iota
	KindInt
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindInt:
		return "int"
	case KindString:
		return "string"
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// KindSet is the union of kinds observed in a column.
type KindSet uint8

// With returns the set extended by k.
func (s KindSet) With(k Kind) KindSet {
	return s | 1<<k
}

// Has reports whether k was observed.
func (s KindSet) Has(k Kind) bool {
	return s&(1<<k) != 0
}

// Nullable reports whether a null was observed.
func (s KindSet) Nullable() bool {
	return s.Has(KindNull)
}

// String renders the set as "int|null".
func (s KindSet) String() string {
	var parts []string
	for _, k := range []Kind{KindInt, KindString, KindNull} {
		if s.Has(k) {
			parts = append(parts, k.String())
		}
	}
	if len(parts) == 0 {
		return "empty"
	}
	return strings.Join(parts, "|")
}

// Value is a literal cell of a values source.
// The zero Value is NULL.
type Value struct {
	str  string
	num  int64
	kind Kind
}

// Int creates an integer value.
func Int(v int64) Value {
	return Value{kind: KindInt, num: v}
}

// Str creates a string value.
func Str(v string) Value {
	return Value{kind: KindString, str: v}
}

// Null creates a NULL value.
func Null() Value {
	return Value{kind: KindNull}
}

// ValueOf converts a Go value into a Value.
// Accepted inputs are nil, Value, string and the integer types.
func ValueOf(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return x, nil
	case string:
		return Str(x), nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	}
	return Value{}, fmt.Errorf("unsupported literal type %T", v)
}

// Kind returns the value's kind.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether the value is NULL.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// Int returns the integer payload.
func (v Value) Int() int64 {
	return v.num
}

// Str returns the string payload.
func (v Value) Str() string {
	return v.str
}

// Any returns the value as nil, int64 or string.
func (v Value) Any() any {
	switch v.kind {
	case KindInt:
		return v.num
	case KindString:
		return v.str
	}
	return nil
}

func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.num, 10)
	case KindString:
		return strconv.Quote(v.str)
	}
	return "null"
}
