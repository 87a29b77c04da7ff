package logger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// ValueKind is the variant held by a Value.
type ValueKind int

const (
	TextValue ValueKind = iota
	NumberValue
	BoolValue
	NullValue
	StructuredValue
)

// Value is a single loggable argument.
type Value struct {
	kind ValueKind
	text string
	val  any
}

// String returns a text value.
func String(s string) Value { return Value{kind: TextValue, text: s} }

// Int returns a number value.
func Int(n int64) Value { return Value{kind: NumberValue, text: strconv.FormatInt(n, 10)} }

// Uint returns a number value.
func Uint(n uint64) Value { return Value{kind: NumberValue, text: strconv.FormatUint(n, 10)} }

// Float returns a number value.
func Float(f float64) Value {
	return Value{kind: NumberValue, text: strconv.FormatFloat(f, 'g', -1, 64)}
}

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: BoolValue, text: strconv.FormatBool(b)} }

// Null returns the null value.
func Null() Value { return Value{kind: NullValue, text: "<nil>"} }

// Any returns a structured value rendered by the structured printer.
func Any(v any) Value {
	if v == nil {
		return Null()
	}
	return Value{kind: StructuredValue, val: v}
}

// ValueOf classifies a dynamic argument.
// Typed nil pointers, maps, slices, funcs and channels are null; their
// Error or String methods are never called.
func ValueOf(v any) Value {
	if isNil(v) {
		return Null()
	}
	switch x := v.(type) {
	case Value:
		return x
	case string:
		return String(x)
	case error:
		return String(x.Error())
	case fmt.Stringer:
		return String(x.String())
	case bool:
		return Bool(x)
	case int:
		return Int(int64(x))
	case int8:
		return Int(int64(x))
	case int16:
		return Int(int64(x))
	case int32:
		return Int(int64(x))
	case int64:
		return Int(x)
	case uint:
		return Uint(uint64(x))
	case uint8:
		return Uint(uint64(x))
	case uint16:
		return Uint(uint64(x))
	case uint32:
		return Uint(uint64(x))
	case uint64:
		return Uint(x)
	case float32:
		return Float(float64(x))
	case float64:
		return Float(x)
	}
	return Any(v)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// Kind returns the variant of v.
func (v Value) Kind() ValueKind { return v.kind }

// Text renders v as it appears in a log line.
func (v Value) Text() string {
	if v.kind != StructuredValue {
		return v.text
	}
	return renderStructured(v.val)
}

// renderStructured is the single printer for structured values: compact
// JSON without HTML escaping. Values JSON cannot encode, and structs whose
// fields are all unexported, print with %+v instead.
func renderStructured(v any) string {
	if hiddenStruct(v) {
		return fmt.Sprintf("%+v", v)
	}
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// hiddenStruct reports whether v is a struct, or pointer to one, with fields
// but none of them exported. JSON would print such a value as {}.
func hiddenStruct(v any) bool {
	rt := reflect.TypeOf(v)
	for rt != nil && rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	if rt == nil || rt.Kind() != reflect.Struct || rt.NumField() == 0 {
		return false
	}
	for i := 0; i < rt.NumField(); i++ {
		if rt.Field(i).IsExported() {
			return false
		}
	}
	return true
}

func valuesOf(args []any) []Value {
	vals := make([]Value, len(args))
	for i, a := range args {
		vals[i] = ValueOf(a)
	}
	return vals
}

func joinValues(vals []Value) string {
	if len(vals) == 0 {
		return ""
	}
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = v.Text()
	}
	return strings.Join(parts, " ")
}
