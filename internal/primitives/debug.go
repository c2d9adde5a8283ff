// Debug renders values in the tutorial's debug notation: strings are quoted,
// characters single-quoted, floats always carry a fractional part, tuples
// print as (a, b), sequences as [a, b] and records as Name { field: value }.
package primitives

import (
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// Debugger is implemented by values that render themselves in debug notation.
type Debugger interface {
	DebugString() string
}

// Char is a single character. A plain rune is an int32 and renders as a number.
type Char rune

func (c Char) DebugString() string { return strconv.QuoteRune(rune(c)) }

func (c Char) String() string { return string(rune(c)) }

// Tuple is an anonymous, heterogeneous, fixed-size group of values.
type Tuple []any

func (t Tuple) DebugString() string {
	if len(t) == 1 {
		return "(" + Debug(t[0]) + ",)"
	}
	return "(" + joinDebug(t) + ")"
}

// Field is a named value inside a record rendered by DebugStruct.
type Field struct {
	Name  string
	Value any
}

// DebugTuple renders a tuple struct: Name(a, b).
func DebugTuple(name string, fields ...any) string {
	return name + "(" + joinDebug(fields) + ")"
}

// DebugStruct renders a record: Name { a: 1, b: 2 }. A record without fields
// renders as its bare name.
func DebugStruct(name string, fields ...Field) string {
	if len(fields) == 0 {
		return name
	}
	var b strings.Builder
	b.WriteString(name)
	b.WriteString(" { ")
	for i, f := range fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.Name)
		b.WriteString(": ")
		b.WriteString(Debug(f.Value))
	}
	b.WriteString(" }")
	return b.String()
}

// Debug renders v in debug notation. Structs without a DebugString method are
// rendered from their exported fields; the `debug` struct tag overrides the
// field name, otherwise the Go name is converted to snake_case. A field
// tagged `debug:"-"` is omitted.
func Debug(v any) string {
	if v == nil {
		return "None"
	}
	if d, ok := v.(Debugger); ok {
		return d.DebugString()
	}
	return debugValue(reflect.ValueOf(v))
}

func debugValue(rv reflect.Value) string {
	if rv.CanInterface() {
		if d, ok := rv.Interface().(Debugger); ok {
			return d.DebugString()
		}
	}

	switch rv.Kind() {
	case reflect.Invalid:
		return "None"
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return formatFloat(rv.Float(), 32)
	case reflect.Float64:
		return formatFloat(rv.Float(), 64)
	case reflect.String:
		return strconv.Quote(rv.String())
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return "None"
		}
		return debugValue(rv.Elem())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return "[]"
		}
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = debugValue(rv.Index(i))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case reflect.Map:
		entries := make([]string, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			entries = append(entries, debugValue(iter.Key())+": "+debugValue(iter.Value()))
		}
		sort.Strings(entries)
		return "{" + strings.Join(entries, ", ") + "}"
	case reflect.Struct:
		return debugStruct(rv)
	case reflect.Func:
		return "<closure>"
	default:
		return rv.Type().String()
	}
}

func debugStruct(rv reflect.Value) string {
	typ := rv.Type()
	var fields []Field
	for i := 0; i < typ.NumField(); i++ {
		sf := typ.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := sf.Tag.Get("debug")
		if name == "-" {
			continue
		}
		if name == "" {
			name = snakeCase(sf.Name)
		}
		fields = append(fields, Field{Name: name, Value: fieldValue{rv.Field(i)}})
	}
	return DebugStruct(typ.Name(), fields...)
}

// fieldValue defers rendering of a struct field to debugValue so unexported
// types reachable through exported fields still render.
type fieldValue struct {
	rv reflect.Value
}

func (f fieldValue) DebugString() string { return debugValue(f.rv) }

func joinDebug(vals []any) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = Debug(v)
	}
	return strings.Join(parts, ", ")
}

// formatFloat always keeps a fractional part (4.0, not 4) and switches to
// exponent notation for very large or very small magnitudes (1e16, 1e-7).
func formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		s := strconv.FormatFloat(f, 'e', -1, bits)
		mantissa, exp, _ := strings.Cut(s, "e")
		sign := ""
		if strings.HasPrefix(exp, "-") {
			sign = "-"
		}
		exp = strings.TrimLeft(exp, "+-0")
		if exp == "" {
			exp = "0"
		}
		return mantissa + "e" + sign + exp
	}
	s := strconv.FormatFloat(f, 'f', -1, bits)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// snakeCase converts a Go identifier to snake_case: IsCow -> is_cow,
// UserID -> user_id.
func snakeCase(name string) string {
	runes := []rune(name)
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 {
				prev := runes[i-1]
				nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
				if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
					b.WriteByte('_')
				}
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
