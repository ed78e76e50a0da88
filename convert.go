package wexpr

import (
	"fmt"
	"math"
	"reflect"
	"sort"
)

// FromBool converts a boolean to the System`True or System`False symbol.
func FromBool(value bool) Expr {
	if value {
		return NewSymbol(symTrue)
	}

	return NewSymbol(symFalse)
}

// FromValue converts an ordinary Go value into an expression tree:
//
//   - bool            -> System`True / System`False
//   - signed integers -> Integer
//   - unsigned        -> Integer (error if the value overflows int64)
//   - floats          -> Real; NaN becomes System`Indeterminate and ±Inf
//     becomes System`Infinity, since the Real domain excludes them
//   - string          -> String
//   - nil, nil pointers and nil interfaces -> System`None
//   - pointers        -> the pointed-to value
//   - slices, arrays  -> System`List[...]
//   - maps with string keys -> System`Association of key -> value rules,
//     ordered by key so the result is deterministic
//   - structs         -> System`Association of "FieldName" -> value rules
//     over the exported fields, in declaration order
//
// An Expr passed in is returned unchanged. Any other kind of value is
// rejected with an error.
func FromValue(value any) (Expr, error) {
	if expr, ok := value.(Expr); ok {
		return expr, nil
	}
	if value == nil {
		return NewSymbol(symNone), nil
	}

	return fromReflect(reflect.ValueOf(value))
}

func fromReflect(rv reflect.Value) (Expr, error) {
	switch rv.Kind() {
	case reflect.Bool:
		return FromBool(rv.Bool()), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return NewInteger(rv.Int()), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return Expr{}, fmt.Errorf("unsigned value %d overflows the Integer domain", u)
		}

		return NewInteger(int64(u)), nil

	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		switch {
		case math.IsNaN(f):
			return NewSymbol(symIndeterminate), nil
		case math.IsInf(f, 0):
			return NewSymbol(symInfinity), nil
		default:
			return NewReal(f), nil
		}

	case reflect.String:
		return NewString(rv.String()), nil

	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return NewSymbol(symNone), nil
		}

		return fromReflect(rv.Elem())

	case reflect.Slice, reflect.Array:
		elements := make([]Expr, rv.Len())
		for i := range elements {
			el, err := fromReflect(rv.Index(i))
			if err != nil {
				return Expr{}, err
			}
			elements[i] = el
		}

		return List(elements...), nil

	case reflect.Map:
		return fromMap(rv)

	case reflect.Struct:
		return fromStruct(rv)

	default:
		return Expr{}, fmt.Errorf("cannot convert %s value to an expression", rv.Kind())
	}
}

func fromMap(rv reflect.Value) (Expr, error) {
	if rv.Type().Key().Kind() != reflect.String {
		return Expr{}, fmt.Errorf("cannot convert map with %s keys to an expression", rv.Type().Key().Kind())
	}

	keys := make([]string, 0, rv.Len())
	for _, key := range rv.MapKeys() {
		keys = append(keys, key.String())
	}
	// Map iteration order is randomized; the tree must be deterministic.
	sort.Strings(keys)

	rules := make([]Expr, 0, len(keys))
	for _, key := range keys {
		value, err := fromReflect(rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key())))
		if err != nil {
			return Expr{}, err
		}
		rules = append(rules, Rule(NewString(key), value))
	}

	return NewNormal(NewSymbol(symAssociation), rules), nil
}

func fromStruct(rv reflect.Value) (Expr, error) {
	rt := rv.Type()
	rules := make([]Expr, 0, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}

		value, err := fromReflect(rv.Field(i))
		if err != nil {
			return Expr{}, err
		}
		rules = append(rules, Rule(NewString(field.Name), value))
	}

	return NewNormal(NewSymbol(symAssociation), rules), nil
}
