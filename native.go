package jstringify

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"time"
)

var (
	timeTimeType     = reflect.TypeOf(time.Time{})
	timeDurationType = reflect.TypeOf(time.Duration(0))
)

// timeText returns the quoted RFC3339 text appendRFC3339Time produces
// for t, with the surrounding quotes stripped, for use as a string
// Value's Text().
func timeText(t time.Time) string {
	buf := appendRFC3339Time(t, make([]byte, 0, 37), true)
	return string(buf[1 : len(buf)-1])
}

// durationText returns the Go-syntax text appendDuration produces for d.
func durationText(d time.Duration) string {
	return string(appendDuration(nil, d))
}

// This file is a reference host: a Value implementation backed by
// plain Go data, plus FromGo, which adapts arbitrary Go values
// (including the output of encoding/json's Decode into interface{})
// into that model. Nothing in the core package depends on it; it
// exists so Stringify has something to call without every caller
// writing their own Value implementation first.

type nullValue struct{}

func (nullValue) Kind() Kind { return KindNull }

// Null is the JSON null value.
var Null Value = nullValue{}

type boolValue bool

func (b boolValue) Kind() Kind {
	if b {
		return KindTrue
	}
	return KindFalse
}

// True and False are the two JSON boolean values.
var (
	True  Value = boolValue(true)
	False Value = boolValue(false)
)

// Bool returns True or False.
func Bool(b bool) Value {
	if b {
		return True
	}
	return False
}

type integerValue int64

func (i integerValue) Kind() Kind { return KindInteger }
func (i integerValue) Int() int64 { return int64(i) }

// Int returns an integer Value.
func Int(n int64) Value { return integerValue(n) }

type floatValue float64

func (f floatValue) Kind() Kind      { return KindFloat }
func (f floatValue) Float() float64 { return float64(f) }

// Float returns a float Value.
func Float(f float64) Value { return floatValue(f) }

type stringValue string

func (s stringValue) Kind() Kind   { return KindString }
func (s stringValue) Text() string { return string(s) }

// Str returns a string Value.
func Str(s string) Value { return stringValue(s) }

type funcValue struct{}

func (funcValue) Kind() Kind { return KindFunction }

// Func is a placeholder for any host callable; Stringify always treats
// it as UNCHANGED, the same as a nil Value.
var Func Value = funcValue{}

// Array is an ordered, fixed-length list of Values. Its identity (for
// cycle detection) is the pointer to the Array itself, so two distinct
// *Array values with identical elements are never mistaken for a cycle.
type Array struct {
	elems []Value
}

// NewArray returns an Array holding elems in order.
func NewArray(elems ...Value) *Array { return &Array{elems: elems} }

func (a *Array) Kind() Kind { return KindArray }
func (a *Array) Len() int   { return len(a.elems) }

// Index returns the element at i, or (nil, nil) if i is out of range —
// the "hole" signal serializeArray treats as UNCHANGED, emitting null
// in its place.
func (a *Array) Index(i int) (Value, error) {
	if i < 0 || i >= len(a.elems) {
		return nil, nil
	}
	return a.elems[i], nil
}

// Member is one key/value pair of an Object, in the order it was added.
type Member struct {
	Key   interface{} // string or int
	Value Value
}

// Object is an ordered list of Members, preserving insertion order the
// way a JSON object's own enumerable properties are host-ordered.
type Object struct {
	members []Member
}

// NewObject returns an Object holding members in order.
func NewObject(members ...Member) *Object { return &Object{members: members} }

func (o *Object) Kind() Kind { return KindObject }

func (o *Object) Keys() ([]interface{}, error) {
	keys := make([]interface{}, len(o.members))
	for i, m := range o.members {
		keys[i] = m.Key
	}
	return keys, nil
}

func (o *Object) Get(key interface{}) (Value, error) {
	for _, m := range o.members {
		if m.Key == key {
			return m.Value, nil
		}
	}
	return nil, nil
}

// Wrapper is a boxed primitive: the Go realization of a String, Number
// or Boolean wrapper object.
type Wrapper struct {
	class WrapperClass
	prim  Value
}

// NewWrapper returns a Wrapper of the given class, boxing prim.
func NewWrapper(class WrapperClass, prim Value) *Wrapper {
	return &Wrapper{class: class, prim: prim}
}

func (w *Wrapper) Kind() Kind                 { return KindWrapper }
func (w *Wrapper) WrapperClass() WrapperClass { return w.class }
func (w *Wrapper) Unwrap() (Value, error)     { return w.prim, nil }

// FromGo converts a plain Go value into this package's Value model. It
// recognizes the concrete types encoding/json produces when decoding
// into interface{} (nil, bool, float64, string, []interface{},
// map[string]interface{}, json.Number) directly, and falls back to
// reflection for any other map, slice, array or struct type, so a
// caller's own domain types need no adapter of their own.
//
// Object member order for a map is the sorted order of its keys
// (stringified for comparison), since a Go map has none of its own.
func FromGo(v interface{}) (Value, error) {
	switch t := v.(type) {
	case nil:
		return Null, nil
	case bool:
		return Bool(t), nil
	case string:
		return Str(t), nil
	case float64:
		return Float(t), nil
	case int:
		return Int(int64(t)), nil
	case int64:
		return Int(t), nil
	case json.Number:
		return numberFromJSONNumber(t)
	case map[string]interface{}:
		return objectFromMap(t)
	case []interface{}:
		return arrayFromSlice(t)
	default:
		return fromReflect(reflect.ValueOf(v))
	}
}

func numberFromJSONNumber(n json.Number) (Value, error) {
	if i, err := n.Int64(); err == nil {
		return Int(i), nil
	}
	f, err := n.Float64()
	if err != nil {
		return nil, fmt.Errorf("jstringify: invalid number literal %q: %w", n, err)
	}
	return Float(f), nil
}

func objectFromMap(m map[string]interface{}) (Value, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	members := make([]Member, 0, len(keys))
	for _, k := range keys {
		mv, err := FromGo(m[k])
		if err != nil {
			return nil, err
		}
		members = append(members, Member{Key: k, Value: mv})
	}
	return NewObject(members...), nil
}

func arrayFromSlice(s []interface{}) (Value, error) {
	elems := make([]Value, len(s))
	for i, e := range s {
		ev, err := FromGo(e)
		if err != nil {
			return nil, err
		}
		elems[i] = ev
	}
	return NewArray(elems...), nil
}

// fromReflect is the fallback path for Go values that aren't one of
// the concrete types FromGo matches directly: a caller's own struct,
// map, slice or array types, or a named type with one of the basic
// kinds as its underlying type.
func fromReflect(rv reflect.Value) (Value, error) {
	if !rv.IsValid() {
		return Null, nil
	}
	if rv.Type() == timeTimeType {
		return Str(timeText(rv.Interface().(time.Time))), nil
	}
	if rv.Type() == timeDurationType {
		return Str(durationText(rv.Interface().(time.Duration))), nil
	}

	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return Null, nil
		}
		return fromReflect(rv.Elem())
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.String:
		return Str(rv.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Int(int64(rv.Uint())), nil
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float()), nil
	case reflect.Slice, reflect.Array:
		n := rv.Len()
		elems := make([]Value, n)
		for i := 0; i < n; i++ {
			ev, err := fromReflect(rv.Index(i))
			if err != nil {
				return nil, err
			}
			elems[i] = ev
		}
		return NewArray(elems...), nil
	case reflect.Map:
		keys := rv.MapKeys()
		sort.Slice(keys, func(i, j int) bool {
			return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
		})
		members := make([]Member, 0, len(keys))
		for _, k := range keys {
			mv, err := fromReflect(rv.MapIndex(k))
			if err != nil {
				return nil, err
			}
			members = append(members, Member{Key: fmt.Sprint(k.Interface()), Value: mv})
		}
		return NewObject(members...), nil
	case reflect.Struct:
		return structToObject(rv)
	default:
		return nil, fmt.Errorf("jstringify: unsupported Go type %s", rv.Type())
	}
}

func structToObject(rv reflect.Value) (Value, error) {
	t := rv.Type()
	members := make([]Member, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue
		}
		fval := rv.Field(i)

		name := f.Name
		var opts tagOptions
		if tag, ok := f.Tag.Lookup("json"); ok {
			if tag == "-" {
				continue
			}
			name, opts = parseTag(tag)
			if name == "" {
				name = f.Name
			}
		}
		if opts.Contains("omitempty") && fval.IsZero() {
			continue
		}

		fv, err := fromReflect(fval)
		if err != nil {
			return nil, err
		}
		members = append(members, Member{Key: name, Value: fv})
	}
	return NewObject(members...), nil
}
