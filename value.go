package jstringify

// Kind identifies the variant of a Value, mirroring the closed set of
// JSON-relevant ECMA-262 types plus the two host-only variants
// (Function, Wrapper) that the serializer must recognize but never
// emits directly.
type Kind uint8

const (
	KindNull Kind = iota
	KindTrue
	KindFalse
	KindInteger
	KindFloat
	KindString
	KindArray
	KindObject
	KindFunction
	KindWrapper
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindTrue:
		return "true"
	case KindFalse:
		return "false"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindFunction:
		return "function"
	case KindWrapper:
		return "wrapper"
	default:
		return "unknown"
	}
}

// Value is the abstract object-graph node consumed by the serializer.
// A nil Value stands for ECMA-262 "undefined": there is deliberately
// no KindUndefined, since "contributes nothing to the output" is a
// serialization result, not a value variant.
type Value interface {
	Kind() Kind
}

// IntegerValue is implemented by a Value of KindInteger.
type IntegerValue interface {
	Value
	Int() int64
}

// FloatValue is implemented by a Value of KindFloat.
type FloatValue interface {
	Value
	Float() float64
}

// StringValue is implemented by a Value of KindString. Text is called
// fresh by the String Emitter on every checked-path iteration rather
// than cached once, so that a host backed by relocatable or
// externally-mutable storage can re-resolve its view per access; a
// host backed by stable Go strings (as native.go is) still pays for
// that repeated re-derivation whenever the checked path runs.
type StringValue interface {
	Value
	Text() string
}

// ArrayValue is implemented by a Value of KindArray. Index must return
// a nil Value (and a nil error) for a hole, which the serializer
// treats exactly like any other Unchanged result: the element is
// replaced by a JSON null.
type ArrayValue interface {
	Value
	Len() int
	Index(i int) (Value, error)
}

// FastIntArray is an optional capability of an ArrayValue backed by a
// packed run of machine integers, the analogue of V8's
// FAST_SMI_ELEMENTS. When present, the serializer bypasses the
// general per-element dispatch (no toJSON lookup applies to a bare
// integer) and formats elements directly.
type FastIntArray interface {
	ArrayValue
	IntAt(i int) int64
}

// FastFloatArray is the FAST_DOUBLE_ELEMENTS analogue of FastIntArray.
type FastFloatArray interface {
	ArrayValue
	FloatAt(i int) float64
}

// ObjectValue is implemented by a Value of KindObject. Keys returns
// the own enumerable property keys in host-defined (typically
// insertion) order; each key is either a string or an int. Get fetches
// the value for a key returned by Keys; a missing property is reported
// as (nil, nil), not an error. The serializer never looks up a toJSON
// hook through Get; it checks for the ToJSONer interface instead.
type ObjectValue interface {
	Value
	Keys() ([]interface{}, error)
	Get(key interface{}) (Value, error)
}

// GlobalProxy is an optional capability of an ObjectValue that forwards
// transparently to another object, the analogue of V8's JSGlobalProxy.
// When present, the serializer enumerates ProxyTarget() instead of the
// proxy itself.
type GlobalProxy interface {
	ObjectValue
	ProxyTarget() ObjectValue
}

// WrapperClass identifies which primitive a WrapperValue boxes.
type WrapperClass uint8

const (
	WrapperString WrapperClass = iota
	WrapperNumber
	WrapperBoolean
)

func (c WrapperClass) String() string {
	switch c {
	case WrapperString:
		return "String"
	case WrapperNumber:
		return "Number"
	case WrapperBoolean:
		return "Boolean"
	default:
		return "unknown"
	}
}

// WrapperValue is implemented by a Value of KindWrapper: a boxed
// primitive whose internal class is one of String, Number or Boolean.
// Unwrap converts it to its primitive Value (StringValue, IntegerValue
// or FloatValue, or a KindTrue/KindFalse Value, respectively).
type WrapperValue interface {
	Value
	WrapperClass() WrapperClass
	Unwrap() (Value, error)
}

// ToJSONer is the optional hook a composite Value may implement to
// override its own serialization, the Go realization of a "toJSON"
// own-or-inherited callable property. key is always pre-stringified by
// the serializer: an array index becomes its decimal string, an object
// key is passed through, and the root call passes the empty string.
// The hook may return any Value, including another composite one; the
// serializer continues with whatever is returned.
type ToJSONer interface {
	ToJSON(key string) (Value, error)
}
