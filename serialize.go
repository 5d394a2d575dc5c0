package jstringify

import (
	"fmt"
	"strconv"
)

// stringLit adapts a plain Go string to a StringValue, so object keys
// and the empty root key can be run through emitString the same way
// any host StringValue is.
type stringLit string

func (s stringLit) Kind() Kind   { return KindString }
func (s stringLit) Text() string { return string(s) }

// serializer holds the per-call state of one Stringify invocation: the
// output accumulator, the cycle guard, and the cancellation context.
// Nothing here is shared across calls, which is what makes a toJSON
// hook that re-enters Stringify safe.
type serializer struct {
	acc   *accumulator
	cycle *cycleGuard
	ctx   stringifyOpts
}

func stringify(root Value, o stringifyOpts) (string, bool, error) {
	s := &serializer{
		acc:   newAccumulator(),
		cycle: newCycleGuard(o.maxDepth),
		ctx:   o,
	}
	emitted, err := s.serialize(root, false, "", false)
	if err != nil {
		return "", false, err
	}
	if !emitted {
		return "", false, nil
	}
	return s.acc.finalize(), true, nil
}

func isComposite(k Kind) bool {
	return k == KindArray || k == KindObject || k == KindWrapper
}

func isSerializableKind(k Kind) bool {
	switch k {
	case KindNull, KindTrue, KindFalse, KindInteger, KindFloat,
		KindString, KindArray, KindObject, KindWrapper:
		return true
	default:
		return false
	}
}

// serialize applies the toJSON hook to composites, then emits the
// (possibly replaced) value, deferring comma/key emission until it is
// certain the value is not UNCHANGED.
func (s *serializer) serialize(v Value, comma bool, key string, deferKey bool) (bool, error) {
	if v == nil {
		return false, nil
	}

	if isComposite(v.Kind()) {
		replaced, err := s.applyToJSON(v, key)
		if err != nil {
			return false, err
		}
		v = replaced
		if v == nil {
			return false, nil
		}
	}

	kind := v.Kind()
	if kind == KindFunction || !isSerializableKind(kind) {
		return false, nil
	}
	if deferKey {
		s.emitDeferredKey(comma, key)
	}

	switch kind {
	case KindArray:
		av, ok := v.(ArrayValue)
		if !ok {
			return false, fmt.Errorf("jstringify: KindArray value does not implement ArrayValue")
		}
		return true, s.serializeArray(av)
	case KindWrapper:
		wv, ok := v.(WrapperValue)
		if !ok {
			return false, fmt.Errorf("jstringify: KindWrapper value does not implement WrapperValue")
		}
		return true, s.serializeWrapper(wv)
	case KindObject:
		ov, ok := v.(ObjectValue)
		if !ok {
			return false, fmt.Errorf("jstringify: KindObject value does not implement ObjectValue")
		}
		return true, s.serializeObject(ov)
	case KindString:
		sv, ok := v.(StringValue)
		if !ok {
			return false, fmt.Errorf("jstringify: KindString value does not implement StringValue")
		}
		emitString(s.acc, sv)
	case KindInteger:
		iv, ok := v.(IntegerValue)
		if !ok {
			return false, fmt.Errorf("jstringify: KindInteger value does not implement IntegerValue")
		}
		appendInteger(s.acc, iv.Int())
	case KindFloat:
		fv, ok := v.(FloatValue)
		if !ok {
			return false, fmt.Errorf("jstringify: KindFloat value does not implement FloatValue")
		}
		appendFloat(s.acc, fv.Float())
	case KindTrue:
		s.acc.appendLiteral("true")
	case KindFalse:
		s.acc.appendLiteral("false")
	case KindNull:
		s.acc.appendLiteral("null")
	}
	return true, nil
}

// applyToJSON invokes v's toJSON hook, if it has one, with the
// pre-stringified key, and its return value replaces v. A composite
// with no toJSON hook passes through unchanged.
func (s *serializer) applyToJSON(v Value, key string) (Value, error) {
	tj, ok := v.(ToJSONer)
	if !ok {
		return v, nil
	}
	replaced, err := tj.ToJSON(key)
	if err != nil {
		return nil, &HostError{Op: "ToJSON", Err: err}
	}
	return replaced, nil
}

// emitDeferredKey writes a comma if a prior member already succeeded,
// then the key as a JSON string (numeric keys included), then a colon.
// Keys are never run through toJSON.
func (s *serializer) emitDeferredKey(comma bool, key string) {
	if comma {
		s.acc.appendChar(',')
	}
	emitString(s.acc, stringLit(key))
	s.acc.appendChar(':')
}

func (s *serializer) checkContext() error {
	return s.ctx.ctx.Err()
}

// serializeArray formats arr's elements in order. A FastIntArray or
// FastFloatArray is formatted directly, bypassing per-element toJSON
// dispatch — a bare machine number has no own properties, so the
// general path's hook lookup can never find anything to call.
func (s *serializer) serializeArray(arr ArrayValue) error {
	if err := s.cycle.push(arr); err != nil {
		return err
	}
	defer s.cycle.pop()
	if err := s.checkContext(); err != nil {
		return err
	}

	s.acc.appendChar('[')
	n := arr.Len()
	if n < 0 {
		n = 0
	}

	switch fast := arr.(type) {
	case FastIntArray:
		for i := 0; i < n; i++ {
			if i > 0 {
				s.acc.appendChar(',')
			}
			appendInteger(s.acc, fast.IntAt(i))
		}
	case FastFloatArray:
		for i := 0; i < n; i++ {
			if i > 0 {
				s.acc.appendChar(',')
			}
			appendFloat(s.acc, fast.FloatAt(i))
		}
	default:
		for i := 0; i < n; i++ {
			if i > 0 {
				s.acc.appendChar(',')
			}
			e, err := arr.Index(i)
			if err != nil {
				return &HostError{Op: "Index", Err: err}
			}
			emitted, err := s.serialize(e, false, strconv.Itoa(i), false)
			if err != nil {
				return err
			}
			if !emitted {
				s.acc.appendLiteral("null")
			}
		}
	}

	s.acc.appendChar(']')
	return nil
}

// serializeObject enumerates obj's members in host-defined key order. A
// global-proxy target is enumerated in place of the proxy itself, and a
// member whose value is UNCHANGED is skipped entirely, including its
// key.
func (s *serializer) serializeObject(obj ObjectValue) error {
	if err := s.cycle.push(obj); err != nil {
		return err
	}
	defer s.cycle.pop()
	if err := s.checkContext(); err != nil {
		return err
	}

	if gp, ok := obj.(GlobalProxy); ok {
		obj = gp.ProxyTarget()
	}

	keys, err := obj.Keys()
	if err != nil {
		return &HostError{Op: "Keys", Err: err}
	}

	s.acc.appendChar('{')
	comma := false
	for _, k := range keys {
		v, err := obj.Get(k)
		if err != nil {
			return &HostError{Op: "Get", Err: err}
		}
		emitted, err := s.serialize(v, comma, keyString(k), true)
		if err != nil {
			return err
		}
		if emitted {
			comma = true
		}
	}
	s.acc.appendChar('}')
	return nil
}

// serializeWrapper unwraps w and formats the boxed primitive.
func (s *serializer) serializeWrapper(w WrapperValue) error {
	prim, err := w.Unwrap()
	if err != nil {
		return &HostError{Op: "Unwrap", Err: err}
	}
	switch w.WrapperClass() {
	case WrapperString:
		sv, ok := prim.(StringValue)
		if !ok {
			return fmt.Errorf("jstringify: String wrapper unwrapped to a non-string value")
		}
		emitString(s.acc, sv)
	case WrapperNumber:
		switch nv := prim.(type) {
		case IntegerValue:
			appendInteger(s.acc, nv.Int())
		case FloatValue:
			appendFloat(s.acc, nv.Float())
		default:
			return fmt.Errorf("jstringify: Number wrapper unwrapped to a non-numeric value")
		}
	case WrapperBoolean:
		switch prim.Kind() {
		case KindTrue:
			s.acc.appendLiteral("true")
		case KindFalse:
			s.acc.appendLiteral("false")
		default:
			return fmt.Errorf("jstringify: Boolean wrapper unwrapped to a non-boolean value")
		}
	default:
		return fmt.Errorf("jstringify: unknown wrapper class %v", w.WrapperClass())
	}
	return nil
}

// keyString converts an object key (a string or a non-negative integer,
// per ObjectValue.Keys) to its JSON member-name form.
func keyString(k interface{}) string {
	switch t := k.(type) {
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		return fmt.Sprint(t)
	}
}
