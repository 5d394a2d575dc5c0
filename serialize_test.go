package jstringify

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStringifyObjectArrayMix exercises the literal scenario:
// {"a":1,"b":[true,null,"x"]}
func TestStringifyObjectArrayMix(t *testing.T) {
	v := NewObject(
		Member{Key: "a", Value: Int(1)},
		Member{Key: "b", Value: NewArray(True, Null, Str("x"))},
	)
	s, ok, err := Stringify(v)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"a":1,"b":[true,null,"x"]}`, s)
}

// a hole (Index returning a nil Value) in an array becomes null, the
// same as an undefined element.
func TestStringifyArrayHoleBecomesNull(t *testing.T) {
	v := &holeArray{elems: []Value{Int(1), Str("2"), nil}}
	s, ok, err := Stringify(v)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[1,"2",null]`, s)
}

type holeArray struct{ elems []Value }

func (a *holeArray) Kind() Kind { return KindArray }
func (a *holeArray) Len() int   { return len(a.elems) }
func (a *holeArray) Index(i int) (Value, error) {
	return a.elems[i], nil
}

// a toJSON hook on a composite may return a primitive, which the
// serializer then emits directly.
type toJSONConst struct {
	out Value
}

func (c *toJSONConst) Kind() Kind                     { return KindObject }
func (c *toJSONConst) Keys() ([]interface{}, error)   { return nil, nil }
func (c *toJSONConst) Get(interface{}) (Value, error) { return nil, nil }
func (c *toJSONConst) ToJSON(string) (Value, error)    { return c.out, nil }

func TestStringifyToJSONPrecedence(t *testing.T) {
	v := &toJSONConst{out: Int(42)}
	s, ok, err := Stringify(v)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "42", s)
}

// NaN, +Inf and -0 all flow through appendFloat's non-finite/negative-zero
// handling.
func TestStringifyFloatArrayEdgeCases(t *testing.T) {
	v := NewArray(Float(math.NaN()), Float(math.Inf(1)), Float(math.Copysign(0, -1)))
	s, ok, err := Stringify(v)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[null,null,0]`, s)
}

// an undefined member (nil Value) is omitted entirely, including its
// key; a function-valued member is omitted the same way.
func TestStringifyObjectOmitsUndefinedAndFunctionMembers(t *testing.T) {
	v := NewObject(
		Member{Key: "a", Value: nil},
		Member{Key: "b", Value: Int(1)},
		Member{Key: "c", Value: Func},
	)
	s, ok, err := Stringify(v)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"b":1}`, s)
}

func TestStringifyRootUndefinedIsNotOK(t *testing.T) {
	s, ok, err := Stringify(nil)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "", s)
}

func TestStringifyRootFunctionIsNotOK(t *testing.T) {
	s, ok, err := Stringify(Func)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "", s)
}

// toJSON erroring surfaces as a HostError wrapping the underlying error.
type toJSONErr struct{}

func (toJSONErr) Kind() Kind                     { return KindObject }
func (toJSONErr) Keys() ([]interface{}, error)   { return nil, nil }
func (toJSONErr) Get(interface{}) (Value, error) { return nil, nil }
func (toJSONErr) ToJSON(string) (Value, error) {
	return nil, errors.New("boom")
}

func TestStringifyToJSONErrorWrapped(t *testing.T) {
	_, _, err := Stringify(toJSONErr{})
	require.Error(t, err)
	var herr *HostError
	assert.True(t, errors.As(err, &herr))
	assert.Equal(t, "ToJSON", herr.Op)
}

// FastIntArray/FastFloatArray bypass per-element toJSON dispatch.
type fastInts struct{ vals []int64 }

func (a *fastInts) Kind() Kind                     { return KindArray }
func (a *fastInts) Len() int                       { return len(a.vals) }
func (a *fastInts) Index(i int) (Value, error)     { return Int(a.vals[i]), nil }
func (a *fastInts) IntAt(i int) int64              { return a.vals[i] }

func TestStringifyFastIntArray(t *testing.T) {
	v := &fastInts{vals: []int64{1, 2, 3}}
	s, ok, err := Stringify(v)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[1,2,3]", s)
}

type fastFloats struct{ vals []float64 }

func (a *fastFloats) Kind() Kind                 { return KindArray }
func (a *fastFloats) Len() int                   { return len(a.vals) }
func (a *fastFloats) Index(i int) (Value, error) { return Float(a.vals[i]), nil }
func (a *fastFloats) FloatAt(i int) float64      { return a.vals[i] }

func TestStringifyFastFloatArray(t *testing.T) {
	v := &fastFloats{vals: []float64{1.5, 2.5}}
	s, ok, err := Stringify(v)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[1.5,2.5]", s)
}

// a GlobalProxy is enumerated in place of the proxy itself.
type proxyObj struct {
	target *Object
}

func (p *proxyObj) Kind() Kind                     { return KindObject }
func (p *proxyObj) Keys() ([]interface{}, error)   { return nil, nil }
func (p *proxyObj) Get(interface{}) (Value, error) { return nil, nil }
func (p *proxyObj) ProxyTarget() ObjectValue       { return p.target }

func TestStringifyGlobalProxyEnumeratesTarget(t *testing.T) {
	target := NewObject(Member{Key: "x", Value: Int(1)})
	v := &proxyObj{target: target}
	s, ok, err := Stringify(v)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"x":1}`, s)
}

func TestStringifyWrapperValues(t *testing.T) {
	s, ok, err := Stringify(NewWrapper(WrapperString, Str("hi")))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `"hi"`, s)

	s, ok, err = Stringify(NewWrapper(WrapperNumber, Int(7)))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "7", s)

	s, ok, err = Stringify(NewWrapper(WrapperBoolean, True))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "true", s)
}

func TestKeyStringVariants(t *testing.T) {
	assert.Equal(t, "foo", keyString("foo"))
	assert.Equal(t, "3", keyString(3))
	assert.Equal(t, "9", keyString(int64(9)))
}

// x = {}; x.self = x
func TestStringifySelfReferencingObjectIsCircular(t *testing.T) {
	x := NewObject()
	x.members = append(x.members, Member{Key: "self", Value: x})
	_, _, err := Stringify(x)
	require.Error(t, err)
	var cerr *CircularError
	assert.True(t, errors.As(err, &cerr))
}
