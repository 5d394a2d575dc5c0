package jstringify

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromGoScalars(t *testing.T) {
	v, err := FromGo(nil)
	require.NoError(t, err)
	assert.Equal(t, KindNull, v.Kind())

	v, err = FromGo(true)
	require.NoError(t, err)
	assert.Equal(t, KindTrue, v.Kind())

	v, err = FromGo("hi")
	require.NoError(t, err)
	assert.Equal(t, "hi", v.(StringValue).Text())

	v, err = FromGo(3.5)
	require.NoError(t, err)
	assert.Equal(t, 3.5, v.(FloatValue).Float())

	v, err = FromGo(7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), v.(IntegerValue).Int())

	v, err = FromGo(int64(9))
	require.NoError(t, err)
	assert.Equal(t, int64(9), v.(IntegerValue).Int())
}

func TestFromGoJSONNumber(t *testing.T) {
	v, err := FromGo(json.Number("42"))
	require.NoError(t, err)
	assert.Equal(t, int64(42), v.(IntegerValue).Int())

	v, err = FromGo(json.Number("3.14"))
	require.NoError(t, err)
	assert.Equal(t, 3.14, v.(FloatValue).Float())

	_, err = FromGo(json.Number("not-a-number"))
	assert.Error(t, err)
}

func TestFromGoMapAndSlice(t *testing.T) {
	v, err := FromGo(map[string]interface{}{"b": 2, "a": 1})
	require.NoError(t, err)
	ov := v.(ObjectValue)
	keys, _ := ov.Keys()
	assert.Equal(t, []interface{}{"a", "b"}, keys)

	v, err = FromGo([]interface{}{1, "two", nil})
	require.NoError(t, err)
	av := v.(ArrayValue)
	assert.Equal(t, 3, av.Len())
	e0, _ := av.Index(0)
	assert.Equal(t, int64(1), e0.(IntegerValue).Int())
}

type taggedStruct struct {
	Name    string `json:"name"`
	Skip    string `json:"-"`
	Empty   string `json:"empty,omitempty"`
	Default int
}

func TestFromGoStructTags(t *testing.T) {
	v, err := FromGo(taggedStruct{Name: "x", Skip: "hidden", Empty: "", Default: 3})
	require.NoError(t, err)
	ov := v.(ObjectValue)
	keys, _ := ov.Keys()
	assert.Equal(t, []interface{}{"name", "Default"}, keys)
}

func TestFromGoStructOmitemptyIncludesNonZero(t *testing.T) {
	v, err := FromGo(taggedStruct{Name: "x", Empty: "not empty"})
	require.NoError(t, err)
	ov := v.(ObjectValue)
	keys, _ := ov.Keys()
	assert.Contains(t, keys, "empty")
}

func TestFromGoTimeAndDuration(t *testing.T) {
	tm := time.Date(2021, 5, 1, 12, 30, 0, 0, time.UTC)
	v, err := FromGo(tm)
	require.NoError(t, err)
	assert.Equal(t, "2021-05-01T12:30:00Z", v.(StringValue).Text())

	v, err = FromGo(90 * time.Second)
	require.NoError(t, err)
	assert.Equal(t, "1m30s", v.(StringValue).Text())
}

func TestFromGoNestedPointerAndInterface(t *testing.T) {
	n := 5
	pp := &n
	v, err := FromGo(&pp)
	require.NoError(t, err)
	assert.Equal(t, int64(5), v.(IntegerValue).Int())

	var nilPtr *int
	v, err = FromGo(nilPtr)
	require.NoError(t, err)
	assert.Equal(t, KindNull, v.Kind())
}

func TestFromGoMapNonStringKeys(t *testing.T) {
	v, err := FromGo(map[int]string{2: "b", 1: "a"})
	require.NoError(t, err)
	ov := v.(ObjectValue)
	keys, _ := ov.Keys()
	assert.Equal(t, []interface{}{"1", "2"}, keys)
}

func TestFromGoArbitraryStruct(t *testing.T) {
	type point struct {
		X, Y int
	}
	v, err := FromGo(point{X: 1, Y: 2})
	require.NoError(t, err)
	ov := v.(ObjectValue)
	got, _ := ov.Get("X")
	assert.Equal(t, int64(1), got.(IntegerValue).Int())
}

func TestFromGoUnsupportedType(t *testing.T) {
	ch := make(chan int)
	_, err := FromGo(ch)
	assert.Error(t, err)
}
