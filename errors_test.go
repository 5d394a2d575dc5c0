package jstringify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCircularErrorMessage(t *testing.T) {
	var e error = &CircularError{}
	assert.Equal(t, "jstringify: converting circular structure to JSON", e.Error())
}

func TestStackOverflowErrorMessage(t *testing.T) {
	var e error = &StackOverflowError{}
	assert.Equal(t, "jstringify: maximum call stack size exceeded", e.Error())
}

func TestHostErrorMessageAndUnwrap(t *testing.T) {
	cause := errors.New("boom")
	e := &HostError{Op: "Get", Err: cause}
	assert.Equal(t, "jstringify: error calling Get: boom", e.Error())
	assert.Same(t, cause, e.Unwrap())
	assert.True(t, errors.Is(e, cause))
}

func TestInvalidOptionErrorMessageAndUnwrap(t *testing.T) {
	cause := errors.New("non-positive max depth")
	e := &InvalidOptionError{Err: cause}
	assert.Equal(t, "jstringify: invalid option: non-positive max depth", e.Error())
	assert.Same(t, cause, e.Unwrap())
	assert.True(t, errors.Is(e, cause))
}
