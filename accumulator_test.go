package jstringify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccumulatorNarrowOutput(t *testing.T) {
	a := newAccumulator()
	a.appendLiteral("hello")
	assert.False(t, a.isWide())
	assert.Equal(t, "hello", a.finalize())
}

func TestAccumulatorPromoteToWide(t *testing.T) {
	a := newAccumulator()
	a.appendLiteral("abc")
	a.promoteToWide()
	assert.True(t, a.isWide())
	a.appendChar('é')
	assert.Equal(t, "abcé", a.finalize())
}

func TestAccumulatorPromoteIdempotent(t *testing.T) {
	a := newAccumulator()
	a.promoteToWide()
	before := a.isWide()
	a.promoteToWide()
	assert.Equal(t, before, a.isWide())
	assert.True(t, a.isWide())
}

func TestAccumulatorGrows(t *testing.T) {
	a := newAccumulator()
	n := initialPartLen*2 + 5
	for i := 0; i < n; i++ {
		a.appendChar('x')
	}
	got := a.finalize()
	require.Len(t, got, n)
	for _, c := range got {
		assert.Equal(t, byte('x'), byte(c))
	}
}

func TestAccumulatorGrowthCap(t *testing.T) {
	a := newAccumulator()
	for a.partLength < maxPartLen {
		a.grow()
	}
	before := a.partLength
	a.grow()
	assert.Equal(t, maxPartLen, a.partLength)
	assert.Equal(t, before, a.partLength)
}

func TestAccumulatorFinalizeMixesEncodings(t *testing.T) {
	a := newAccumulator()
	a.appendLiteral("abc")
	a.promoteToWide()
	a.appendLiteral("def")
	assert.Equal(t, "abcdef", a.finalize())
}

func TestAccumulatorFinalizeIdempotentAcrossSeals(t *testing.T) {
	a := newAccumulator()
	for i := 0; i < initialPartLen+1; i++ {
		a.appendChar('y')
	}
	var concatenated []byte
	for _, seg := range a.sealed {
		concatenated = append(concatenated, seg.narrow...)
	}
	concatenated = append(concatenated, a.narrow[:a.cursor]...)
	assert.Equal(t, a.finalize(), string(concatenated))
}
