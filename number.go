package jstringify

import (
	"math"
	"strconv"
)

// appendInteger appends the canonical base-10 decimal form of n: a
// leading '-' for negative values, no leading zeros except for 0 itself.
func appendInteger(a *accumulator, n int64) {
	a.appendLiteral(strconv.FormatInt(n, 10))
}

// appendFloat appends the shortest round-trip decimal representation of
// f, using the same 'f'/'e' format selection as an ES6 Number-to-string
// conversion. ±Inf and NaN append "null", since JSON has no literal for
// either.
func appendFloat(a *accumulator, f float64) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		a.appendLiteral("null")
		return
	}
	if f == 0 {
		a.appendLiteral("0")
		return
	}

	abs := math.Abs(f)
	format := byte('f')
	if abs < 1e-6 || abs >= 1e21 {
		format = 'e'
	}
	buf := strconv.AppendFloat(make([]byte, 0, 24), f, format, -1, 64)
	if format == 'e' {
		n := len(buf)
		if n >= 4 && buf[n-4] == 'e' && buf[n-3] == '-' && buf[n-2] == '0' {
			buf[n-2] = buf[n-1]
			buf = buf[:n-1]
		}
	}
	a.appendLiteral(string(buf))
}
