package jstringify

import "unicode/utf16"

// emitString writes sv as a complete, quoted JSON string literal into
// a, escaping unsafe code units via the Escape Table and promoting a
// to wide encoding first if sv contains any non-ASCII code unit.
//
// The source string is classified narrow or wide by its own content
// (every code unit below 0x80, or not), independently of a's current
// encoding: a narrow source is always safe to copy byte-for-byte once
// escaped; a wide source passes every non-ASCII code unit through
// verbatim with no \uXXXX form.
func emitString(a *accumulator, sv StringValue) {
	units := utf16.Encode([]rune(sv.Text()))
	wide := sourceIsWide(units)
	if wide {
		a.promoteToWide()
	}

	bound := len(units)*escapeSlotBytes + 2
	if a.cursor+bound < a.partLength {
		emitStringUnchecked(a, units, wide)
		return
	}
	emitStringChecked(a, sv, len(units), wide)
}

func sourceIsWide(units []uint16) bool {
	for _, c := range units {
		if c >= 0x80 {
			return true
		}
	}
	return false
}

// isSafe reports whether code unit c needs no escaping. A wide-source
// code unit at or above 0x80 is always safe (passed through verbatim);
// otherwise the narrow ASCII predicate applies.
func isSafe(c uint16, wide bool) bool {
	if wide && c >= 0x80 {
		return true
	}
	return isSafeASCII(byte(c))
}

// emitStringUnchecked writes the quotes and every code unit of units
// directly into the active segment. The caller has already verified,
// with one bound check covering the worst-case escaped length, that no
// seal/grow can occur mid-write.
func emitStringUnchecked(a *accumulator, units []uint16, wide bool) {
	a.putUnchecked('"')
	for _, c := range units {
		if isSafe(c, wide) {
			a.putUnchecked(c)
			continue
		}
		text := escapeText(byte(c))
		for i := 0; i < len(text); i++ {
			a.putUnchecked(uint16(text[i]))
		}
	}
	a.putUnchecked('"')
}

// emitStringChecked writes the quotes and every code unit of sv through
// appendChar, which seals and grows the accumulator as needed. It
// re-derives the code-unit view from sv.Text() on every iteration
// rather than reusing a single flattened slice, tolerating a host that
// relocates the source string between accumulator operations; a stable
// host such as native.go's Go strings pays the repeated re-derivation
// for no benefit, which is why emitString takes the unchecked path
// whenever it safely can.
func emitStringChecked(a *accumulator, sv StringValue, n int, wide bool) {
	a.appendChar('"')
	for i := 0; i < n; i++ {
		units := utf16.Encode([]rune(sv.Text()))
		var c uint16
		if i < len(units) {
			c = units[i]
		}
		if isSafe(c, wide) {
			a.appendChar(c)
			continue
		}
		text := escapeText(byte(c))
		for j := 0; j < len(text); j++ {
			a.appendChar(uint16(text[j]))
		}
	}
	a.appendChar('"')
}
