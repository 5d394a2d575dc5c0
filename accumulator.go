package jstringify

import (
	"unicode/utf16"
	"unicode/utf8"
)

// Tunable constants for the segmented output accumulator.
const (
	initialPartLen = 32
	maxPartLen     = 16384
	growthFactor   = 2
)

type encoding uint8

const (
	encodingNarrow encoding = iota
	encodingWide
)

// segment is one sealed slab of the accumulator's rope. A segment never
// changes encoding after it is sealed; the accumulator as a whole can
// still contain a leading run of narrow segments followed by a trailing
// run of wide ones, since promotion never demotes.
type segment struct {
	enc    encoding
	narrow []byte
	wide   []uint16
}

// accumulator is an append-only, two-encoding string builder: an
// ordered list of sealed segments plus one mutable active segment.
// Narrow segments hold ASCII bytes one-for-one; wide segments hold
// UTF-16 code units, so that a promoted accumulator can still represent
// runes outside the Basic Multilingual Plane as surrogate pairs the
// same way an ECMA-262 string would. A zero-value accumulator is not
// usable; construct one with newAccumulator.
type accumulator struct {
	sealed []segment

	enc        encoding
	narrow     []byte
	wide       []uint16
	cursor     int
	partLength int
}

func newAccumulator() *accumulator {
	a := &accumulator{
		enc:        encodingNarrow,
		partLength: initialPartLen,
	}
	a.narrow = make([]byte, a.partLength)
	return a
}

// appendChar records one code unit in the active segment, sealing and
// growing it first if it is full. c must already be ASCII when the
// accumulator is narrow; the caller is responsible for calling
// promoteToWide beforehand otherwise, since the accumulator itself
// never transcodes on append.
func (a *accumulator) appendChar(c uint16) {
	if a.cursor == a.partLength {
		a.grow()
	}
	if a.enc == encodingNarrow {
		a.narrow[a.cursor] = byte(c)
	} else {
		a.wide[a.cursor] = c
	}
	a.cursor++
}

// appendLiteral appends an ASCII literal one code unit at a time.
func (a *accumulator) appendLiteral(s string) {
	for i := 0; i < len(s); i++ {
		a.appendChar(uint16(s[i]))
	}
}

// promoteToWide seals the active narrow segment and starts a new wide
// active segment of the same capacity. It is a no-op once the
// accumulator is already wide.
func (a *accumulator) promoteToWide() {
	if a.enc == encodingWide {
		return
	}
	a.seal()
	a.enc = encodingWide
	a.allocActive()
}

// grow seals the active segment, doubles partLength up to maxPartLen,
// and allocates a fresh active segment in the current encoding.
func (a *accumulator) grow() {
	a.seal()
	a.partLength *= growthFactor
	if a.partLength > maxPartLen {
		a.partLength = maxPartLen
	}
	a.allocActive()
}

func (a *accumulator) allocActive() {
	if a.enc == encodingNarrow {
		a.narrow = make([]byte, a.partLength)
	} else {
		a.wide = make([]uint16, a.partLength)
	}
	a.cursor = 0
}

// seal shrinks the active segment to its logical length and appends it
// to the sealed list. It does not allocate a replacement active
// segment; callers that need one call allocActive (or grow/promoteToWide,
// which call it for them).
func (a *accumulator) seal() {
	if a.enc == encodingNarrow {
		a.sealed = append(a.sealed, segment{enc: encodingNarrow, narrow: a.narrow[:a.cursor:a.cursor]})
	} else {
		a.sealed = append(a.sealed, segment{enc: encodingWide, wide: a.wide[:a.cursor:a.cursor]})
	}
}

// finalize seals the active segment and returns the concatenation of
// every sealed segment, transcoding any wide segment back to UTF-8.
// Narrow segments are pure ASCII and are already valid UTF-8, so they
// are appended verbatim.
func (a *accumulator) finalize() string {
	a.seal()
	var out []byte
	for _, seg := range a.sealed {
		switch seg.enc {
		case encodingNarrow:
			out = append(out, seg.narrow...)
		case encodingWide:
			for _, r := range utf16.Decode(seg.wide) {
				out = utf8.AppendRune(out, r)
			}
		}
	}
	return string(out)
}

// putUnchecked writes c to the active segment at the current cursor and
// advances it, without checking for room. Callers must have already
// established, via a single bound check covering the whole write, that
// the active segment will not fill up before the write completes.
func (a *accumulator) putUnchecked(c uint16) {
	if a.enc == encodingNarrow {
		a.narrow[a.cursor] = byte(c)
	} else {
		a.wide[a.cursor] = c
	}
	a.cursor++
}

// len reports the number of code units written to the active segment so
// far, i.e. its cursor; remaining reports the headroom.
func (a *accumulator) len() int { return a.cursor }

// remaining reports how many more code units fit in the active segment
// before it must be sealed and regrown.
func (a *accumulator) remaining() int { return a.partLength - a.cursor }

// isWide reports whether the accumulator has been promoted.
func (a *accumulator) isWide() bool { return a.enc == encodingWide }
