package token

import "bytes"

// Slice references the bytes [begin, end) of a buffer it does not own.
//
// Constructing a Slice never copies. The buffer is kept alive by the
// Slice, but writes to the buffer after the fact are visible through
// it; use Clone when the buffer is going to be reused.
type Slice struct {
	src        []byte
	begin, end int
}

// At returns the Slice of buf between the offsets begin and end.
// It panics if the offsets are out of range, as slicing buf would.
func At(buf []byte, begin, end int) Slice {
	_ = buf[begin:end]
	return Slice{src: buf, begin: begin, end: end}
}

// FromBytes returns a Slice covering all of b.
func FromBytes(b []byte) Slice {
	return Slice{src: b, end: len(b)}
}

// FromString returns a Slice covering all of s.
func FromString(s string) Slice {
	return FromBytes([]byte(s))
}

// Begin is the offset of the first byte within the underlying buffer.
func (s Slice) Begin() int { return s.begin }

// End is the offset one past the last byte within the underlying buffer.
func (s Slice) End() int { return s.end }

func (s Slice) Len() int { return s.end - s.begin }

func (s Slice) IsEmpty() bool { return s.end == s.begin }

// Bytes returns the referenced bytes. The result aliases the
// underlying buffer and has no spare capacity.
func (s Slice) Bytes() []byte {
	if s.src == nil {
		return nil
	}
	return s.src[s.begin:s.end:s.end]
}

func (s Slice) String() string {
	return string(s.Bytes())
}

// Clone returns a Slice over a private copy of the referenced bytes.
func (s Slice) Clone() Slice {
	return FromBytes(bytes.Clone(s.Bytes()))
}

// Equal reports whether s and o reference the same bytes.
func (s Slice) Equal(o Slice) bool {
	return Equal(s, o)
}

// EqualString reports whether s references exactly the bytes of str.
func (s Slice) EqualString(str string) bool {
	return string(s.Bytes()) == str
}

// Compare orders a and b byte-wise, case sensitively. The result is 0
// if a == b, -1 if a < b and +1 if a > b. Which buffers the slices
// reference is irrelevant.
func Compare(a, b Slice) int {
	return bytes.Compare(a.Bytes(), b.Bytes())
}

// Equal reports whether a and b have the same length and bytes.
func Equal(a, b Slice) bool {
	return bytes.Equal(a.Bytes(), b.Bytes())
}
