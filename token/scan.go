package token

import "iter"

// Line is one line of a PosDoc with surrounding whitespace trimmed.
// Begin and End are offsets of the trimmed content in the document;
// Begin == End for a blank line.
type Line struct {
	Num        int
	Begin, End int

	doc *PosDoc
}

// Content returns the trimmed text of the line.
func (l Line) Content() Slice {
	return At(l.doc.d, l.Begin, l.End)
}

// Pos returns the position of the first non-whitespace byte.
func (l Line) Pos() *Pos {
	return l.doc.Pos(l.Begin)
}

// Blank reports whether the line holds only whitespace.
func (l Line) Blank() bool { return l.Begin == l.End }

// Lines yields the lines of the document in order, each trimmed of
// leading and trailing whitespace.
func (p *PosDoc) Lines() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		start := 0
		for i := 0; i < p.NumLines(); i++ {
			end := len(p.d)
			if i < len(p.n) {
				end = p.n[i]
			}
			b, e := Trim(p.d, start, end)
			if !yield(Line{Num: i, Begin: b, End: e, doc: p}) {
				return
			}
			start = end + 1
		}
	}
}

// IsSpace reports whether c separates tokens. Newlines are not
// included since they separate lines.
func IsSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\v', '\f':
		return true
	}
	return false
}

// Trim narrows [begin, end) of buf so that it neither starts nor ends
// with whitespace.
func Trim(buf []byte, begin, end int) (int, int) {
	for begin < end && IsSpace(buf[begin]) {
		begin++
	}
	for end > begin && IsSpace(buf[end-1]) {
		end--
	}
	return begin, end
}

// Fields yields the whitespace-separated tokens of buf[begin:end] as
// Slices of buf.
func Fields(buf []byte, begin, end int) iter.Seq[Slice] {
	return func(yield func(Slice) bool) {
		i := begin
		for i < end {
			for i < end && IsSpace(buf[i]) {
				i++
			}
			if i == end {
				return
			}
			j := i
			for j < end && !IsSpace(buf[j]) {
				j++
			}
			if !yield(At(buf, i, j)) {
				return
			}
			i = j
		}
	}
}

// IndexByte returns the offset of the first c in buf[begin:end], or -1.
func IndexByte(buf []byte, begin, end int, c byte) int {
	for i := begin; i < end; i++ {
		if buf[i] == c {
			return i
		}
	}
	return -1
}

// HasSpace reports whether buf[begin:end] contains whitespace.
func HasSpace(buf []byte, begin, end int) bool {
	for i := begin; i < end; i++ {
		if IsSpace(buf[i]) {
			return true
		}
	}
	return false
}
