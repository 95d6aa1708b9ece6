package token

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSliceContentEquality(t *testing.T) {
	a := []byte("xx host yy")
	b := []byte("host")
	sa := At(a, 3, 7)
	sb := FromBytes(b)
	if !Equal(sa, sb) {
		t.Errorf("expected %q == %q across buffers", sa, sb)
	}
	if Compare(sa, sb) != 0 {
		t.Errorf("Compare(%q, %q) = %d", sa, sb, Compare(sa, sb))
	}
	if Equal(At(a, 0, 2), At(a, 8, 10)) {
		t.Errorf("expected xx != yy in the same buffer")
	}
	if !sa.EqualString("host") || sa.EqualString("hos") {
		t.Errorf("EqualString mismatch for %q", sa)
	}
}

func TestCompareOrdering(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"a", "a", 0},
		{"a", "b", -1},
		{"b", "a", 1},
		{"ab", "a", 1},
		{"", "a", -1},
		{"A", "a", -1},
		{"", "", 0},
	}
	for _, tt := range tests {
		got := Compare(FromString(tt.a), FromString(tt.b))
		if got != tt.want {
			t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSliceOffsets(t *testing.T) {
	buf := []byte("[db]")
	s := At(buf, 1, 3)
	if s.Begin() != 1 || s.End() != 3 || s.Len() != 2 {
		t.Errorf("got begin=%d end=%d len=%d", s.Begin(), s.End(), s.Len())
	}
	if cap(s.Bytes()) != 2 {
		t.Errorf("Bytes leaks capacity: %d", cap(s.Bytes()))
	}
	var zero Slice
	if !zero.IsEmpty() || zero.String() != "" {
		t.Errorf("zero slice not empty")
	}
}

func TestSliceClone(t *testing.T) {
	buf := []byte("value")
	s := FromBytes(buf)
	c := s.Clone()
	buf[0] = 'V'
	if s.String() != "Value" {
		t.Errorf("slice should alias its buffer, got %q", s)
	}
	if c.String() != "value" {
		t.Errorf("clone should not alias its buffer, got %q", c)
	}
}

func TestLines(t *testing.T) {
	doc := NewPosDoc([]byte("  [db]  \n\n\thost = x\r\nlast"))
	var got []string
	var nums []int
	for ln := range doc.Lines() {
		got = append(got, ln.Content().String())
		nums = append(nums, ln.Num)
	}
	want := []string{"[db]", "", "host = x", "last"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Lines mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 1, 2, 3}, nums); diff != "" {
		t.Errorf("line numbers mismatch (-want +got):\n%s", diff)
	}
}

func TestLinesTrailingNewline(t *testing.T) {
	doc := NewPosDoc([]byte("a\n"))
	n := 0
	for ln := range doc.Lines() {
		if n == 1 && !ln.Blank() {
			t.Errorf("expected blank final line, got %q", ln.Content())
		}
		n++
	}
	if n != 2 {
		t.Errorf("expected 2 lines, got %d", n)
	}
}

func TestFields(t *testing.T) {
	buf := []byte("k =  a\tb   c ")
	var got []string
	for f := range Fields(buf, 3, len(buf)) {
		got = append(got, f.String())
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, got); diff != "" {
		t.Errorf("Fields mismatch (-want +got):\n%s", diff)
	}
	for f := range Fields(buf, 4, 5) {
		t.Errorf("expected no fields, got %q", f)
	}
}

func TestPosLineCol(t *testing.T) {
	doc := NewPosDoc([]byte("ab\ncd\n\nef"))
	tests := []struct {
		off, line, col int
	}{
		{0, 0, 0},
		{1, 0, 1},
		{2, 0, 2},
		{3, 1, 0},
		{6, 2, 0},
		{7, 3, 0},
		{8, 3, 1},
	}
	for _, tt := range tests {
		l, c := doc.Pos(tt.off).LineCol()
		if l != tt.line || c != tt.col {
			t.Errorf("offset %d: got (%d, %d), want (%d, %d)", tt.off, l, c, tt.line, tt.col)
		}
	}
}
