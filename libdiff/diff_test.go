package libdiff

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/cavatina/kv"
	"github.com/signadot/cavatina/parse"
)

func store(t *testing.T, in string) *kv.Store {
	t.Helper()
	s := kv.NewStore()
	if err := parse.ParseString(s, in); err != nil {
		t.Fatalf("parse error: %v", err)
	}
	return s
}

func TestDiffEqual(t *testing.T) {
	in := "[a]\nk = 1 2\n[b]\nj = 3\n"
	d := Diff(store(t, in), store(t, in))
	if !d.Empty() {
		t.Errorf("expected empty delta, got %+v", d)
	}
}

func TestDiff(t *testing.T) {
	from := store(t, "[a]\nk = 1 2\nold = x\n[gone]\ng = 1\n[c]\nk = z\n")
	to := store(t, "[new]\nn = 1\n[a]\nk = 2 3\n[c]\nk = z\n")
	got := Diff(from, to)
	want := &Delta{Groups: []GroupDiff{
		{Op: Insert, Name: "new", Keys: []KeyDiff{
			{Op: Insert, Name: "n", Values: []ValueDiff{{Insert, "1"}}},
		}},
		{Op: Equal, Name: "a", Keys: []KeyDiff{
			{Op: Equal, Name: "k", Values: []ValueDiff{{Delete, "1"}, {Insert, "3"}}},
			{Op: Delete, Name: "old", Values: []ValueDiff{{Delete, "x"}}},
		}},
		{Op: Delete, Name: "gone", Keys: []KeyDiff{
			{Op: Delete, Name: "g", Values: []ValueDiff{{Delete, "1"}}},
		}},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffWrite(t *testing.T) {
	d := Diff(store(t, "[db]\nport = 5432 5433\n"), store(t, "[db]\nport = 5432 5434\n"))
	buf := bytes.NewBuffer(nil)
	if err := d.Write(buf, nil); err != nil {
		t.Fatal(err)
	}
	want := "  [db]\n    port\n-     5433\n+     5434\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestMapNamesSkipsSurrogates(t *testing.T) {
	m := map[string]rune{}
	for i := range 0xD800 {
		m[string(rune(i))+"x"] = rune(i)
	}
	rs := mapNames(m, []string{"fresh"})
	if rs[0] != 0xE000 {
		t.Errorf("got %#x, want 0xe000", rs[0])
	}
}
