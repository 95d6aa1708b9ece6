package libdiff

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/cavatina/encode"
)

func TestPatch(t *testing.T) {
	in := "[web]\nlisten = 80\n\n[db]\nuser = u\nhost = h\nport = 1 2\n"
	tests := []struct {
		name  string
		patch string
		want  string
	}{
		{
			name:  "empty",
			patch: `[]`,
			want:  in,
		},
		{
			name: "keeps order",
			patch: `[
  {"op": "add", "path": "/db/port/2", "value": "3"},
  {"op": "remove", "path": "/db/host"},
  {"op": "add", "path": "/cache", "value": {"ttl": ["60"]}}
]`,
			want: "[web]\nlisten = 80\n\n[db]\nuser = u\nport = 1 2 3\n\n[cache]\nttl = 60",
		},
		{
			name:  "replace values",
			patch: `[{"op": "replace", "path": "/web/listen", "value": ["8080"]}]`,
			want:  "[web]\nlisten = 8080\n\n[db]\nuser = u\nhost = h\nport = 1 2",
		},
		{
			name:  "remove group",
			patch: `[{"op": "remove", "path": "/web"}]`,
			want:  "[db]\nuser = u\nhost = h\nport = 1 2",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := store(t, in)
			before := encode.MustString(s)
			res, err := Patch(s, []byte(tc.patch))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(encode.MustString(store(t, tc.want)), encode.MustString(res)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
			if got := encode.MustString(s); got != before {
				t.Errorf("input changed:\n%s", got)
			}
		})
	}
}

func TestPatchErrors(t *testing.T) {
	s := store(t, "[a]\nk = v\n")
	for _, p := range []string{
		`{`,
		`[{"op": "frob", "path": "/a"}]`,
		`[{"op": "add", "path": "/a/k/0", "value": 1}]`,
	} {
		if _, err := Patch(s, []byte(p)); err == nil {
			t.Errorf("%s: expected error", p)
		}
	}
}

func TestPatchInvalidUTF8(t *testing.T) {
	s := store(t, "[g]\nk = a\xffb\n")
	res, err := Patch(s, []byte(`[]`))
	if !errors.Is(err, encode.ErrUnencodable) {
		t.Fatalf("expected ErrUnencodable, got %v (result %v)", err, res)
	}
	if got := s.Lookup("g", "k").Strings(); len(got) != 1 || got[0] != "a\xffb" {
		t.Errorf("input changed: %q", got)
	}
}
