package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/cavatina/encode"
	"github.com/signadot/cavatina/kv"
	"github.com/signadot/cavatina/parse"
	"github.com/signadot/cavatina/query"
)

const editInput = `[db]
host = localhost
port = 5432 5433

[web]
listen = 80
`

func editStore(t *testing.T) *kv.Store {
	t.Helper()
	s := kv.NewStore()
	if err := parse.ParseString(s, editInput); err != nil {
		t.Fatal(err)
	}
	return s
}

func TestAddRef(t *testing.T) {
	tests := []struct {
		ref  string
		want string
	}{
		{"db.port=5432 5434", "[db]\nhost = localhost\nport = 5432 5433 5434\n\n[web]\nlisten = 80\n"},
		{"cache.ttl=60", editInput + "\n[cache]\nttl = 60\n"},
		{"web", editInput},
	}
	for _, tc := range tests {
		t.Run(tc.ref, func(t *testing.T) {
			s := editStore(t)
			r, err := parseRef(tc.ref)
			if err != nil {
				t.Fatal(err)
			}
			addRef(s, r)
			if diff := cmp.Diff(tc.want, encodeText(t, s)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestRemoveRef(t *testing.T) {
	tests := []struct {
		ref     string
		want    string
		wantErr error
	}{
		{ref: "db", want: "[web]\nlisten = 80\n"},
		{ref: "db.port", want: "[db]\nhost = localhost\n\n[web]\nlisten = 80\n"},
		{ref: "db.port=5433", want: "[db]\nhost = localhost\nport = 5432\n\n[web]\nlisten = 80\n"},
		{ref: "cache", want: editInput, wantErr: kv.ErrNotFound},
		{ref: "db.user", want: editInput, wantErr: kv.ErrNotFound},
		{ref: "cache.ttl=1", want: editInput, wantErr: kv.ErrNotFound},
		{ref: "db.port=9999", want: editInput, wantErr: kv.ErrNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.ref, func(t *testing.T) {
			s := editStore(t)
			r, err := parseRef(tc.ref)
			if err != nil {
				t.Fatal(err)
			}
			err = removeRef(s, r)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("got error %v, want %v", err, tc.wantErr)
			}
			if diff := cmp.Diff(tc.want, encodeText(t, s)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestGroupStore(t *testing.T) {
	s := editStore(t)
	got := encodeText(t, groupStore(s.Group(parseRefT(t, "db").Group)))
	want := "[db]\nhost = localhost\nport = 5432 5433\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestMatchStore(t *testing.T) {
	s := editStore(t)
	q, err := query.Compile(`len(values) == 1`)
	if err != nil {
		t.Fatal(err)
	}
	ms, err := q.Select(s)
	if err != nil {
		t.Fatal(err)
	}
	want := "[db]\nhost = localhost\n\n[web]\nlisten = 80\n"
	if diff := cmp.Diff(want, encodeText(t, matchStore(ms))); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func encodeText(t *testing.T, s *kv.Store) string {
	t.Helper()
	var buf strings.Builder
	if err := encode.Encode(s, &buf); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func parseRefT(t *testing.T, s string) *ref {
	t.Helper()
	r, err := parseRef(s)
	if err != nil {
		t.Fatal(err)
	}
	return r
}
