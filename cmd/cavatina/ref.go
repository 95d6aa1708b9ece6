package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/signadot/cavatina/token"
)

// ref names a group, a key or some values on the command line, as in
// "db", "db.port" or "db.port=5432 5433".
type ref struct {
	Group  token.Slice
	Key    token.Slice
	Values []token.Slice

	hasKey bool
}

func parseRef(s string) (*ref, error) {
	res := &ref{}
	head, vals, hasVals := strings.Cut(s, "=")
	group, key, hasKey := strings.Cut(head, ".")
	if group == "" || strings.ContainsAny(group, "[] \t") {
		return nil, fmt.Errorf("%w: invalid group in %q", cli.ErrUsage, s)
	}
	res.Group = token.FromString(group)
	if !hasKey {
		if hasVals {
			return nil, fmt.Errorf("%w: values without a key in %q", cli.ErrUsage, s)
		}
		return res, nil
	}
	if key == "" || strings.ContainsAny(key, "= \t") {
		return nil, fmt.Errorf("%w: invalid key in %q", cli.ErrUsage, s)
	}
	res.Key = token.FromString(key)
	res.hasKey = true
	if !hasVals {
		return res, nil
	}
	b := []byte(vals)
	res.Values = slices.Collect(token.Fields(b, 0, len(b)))
	if len(res.Values) == 0 {
		return nil, fmt.Errorf("%w: no values in %q", cli.ErrUsage, s)
	}
	return res, nil
}

func (r *ref) HasKey() bool { return r.hasKey }

func (r *ref) HasValues() bool { return len(r.Values) != 0 }
