// Package query selects keys of a store with boolean expressions.
//
// Expressions use the expr language (github.com/expr-lang/expr) and
// see three variables for each key:
//
//	group  string   the group name
//	key    string   the key name
//	values []string the key's values in order
//
// For example:
//
//	group == "db" && "5432" in values
//	key startsWith "log" || len(values) > 2
package query

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/signadot/cavatina/debug"
	"github.com/signadot/cavatina/kv"
)

var ErrNotBool = errors.New("query result is not a bool")

type Query struct {
	src     string
	program *vm.Program
}

// Match is a key selected by a query.
type Match struct {
	Group *kv.Group
	Key   *kv.Key
}

func env(group, key string, values []string) map[string]any {
	return map[string]any{
		"group":  group,
		"key":    key,
		"values": values,
	}
}

// Compile checks src against the query variables.
func Compile(src string) (*Query, error) {
	program, err := expr.Compile(src, expr.Env(env("", "", nil)), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("error compiling %q: %w", src, err)
	}
	return &Query{src: src, program: program}, nil
}

func (q *Query) String() string { return q.src }

// Match evaluates q against a single key.
func (q *Query) Match(g *kv.Group, k *kv.Key) (bool, error) {
	res, err := vm.Run(q.program, env(g.Name().String(), k.Name().String(), k.Strings()))
	if err != nil {
		return false, fmt.Errorf("error evaluating %q on %s.%s: %w", q.src, g.Name(), k.Name(), err)
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %T", ErrNotBool, res)
	}
	return b, nil
}

// Select returns the keys of s matching q, in store order.
func (q *Query) Select(s *kv.Store) ([]*Match, error) {
	var res []*Match
	for g := range s.Groups() {
		for k := range g.Keys() {
			ok, err := q.Match(g, k)
			if err != nil {
				return nil, err
			}
			if debug.Query() {
				debug.Logf("query: %s.%s: %t\n", g.Name(), k.Name(), ok)
			}
			if ok {
				res = append(res, &Match{Group: g, Key: k})
			}
		}
	}
	return res, nil
}
