package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/cavatina/kv"
	"github.com/signadot/cavatina/query"
)

func selectKeys(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires an expression", cli.ErrUsage)
	}
	q, err := query.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	s, err := loadStore(cfg.MainConfig, cc, args[1:])
	if err != nil {
		return err
	}
	ms, err := q.Select(s)
	if err != nil {
		return err
	}
	return writeStore(cfg.MainConfig, cc, matchStore(ms))
}

// matchStore collects matched keys into a new store, keeping store
// order.
func matchStore(ms []*query.Match) *kv.Store {
	s := kv.NewStore()
	for _, m := range ms {
		k := s.AddGroup(m.Group.Name()).AddKey(m.Key.Name())
		for v := range m.Key.Values() {
			k.AddValue(v.Name())
		}
	}
	return s
}
