package main

import (
	"errors"
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/cavatina/kv"
)

func add(cfg *AddConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Add.Parse(cc, args)
	if err != nil {
		cfg.Add.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: add requires a <group>[.<key>[=<values>]] argument", cli.ErrUsage)
	}
	r, err := parseRef(args[0])
	if err != nil {
		return err
	}
	s, err := loadStore(cfg.MainConfig, cc, args[1:])
	if err != nil {
		return err
	}
	addRef(s, r)
	return writeStore(cfg.MainConfig, cc, s)
}

func addRef(s *kv.Store, r *ref) {
	g := s.AddGroup(r.Group)
	if !r.HasKey() {
		return
	}
	k := g.AddKey(r.Key)
	for _, v := range r.Values {
		k.AddValue(v)
	}
}

func remove(cfg *RemoveConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Remove.Parse(cc, args)
	if err != nil {
		cfg.Remove.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: rm requires a <group>[.<key>[=<values>]] argument", cli.ErrUsage)
	}
	r, err := parseRef(args[0])
	if err != nil {
		return err
	}
	s, err := loadStore(cfg.MainConfig, cc, args[1:])
	if err != nil {
		return err
	}
	if err := removeRef(s, r); err != nil {
		if !cfg.Missing || !errors.Is(err, kv.ErrNotFound) {
			return err
		}
		theLog.Debug("nothing removed", "ref", args[0], "error", err)
	}
	return writeStore(cfg.MainConfig, cc, s)
}

// removeRef removes the deepest level named by r. Values are removed
// one at a time, so a missing value leaves the preceding ones removed.
func removeRef(s *kv.Store, r *ref) error {
	if !r.HasKey() {
		return s.RemoveGroupByName(r.Group)
	}
	g := s.Group(r.Group)
	if g == nil {
		return fmt.Errorf("%w: group %q", kv.ErrNotFound, r.Group)
	}
	if !r.HasValues() {
		return g.RemoveKeyByName(r.Key)
	}
	k := g.Key(r.Key)
	if k == nil {
		return fmt.Errorf("%w: key %q in group %q", kv.ErrNotFound, r.Key, r.Group)
	}
	for _, v := range r.Values {
		if err := k.RemoveValueByName(v); err != nil {
			return err
		}
	}
	return nil
}
