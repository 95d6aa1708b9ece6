package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/signadot/cavatina/kv"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires a <group>[.<key>] argument", cli.ErrUsage)
	}
	r, err := parseRef(args[0])
	if err != nil {
		return err
	}
	if r.HasValues() {
		return fmt.Errorf("%w: get does not take values, got %q", cli.ErrUsage, args[0])
	}
	s, err := loadStore(cfg.MainConfig, cc, args[1:])
	if err != nil {
		return err
	}
	g := s.Group(r.Group)
	if g == nil {
		return fmt.Errorf("%w: group %q", kv.ErrNotFound, r.Group)
	}
	if !r.HasKey() {
		return writeStore(cfg.MainConfig, cc, groupStore(g))
	}
	k := g.Key(r.Key)
	if k == nil {
		return fmt.Errorf("%w: key %q in group %q", kv.ErrNotFound, r.Key, r.Group)
	}
	vals := k.Strings()
	if len(vals) == 0 {
		return nil
	}
	_, err = cc.Out.Write([]byte(strings.Join(vals, "\n") + "\n"))
	return err
}

// groupStore returns a store holding only g and its subtree. The names
// are shared with g.
func groupStore(g *kv.Group) *kv.Store {
	s := kv.NewStore()
	sg := s.AddGroup(g.Name())
	for k := range g.Keys() {
		sk := sg.AddKey(k.Name())
		for v := range k.Values() {
			sk.AddValue(v.Name())
		}
	}
	return s
}
