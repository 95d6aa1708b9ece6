package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/cavatina/kv"
	"github.com/signadot/cavatina/libdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	if args[0] == "-" && args[1] == "-" {
		return fmt.Errorf("%w: only one diff input may be stdin", cli.ErrUsage)
	}
	var stores [2]*kv.Store
	for i, arg := range args {
		s := kv.NewStore()
		if err := loadFile(cfg.MainConfig, cc, s, arg); err != nil {
			return err
		}
		stores[i] = s
	}
	d := libdiff.Diff(stores[0], stores[1])
	if d.Empty() {
		return nil
	}
	if err := d.Write(cc.Out, cfg.colors(cc.Out)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
