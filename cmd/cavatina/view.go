package main

import (
	"github.com/scott-cotton/cli"

	"github.com/signadot/cavatina/encode"
	"github.com/signadot/cavatina/kv"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	s, err := loadStore(cfg.MainConfig, cc, args)
	if err != nil {
		return err
	}
	return writeStore(cfg.MainConfig, cc, s)
}

func writeStore(cfg *MainConfig, cc *cli.Context, s *kv.Store) error {
	return encode.Encode(s, cc.Out, cfg.encOpts(cc.Out)...)
}
