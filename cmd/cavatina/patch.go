package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/cavatina/libdiff"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a json patch file", cli.ErrUsage)
	}
	if args[0] == "-" && len(args) == 1 {
		return fmt.Errorf("%w: patch and input cannot both be stdin", cli.ErrUsage)
	}
	p, err := readPatch(cc, args[0])
	if err != nil {
		return err
	}
	s, err := loadStore(cfg.MainConfig, cc, args[1:])
	if err != nil {
		return err
	}
	res, err := libdiff.Patch(s, p)
	if err != nil {
		return fmt.Errorf("error patching: %w", err)
	}
	return writeStore(cfg.MainConfig, cc, res)
}

func readPatch(cc *cli.Context, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cc.In)
	}
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return d, nil
}
