package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/signadot/cavatina/format"
	"github.com/signadot/cavatina/kv"
	"github.com/signadot/cavatina/parse"
)

// loadStore merges files into a single store. With no files, or a
// file named "-", input is read from cc.In. Files named *.json are
// read as encoded by -O json.
func loadStore(cfg *MainConfig, cc *cli.Context, files []string) (*kv.Store, error) {
	s := kv.NewStore()
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		if err := loadFile(cfg, cc, s, file); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func loadFile(cfg *MainConfig, cc *cli.Context, s *kv.Store, file string) error {
	if strings.HasSuffix(file, format.JSONFormat.Suffix()) {
		d, err := os.ReadFile(file)
		if err != nil {
			return err
		}
		if err := parse.ParseJSON(s, d); err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		return nil
	}
	if file != "-" {
		if err := parse.ParseFile(s, file, cfg.parseOpts()...); err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		return nil
	}
	d, err := io.ReadAll(cc.In)
	if err != nil {
		return fmt.Errorf("error reading stdin: %w", err)
	}
	opts := append(cfg.parseOpts(), parse.WithFilename("<stdin>"))
	if err := parse.Parse(s, d, opts...); err != nil {
		return fmt.Errorf("error decoding stdin: %w", err)
	}
	return nil
}
