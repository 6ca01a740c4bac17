// SPDX-License-Identifier: MIT
//
// Copyright 2026 The nvinit Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Command nvinit generates Neovim configuration files from a selections
// document.
//
// Usage:
//
//	nvinit [flags]
//
// Flags:
//
//	-f, --selections  Selections JSON file (default: catalog defaults)
//	-o, --output      Output directory (default: stdout)
//	    --catalog     Catalog YAML file (default: embedded catalog)
//	    --layout      File layout: single or split (default: single)
//	    --legacy      Emit legacy Vimscript instead of Lua
//	    --dry-run     Print to stdout without writing files
//	    --list-dialects  List registered dialects
package main

import (
	"fmt"
	"os"
	"path/filepath"

	flag "github.com/spf13/pflag"

	"github.com/nvinit/nvinit/catalog"
	"github.com/nvinit/nvinit/dialect"
	"github.com/nvinit/nvinit/emitter"
	"github.com/nvinit/nvinit/model"

	_ "github.com/nvinit/nvinit/dialects/lua"
	_ "github.com/nvinit/nvinit/dialects/vimscript"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	selectionsPath := flag.StringP("selections", "f", "", "Selections JSON file (default: catalog defaults)")
	output := flag.StringP("output", "o", "", "Output directory (default: stdout)")
	catalogPath := flag.String("catalog", "", "Catalog YAML file (default: embedded catalog)")
	layout := flag.String("layout", "single", "File layout: single or split")
	legacy := flag.Bool("legacy", false, "Emit legacy Vimscript instead of Lua")
	dryRun := flag.Bool("dry-run", false, "Print to stdout without writing files")
	verbose := flag.Bool("verbose", false, "Verbose output")
	listDialects := flag.Bool("list-dialects", false, "List registered dialects")
	showVersion := flag.Bool("version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `nvinit - Neovim configuration generator

Turn a selections document into init.lua (or legacy init.vim), as one
file or a small module tree.

Usage:
  nvinit [flags]

Flags:
%s
Examples:
  # Print the default configuration
  nvinit

  # Generate a split-layout config tree from selections
  nvinit -f selections.json --layout split -o ~/.config/nvim

  # Legacy Vimscript output
  nvinit -f selections.json --legacy -o ./out

`, flag.CommandLine.FlagUsages())
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("nvinit %s (commit: %s, built: %s)\n", version, commit, date)
		return nil
	}

	if *listDialects {
		for _, name := range dialect.List() {
			d, _ := dialect.Get(name)
			meta := d.Metadata()
			fmt.Printf("%-6s %s - %s\n", meta.Name, meta.Version, meta.Description)
		}
		return nil
	}

	cat := catalog.Default()
	if *catalogPath != "" {
		data, err := os.ReadFile(*catalogPath)
		if err != nil {
			return fmt.Errorf("read catalog: %w", err)
		}
		if cat, err = catalog.Load(data); err != nil {
			return err
		}
	}

	sel := catalog.DefaultSelections(cat)
	if *selectionsPath != "" {
		data, err := os.ReadFile(*selectionsPath)
		if err != nil {
			return fmt.Errorf("read selections: %w", err)
		}
		if sel, err = model.ParseSelections(data); err != nil {
			return err
		}
	}
	if *legacy {
		sel.Legacy = true
	}

	if err := catalog.ValidateSelections(cat, sel); err != nil {
		return fmt.Errorf("validate selections: %w", err)
	}

	files, err := emitter.Generate(cat, sel, emitter.Layout(*layout))
	if err != nil {
		return fmt.Errorf("generate configuration: %w", err)
	}

	if *dryRun || *output == "" {
		for _, f := range files {
			if len(files) > 1 {
				fmt.Printf("==> %s\n", f.Path)
			}
			fmt.Print(f.Content)
		}
		return nil
	}

	for _, f := range files {
		path := filepath.Join(*output, filepath.FromSlash(f.Path))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
		if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", f.Path, err)
		}
		if *verbose {
			fmt.Fprintf(os.Stderr, "Wrote %s\n", path)
		}
	}
	return nil
}
