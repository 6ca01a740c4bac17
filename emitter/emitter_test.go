// SPDX-License-Identifier: MIT
//
// Copyright 2026 The nvinit Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package emitter_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nvinit/nvinit/catalog"
	"github.com/nvinit/nvinit/dialect"
	"github.com/nvinit/nvinit/emitter"
	"github.com/nvinit/nvinit/internal/testutil"
	"github.com/nvinit/nvinit/model"

	"github.com/nvinit/nvinit/dialects/lua"
	"github.com/nvinit/nvinit/dialects/vimscript"
)

// canonicalSelections is the acceptance scenario: the full default
// catalog selected, two keymaps, one grouped autocommand.
func canonicalSelections() model.Selections {
	return model.Selections{
		Options: map[string]model.OptionValue{
			"number":         model.BoolValue(true),
			"relativenumber": model.BoolValue(false),
			"expandtab":      model.BoolValue(true),
			"ignorecase":     model.BoolValue(true),
			"smartcase":      model.BoolValue(true),
			"splitright":     model.BoolValue(true),
			"splitbelow":     model.BoolValue(true),
			"termguicolors":  model.BoolValue(true),
			"shiftwidth":     model.NumberValue(2),
			"tabstop":        model.NumberValue(2),
			"laststatus":     model.NumberValue(3),
			"clipboard":      model.StringValue("unnamedplus"),
			"statusline":     model.StringValue("%#StatusLine# %f %m %= %y %p%% %l:%c "),
		},
		Keymaps: []model.Keymap{
			{
				Modes: []string{"n", "t"},
				Lhs:   "<leader>tt",
				Rhs:   model.Inline(`vim.cmd("botright split | terminal")`),
				Desc:  "Toggle terminal",
			},
			{
				Modes: []string{"n"},
				Lhs:   "<leader>e",
				Rhs:   model.Command("<cmd>Lex 30<cr>"),
				Desc:  "Open file explorer",
			},
		},
		Autocmds: []model.Autocmd{
			{Event: "TextYankPost", Group: "AppBasics", Body: "vim.highlight.on_yank()"},
		},
	}
}

func generate(t *testing.T, sel model.Selections, layout emitter.Layout) []dialect.File {
	t.Helper()
	files, err := emitter.Generate(catalog.Default(), sel, layout)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return files
}

func TestGolden(t *testing.T) {
	for _, c := range testutil.LoadCases(t, "testdata") {
		t.Run(c.Name, func(t *testing.T) {
			c.Run(t, func(c *testutil.Case) (map[string]string, error) {
				cat := catalog.Default()
				if c.Catalog != nil {
					var err error
					if cat, err = catalog.Load(c.Catalog); err != nil {
						return nil, err
					}
				}
				sel, err := model.ParseSelections(c.Selections)
				if err != nil {
					return nil, err
				}
				files, err := emitter.Generate(cat, sel, emitter.Layout(c.Layout))
				if err != nil {
					return nil, err
				}
				got := make(map[string]string, len(files))
				for _, f := range files {
					got[f.Path] = f.Content
				}
				return got, nil
			})
		})
	}
}

func TestDeterminism(t *testing.T) {
	first := generate(t, canonicalSelections(), emitter.LayoutSingle)
	for n := 0; n < 25; n++ {
		again := generate(t, canonicalSelections(), emitter.LayoutSingle)
		if diff := cmp.Diff(first, again); diff != "" {
			t.Fatalf("output changed between identical calls (-first +again):\n%s", diff)
		}
	}
}

// Building the options map in a different insertion order must not move
// a single byte: emission order comes from the catalog, never from map
// iteration.
func TestOptionInsertionOrderIrrelevant(t *testing.T) {
	base := canonicalSelections()

	permuted := canonicalSelections()
	permuted.Options = make(map[string]model.OptionValue, len(base.Options))
	keys := make([]string, 0, len(base.Options))
	for k := range base.Options {
		keys = append(keys, k)
	}
	for i := len(keys) - 1; i >= 0; i-- {
		permuted.Options[keys[i]] = base.Options[keys[i]]
	}

	want := generate(t, base, emitter.LayoutSingle)
	got := generate(t, permuted, emitter.LayoutSingle)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("insertion order leaked into output (-want +got):\n%s", diff)
	}
}

// The module blocks of split layout, concatenated, must equal the
// options+keymaps+autocmds portion of the single-file content.
func TestLayoutEquivalence(t *testing.T) {
	sel := canonicalSelections()

	single := generate(t, sel, emitter.LayoutSingle)
	split := generate(t, sel, emitter.LayoutSplit)

	if len(single) != 1 {
		t.Fatalf("single layout produced %d files", len(single))
	}
	if len(split) != 4 {
		t.Fatalf("split layout produced %d files", len(split))
	}

	var tail []string
	for _, f := range split[1:] {
		tail = append(tail, strings.TrimSuffix(f.Content, "\n"))
	}
	wantTail := strings.Join(tail, "\n\n") + "\n"

	header := strings.SplitAfterN(single[0].Content, "\n\n", 2)
	if len(header) != 2 {
		t.Fatal("single-file content has no header separator")
	}
	if diff := cmp.Diff(wantTail, header[1]); diff != "" {
		t.Errorf("split modules differ from single-file tail (-want +got):\n%s", diff)
	}
}

func TestSplitStructureIsStable(t *testing.T) {
	// Paths and file order never vary with selection content.
	full := generate(t, canonicalSelections(), emitter.LayoutSplit)
	empty := generate(t, model.Selections{}, emitter.LayoutSplit)

	wantPaths := []string{
		"init.lua",
		"lua/nvinit/options.lua",
		"lua/nvinit/keymaps.lua",
		"lua/nvinit/autocmds.lua",
	}
	for name, files := range map[string][]dialect.File{"full": full, "empty": empty} {
		var paths []string
		for _, f := range files {
			paths = append(paths, f.Path)
		}
		if diff := cmp.Diff(wantPaths, paths); diff != "" {
			t.Errorf("%s selections: path mismatch (-want +got):\n%s", name, diff)
		}
	}

	root := full[0].Content
	for _, require := range []string{
		`require("nvinit.options")`,
		`require("nvinit.keymaps")`,
		`require("nvinit.autocmds")`,
	} {
		if !strings.Contains(root, require) {
			t.Errorf("root file missing %s", require)
		}
	}
}

// An empty keymap and autocommand list still produces a well-formed file
// containing only the header and options blocks.
func TestEmptySectionsBoundary(t *testing.T) {
	files := generate(t, model.Selections{}, emitter.LayoutSingle)
	content := files[0].Content

	if strings.Contains(content, "vim.keymap.set") {
		t.Error("dangling mapping-alias statement in empty-keymap output")
	}
	if strings.Contains(content, "nvim_create_augroup") {
		t.Error("dangling group-creation statement in empty-autocmd output")
	}
	if !strings.HasSuffix(content, "\n") {
		t.Error("missing trailing newline")
	}
	if strings.HasSuffix(content, "\n\n") {
		t.Error("trailing blank line beyond the final newline")
	}
	if !strings.Contains(content, "vim.opt.laststatus = 2") {
		t.Error("options block missing catalog defaults")
	}
}

func TestTrailingNewlines(t *testing.T) {
	for _, layout := range []emitter.Layout{emitter.LayoutSingle, emitter.LayoutSplit} {
		for _, f := range generate(t, canonicalSelections(), layout) {
			if !strings.HasSuffix(f.Content, "\n") {
				t.Errorf("%s %s: missing trailing newline", layout, f.Path)
			}
			if strings.HasSuffix(f.Content, "\n\n") {
				t.Errorf("%s %s: trailing blank line", layout, f.Path)
			}
		}
	}
}

func TestLegacyDialectSelection(t *testing.T) {
	sel := canonicalSelections()
	sel.Legacy = true

	files := generate(t, sel, emitter.LayoutSingle)
	if files[0].Path != "init.vim" {
		t.Errorf("path = %q, want init.vim", files[0].Path)
	}
	content := files[0].Content
	if !strings.Contains(content, "let &number = v:true") {
		t.Error("legacy output missing Vimscript option assignment")
	}
	if strings.Contains(content, "vim.opt.") {
		t.Error("legacy output contains Lua syntax")
	}
}

func TestUnknownLayout(t *testing.T) {
	_, err := emitter.Generate(catalog.Default(), canonicalSelections(), "modular")
	var layoutErr *emitter.LayoutError
	if !errors.As(err, &layoutErr) {
		t.Fatalf("got %v, want *emitter.LayoutError", err)
	}
	if layoutErr.Mode != "modular" {
		t.Errorf("Mode = %q, want %q", layoutErr.Mode, "modular")
	}
}

func TestEncodingFailureProducesNoFiles(t *testing.T) {
	sel := canonicalSelections()
	sel.Options["clipboard"] = model.StringValue("primary")

	files, err := emitter.Generate(catalog.Default(), sel, emitter.LayoutSingle)
	if err == nil {
		t.Fatal("expected encoding error")
	}
	if files != nil {
		t.Errorf("got partial file set %v, want none", files)
	}
}

func TestUnregisteredDialect(t *testing.T) {
	dialect.Reset()
	defer func() {
		dialect.Register(lua.New())
		dialect.Register(vimscript.New())
	}()

	_, err := emitter.Generate(catalog.Default(), canonicalSelections(), emitter.LayoutSingle)
	var dialErr *emitter.DialectError
	if !errors.As(err, &dialErr) {
		t.Fatalf("got %v, want *emitter.DialectError", err)
	}
	if dialErr.Name != emitter.NativeDialect {
		t.Errorf("Name = %q, want %q", dialErr.Name, emitter.NativeDialect)
	}
}
