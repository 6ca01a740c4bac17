// SPDX-License-Identifier: MIT

package emit_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nvinit/nvinit/catalog"
	"github.com/nvinit/nvinit/dialects/lua"
	"github.com/nvinit/nvinit/encode"
	"github.com/nvinit/nvinit/internal/emit"
	"github.com/nvinit/nvinit/model"
)

func testCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Categories: []catalog.Category{
			{
				Name: "ui",
				Options: []model.OptionSpec{
					{ID: "number", Type: model.TypeBool, Default: model.BoolValue(false)},
					{ID: "laststatus", Type: model.TypeNumber, Default: model.NumberValue(2)},
				},
			},
			{
				Name: "integration",
				Options: []model.OptionSpec{
					{
						ID:         "clipboard",
						Type:       model.TypeEnum,
						Default:    model.StringValue(""),
						EnumValues: []string{"", "unnamed", "unnamedplus"},
					},
				},
			},
		},
	}
}

func TestHeader(t *testing.T) {
	want := []string{
		`vim.g.mapleader = " "`,
		`vim.g.maplocalleader = " "`,
		"-- Generated by nvinit. Do not edit by hand.",
	}
	if diff := cmp.Diff(want, emit.Header(lua.New())); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestOptionsFallBackToDefaults(t *testing.T) {
	selected := map[string]model.OptionValue{
		"number": model.BoolValue(true),
	}

	got, err := emit.Options(lua.New(), testCatalog(), selected)
	if err != nil {
		t.Fatalf("Options: %v", err)
	}

	want := []string{
		"vim.opt.laststatus = 2",
		"vim.opt.number = true",
		`vim.opt.clipboard = ""`,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestOptionsEncodingFailureAborts(t *testing.T) {
	selected := map[string]model.OptionValue{
		"clipboard": model.StringValue("primary"),
	}

	lines, err := emit.Options(lua.New(), testCatalog(), selected)
	var encErr *encode.Error
	if !errors.As(err, &encErr) {
		t.Fatalf("got %v, want *encode.Error", err)
	}
	if lines != nil {
		t.Errorf("got partial output %v, want none", lines)
	}
}

func TestKeymapsEmpty(t *testing.T) {
	if got := emit.Keymaps(lua.New(), nil); got != nil {
		t.Errorf("empty keymap list produced lines: %v", got)
	}
}

func TestKeymapsAliasOnce(t *testing.T) {
	keymaps := []model.Keymap{
		{Modes: []string{"n"}, Lhs: "<leader>e", Rhs: model.Command("<cmd>Lex 30<cr>")},
		{Modes: []string{"n"}, Lhs: "<leader>w", Rhs: model.Command("<cmd>w<cr>")},
	}

	got := emit.Keymaps(lua.New(), keymaps)
	want := []string{
		"local map = vim.keymap.set",
		`map("n", "<leader>e", "<cmd>Lex 30<cr>")`,
		`map("n", "<leader>w", "<cmd>w<cr>")`,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestKeymapsBlankLineAroundInlineFunctions(t *testing.T) {
	keymaps := []model.Keymap{
		{Modes: []string{"n"}, Lhs: "<leader>t", Rhs: model.Inline(`vim.cmd("terminal")`)},
		{Modes: []string{"n"}, Lhs: "<leader>e", Rhs: model.Command("<cmd>Lex 30<cr>")},
	}

	got := emit.Keymaps(lua.New(), keymaps)
	want := []string{
		"local map = vim.keymap.set",
		"",
		`map("n", "<leader>t", function()`,
		`  vim.cmd("terminal")`,
		`end)`,
		"",
		`map("n", "<leader>e", "<cmd>Lex 30<cr>")`,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestAutocmdsEmpty(t *testing.T) {
	if got := emit.Autocmds(lua.New(), nil); got != nil {
		t.Errorf("empty autocmd list produced lines: %v", got)
	}
}

// Two hooks sharing a group produce exactly one group-creation statement
// followed by two registrations.
func TestAutocmdsGroupCreatedOnce(t *testing.T) {
	autocmds := []model.Autocmd{
		{Event: "TextYankPost", Group: "AppBasics", Body: "vim.highlight.on_yank()"},
		{Event: "InsertLeave", Group: "AppBasics", Body: "vim.cmd.nohlsearch()"},
	}

	got := emit.Autocmds(lua.New(), autocmds)

	creations := 0
	registrations := 0
	for _, line := range got {
		if line == `local app_basics = vim.api.nvim_create_augroup("AppBasics", { clear = true })` {
			creations++
		}
		if line == `vim.api.nvim_create_autocmd("TextYankPost", {` ||
			line == `vim.api.nvim_create_autocmd("InsertLeave", {` {
			registrations++
		}
	}
	if creations != 1 {
		t.Errorf("got %d group creations, want exactly 1", creations)
	}
	if registrations != 2 {
		t.Errorf("got %d registrations, want 2", registrations)
	}
}

func TestAutocmdsImplicitDefaultGroup(t *testing.T) {
	autocmds := []model.Autocmd{
		{Event: "VimResized", Body: `vim.cmd("wincmd =")`},
	}

	got := emit.Autocmds(lua.New(), autocmds)
	want := []string{
		`local nvinit_default = vim.api.nvim_create_augroup("NvinitDefault", { clear = true })`,
		"",
		`vim.api.nvim_create_autocmd("VimResized", {`,
		"  group = nvinit_default,",
		"  callback = function()",
		`    vim.cmd("wincmd =")`,
		"  end,",
		"})",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
