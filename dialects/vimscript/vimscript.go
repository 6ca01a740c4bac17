// SPDX-License-Identifier: MIT
//
// Copyright 2026 The nvinit Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package vimscript implements [dialect.Dialect] for the legacy
// Vimscript configuration syntax, selected by Selections.Legacy.
//
// Vimscript has no mapping-description metadata and no function-alias
// indirection, so mapping descriptions are dropped and each mode in a
// mode set produces its own map command. Inline bodies are emitted as
// <Cmd>...<CR> mappings; autocommand bodies run as plain Ex commands,
// which is what :autocmd expects natively.
package vimscript

import (
	"fmt"
	"strings"

	"github.com/nvinit/nvinit/dialect"
	"github.com/nvinit/nvinit/model"
)

func init() {
	dialect.Register(New())
}

// Dialect emits legacy Vimscript for init.vim-style configurations.
type Dialect struct{}

// New creates the Vimscript dialect.
func New() *Dialect {
	return &Dialect{}
}

// Metadata returns information about this dialect.
func (d *Dialect) Metadata() dialect.Metadata {
	return dialect.Metadata{
		Name:          "vim",
		Version:       "1.0.0",
		Description:   "Legacy Vimscript configuration",
		FileExtension: ".vim",
	}
}

// BoolLiteral returns the Vimscript boolean keyword.
func (d *Dialect) BoolLiteral(b bool) string {
	if b {
		return "v:true"
	}
	return "v:false"
}

// StringDelim returns the double quote used for Vimscript strings with
// backslash escape semantics.
func (d *Dialect) StringDelim() byte { return '"' }

// ListLiteral wraps encoded elements in a Vimscript list literal.
func (d *Dialect) ListLiteral(elems []string) string {
	return "[" + strings.Join(elems, ", ") + "]"
}

// Comment renders a single-line Vimscript comment.
func (d *Dialect) Comment(text string) string {
	return `" ` + text
}

// HeaderLines returns the leader assignments.
func (d *Dialect) HeaderLines() []string {
	return []string{
		`let mapleader = " "`,
		`let maplocalleader = " "`,
	}
}

// OptionAssign renders one option assignment via the &option form.
func (d *Dialect) OptionAssign(id, literal string) string {
	return fmt.Sprintf("let &%s = %s", id, literal)
}

// MapPrelude is empty: Vimscript maps with bare commands.
func (d *Dialect) MapPrelude() []string { return nil }

// MapCall renders one map command per mode tag. Lhs and rhs are raw key
// notation, not string literals, so they pass through unquoted.
func (d *Dialect) MapCall(k model.Keymap) []string {
	cmd := "noremap"
	if k.Noremap != nil && !*k.Noremap {
		cmd = "map"
	}

	var args []string
	if k.Silent != nil && *k.Silent {
		args = append(args, "<silent>")
	}
	args = append(args, k.Lhs, d.rhsText(k.Rhs))

	lines := make([]string, len(k.Modes))
	for i, m := range k.Modes {
		lines[i] = m + cmd + " " + strings.Join(args, " ")
	}
	return lines
}

func (d *Dialect) rhsText(r model.Rhs) string {
	if r.Kind == model.RhsInline {
		return "<Cmd>" + strings.ReplaceAll(r.Text, "\n", " | ") + "<CR>"
	}
	return r.Text
}

// GroupCreate renders the augroup block; the group name itself is the
// reference later autocmd statements use.
func (d *Dialect) GroupCreate(name string) ([]string, string) {
	return []string{
		"augroup " + name,
		"  autocmd!",
		"augroup END",
	}, name
}

// AutocmdStmt renders one :autocmd with the group given inline. A
// missing pattern registers for every file, spelled "*".
func (d *Dialect) AutocmdStmt(a model.Autocmd, ref string) []string {
	pattern := a.Pattern
	if pattern == "" {
		pattern = "*"
	}
	body := strings.ReplaceAll(a.Body, "\n", " | ")
	return []string{fmt.Sprintf("autocmd %s %s %s %s", ref, a.Event, pattern, body)}
}

// RootPath is the fixed root file path.
func (d *Dialect) RootPath() string { return "init.vim" }

// ModulePath places section modules beside the root file.
func (d *Dialect) ModulePath(section string) string {
	return section + ".vim"
}

// Require sources a section module relative to the root file.
func (d *Dialect) Require(section string) string {
	return "source <sfile>:h/" + section + ".vim"
}
