// SPDX-License-Identifier: MIT
//
// Copyright 2026 The nvinit Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package lua implements [dialect.Dialect] for Neovim's native Lua
// configuration syntax.
package lua

import (
	"fmt"
	"strings"

	"github.com/nvinit/nvinit/dialect"
	"github.com/nvinit/nvinit/encode"
	"github.com/nvinit/nvinit/model"
)

const indent = "  "

func init() {
	dialect.Register(New())
}

// Dialect emits Lua for init.lua-style configurations.
type Dialect struct{}

// New creates the Lua dialect.
func New() *Dialect {
	return &Dialect{}
}

// Metadata returns information about this dialect.
func (d *Dialect) Metadata() dialect.Metadata {
	return dialect.Metadata{
		Name:          "lua",
		Version:       "1.0.0",
		Description:   "Neovim native Lua configuration",
		FileExtension: ".lua",
	}
}

// BoolLiteral returns the Lua boolean keyword.
func (d *Dialect) BoolLiteral(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// StringDelim returns the double quote used for Lua string literals.
func (d *Dialect) StringDelim() byte { return '"' }

// ListLiteral wraps encoded elements in a Lua table constructor.
func (d *Dialect) ListLiteral(elems []string) string {
	if len(elems) == 0 {
		return "{}"
	}
	return "{ " + strings.Join(elems, ", ") + " }"
}

// Comment renders a single-line Lua comment.
func (d *Dialect) Comment(text string) string {
	return "-- " + text
}

// HeaderLines returns the leader assignments.
func (d *Dialect) HeaderLines() []string {
	return []string{
		`vim.g.mapleader = " "`,
		`vim.g.maplocalleader = " "`,
	}
}

// OptionAssign renders one vim.opt assignment.
func (d *Dialect) OptionAssign(id, literal string) string {
	return fmt.Sprintf("vim.opt.%s = %s", id, literal)
}

// MapPrelude declares the shared mapping alias.
func (d *Dialect) MapPrelude() []string {
	return []string{"local map = vim.keymap.set"}
}

// MapCall renders one vim.keymap.set call through the map alias.
// Literal commands produce a single line; inline bodies open an
// anonymous function spanning several lines.
func (d *Dialect) MapCall(k model.Keymap) []string {
	modes := d.modeArg(k.Modes)
	lhs := encode.QuoteString(k.Lhs, d.StringDelim())
	opts := d.mapOpts(k)

	tail := ")"
	if opts != "" {
		tail = ", " + opts + ")"
	}

	switch k.Rhs.Kind {
	case model.RhsInline:
		lines := []string{fmt.Sprintf("map(%s, %s, function()", modes, lhs)}
		lines = append(lines, indentLines(k.Rhs.Text)...)
		lines = append(lines, "end"+tail)
		return lines
	default:
		rhs := encode.QuoteString(k.Rhs.Text, d.StringDelim())
		return []string{fmt.Sprintf("map(%s, %s, %s%s", modes, lhs, rhs, tail)}
	}
}

func (d *Dialect) modeArg(modes []string) string {
	quoted := make([]string, len(modes))
	for i, m := range modes {
		quoted[i] = encode.QuoteString(m, d.StringDelim())
	}
	if len(quoted) == 1 {
		return quoted[0]
	}
	return d.ListLiteral(quoted)
}

// mapOpts builds the options record. Only explicitly set fields appear,
// in a fixed desc/noremap/silent order, so output stays minimal and
// stable.
func (d *Dialect) mapOpts(k model.Keymap) string {
	var fields []string
	if k.Desc != "" {
		fields = append(fields, "desc = "+encode.QuoteString(k.Desc, d.StringDelim()))
	}
	if k.Noremap != nil {
		fields = append(fields, "noremap = "+d.BoolLiteral(*k.Noremap))
	}
	if k.Silent != nil {
		fields = append(fields, "silent = "+d.BoolLiteral(*k.Silent))
	}
	if len(fields) == 0 {
		return ""
	}
	return "{ " + strings.Join(fields, ", ") + " }"
}

// GroupCreate binds the augroup to a local so hook registrations can
// reference it. Clearing on creation keeps re-sourcing idempotent.
func (d *Dialect) GroupCreate(name string) ([]string, string) {
	ref := localName(name)
	line := fmt.Sprintf("local %s = vim.api.nvim_create_augroup(%s, { clear = true })",
		ref, encode.QuoteString(name, d.StringDelim()))
	return []string{line}, ref
}

// AutocmdStmt renders one nvim_create_autocmd call with the body wrapped
// as an inline callback.
func (d *Dialect) AutocmdStmt(a model.Autocmd, ref string) []string {
	lines := []string{
		fmt.Sprintf("vim.api.nvim_create_autocmd(%s, {", encode.QuoteString(a.Event, d.StringDelim())),
		indent + "group = " + ref + ",",
	}
	if a.Pattern != "" {
		lines = append(lines, indent+"pattern = "+encode.QuoteString(a.Pattern, d.StringDelim())+",")
	}
	lines = append(lines, indent+"callback = function()")
	for _, l := range indentLines(a.Body) {
		lines = append(lines, indent+l)
	}
	lines = append(lines,
		indent+"end,",
		"})",
	)
	return lines
}

// RootPath is the fixed root file path.
func (d *Dialect) RootPath() string { return "init.lua" }

// ModulePath places section modules under the runtime lua/ tree.
func (d *Dialect) ModulePath(section string) string {
	return "lua/nvinit/" + section + ".lua"
}

// Require renders the root-file require for a section module.
func (d *Dialect) Require(section string) string {
	return fmt.Sprintf("require(%s)", encode.QuoteString("nvinit."+section, d.StringDelim()))
}

// indentLines splits body text and indents each line one level.
func indentLines(body string) []string {
	raw := strings.Split(strings.TrimRight(body, "\n"), "\n")
	lines := make([]string, len(raw))
	for i, l := range raw {
		if l == "" {
			lines[i] = ""
			continue
		}
		lines[i] = indent + l
	}
	return lines
}

// reservedWords are Lua keywords that can never be used as an
// identifier.
var reservedWords = map[string]bool{
	"and": true, "break": true, "do": true, "else": true,
	"elseif": true, "end": true, "false": true, "for": true,
	"function": true, "goto": true, "if": true, "in": true,
	"local": true, "nil": true, "not": true, "or": true,
	"repeat": true, "return": true, "then": true, "true": true,
	"until": true, "while": true,
}

// localName derives a stable snake_case Lua identifier from a group
// name, e.g. "AppBasics" -> "app_basics". A derived name that collides
// with a Lua keyword gets a "_group" suffix so the declaration stays
// parseable.
func localName(name string) string {
	var b strings.Builder
	prevLower := false
	for i, r := range name {
		switch {
		case r >= 'A' && r <= 'Z':
			if i > 0 && prevLower {
				b.WriteByte('_')
			}
			b.WriteRune(r - 'A' + 'a')
			prevLower = false
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			prevLower = true
		default:
			b.WriteByte('_')
			prevLower = false
		}
	}
	if b.Len() == 0 {
		return "group"
	}
	s := b.String()
	if s[0] >= '0' && s[0] <= '9' {
		return "g_" + s
	}
	if reservedWords[s] {
		return s + "_group"
	}
	return s
}
