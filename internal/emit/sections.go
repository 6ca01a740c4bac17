// SPDX-License-Identifier: MIT
//
// Copyright 2026 The nvinit Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package emit holds the section builders: stateless folds from ordered
// entries to output lines, emitting through the dialect interface. No
// builder performs I/O or retains state across calls.
package emit

import (
	"github.com/nvinit/nvinit/catalog"
	"github.com/nvinit/nvinit/dialect"
	"github.com/nvinit/nvinit/encode"
	"github.com/nvinit/nvinit/internal/order"
	"github.com/nvinit/nvinit/model"
)

// Banner is the fixed comment identifying generated output.
const Banner = "Generated by nvinit. Do not edit by hand."

// Header emits the leader assignments followed by the banner comment.
// Always three lines, no conditional logic.
func Header(d dialect.Dialect) []string {
	lines := append([]string(nil), d.HeaderLines()...)
	return append(lines, d.Comment(Banner))
}

// Options emits one assignment per catalog option in engine order, one
// statement per line with no blank separators. An option absent from
// selected falls back to its catalog default.
func Options(d dialect.Dialect, c *catalog.Catalog, selected map[string]model.OptionValue) ([]string, error) {
	enc := encode.New(d)
	var lines []string
	for _, spec := range order.Options(c) {
		v, ok := selected[spec.ID]
		if !ok {
			v = spec.Default
		}
		literal, err := enc.Encode(v, spec)
		if err != nil {
			return nil, err
		}
		lines = append(lines, d.OptionAssign(spec.ID, literal))
	}
	return lines, nil
}

// Keymaps emits the shared mapping prelude once, then exactly one call
// per keymap in engine order. An empty keymap list produces no lines at
// all — no dangling alias declaration.
func Keymaps(d dialect.Dialect, keymaps []model.Keymap) []string {
	if len(keymaps) == 0 {
		return nil
	}
	var stmts [][]string
	if prelude := d.MapPrelude(); len(prelude) > 0 {
		stmts = append(stmts, prelude)
	}
	for _, k := range order.Keymaps(keymaps) {
		stmts = append(stmts, d.MapCall(k))
	}
	return joinStmts(stmts)
}

// Autocmds emits one create-group statement per distinct group in
// first-seen order, then the group's hook registrations in supplied
// order. The emitted set is an explicit accumulator threaded through the
// fold, so a group name never produces a second creation statement.
func Autocmds(d dialect.Dialect, autocmds []model.Autocmd) []string {
	if len(autocmds) == 0 {
		return nil
	}
	var stmts [][]string
	created := make(map[string]string)
	for _, g := range order.Autocmds(autocmds) {
		ref, ok := created[g.Name]
		if !ok {
			lines, r := d.GroupCreate(g.Name)
			stmts = append(stmts, lines)
			created[g.Name] = r
			ref = r
		}
		for _, a := range g.Entries {
			stmts = append(stmts, d.AutocmdStmt(a, ref))
		}
	}
	return joinStmts(stmts)
}

// joinStmts flattens statements into lines, inserting a blank line
// between two adjacent statements unless both are single-line.
func joinStmts(stmts [][]string) []string {
	var lines []string
	for i, s := range stmts {
		if i > 0 && (len(stmts[i-1]) > 1 || len(s) > 1) {
			lines = append(lines, "")
		}
		lines = append(lines, s...)
	}
	return lines
}
