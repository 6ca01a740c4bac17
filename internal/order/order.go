// SPDX-License-Identifier: MIT
//
// Copyright 2026 The nvinit Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package order establishes the total, deterministic order the section
// builders fold over. Output order depends only on catalog declaration,
// option IDs, and group names — never on map iteration or input arrival
// order — except where insertion order is the contract (keymaps, and
// autocommands within a group).
package order

import (
	"slices"
	"strings"

	"github.com/nvinit/nvinit/catalog"
	"github.com/nvinit/nvinit/model"
)

// DefaultGroup is the implicit container for autocommands without a
// group. Entries carrying it explicitly and entries with no group land
// in the same container.
const DefaultGroup = "NvinitDefault"

// Options returns every catalog option in emission order: categories in
// declared order, IDs ascending byte order within a category.
func Options(c *catalog.Catalog) []*model.OptionSpec {
	var out []*model.OptionSpec
	for ci := range c.Categories {
		cat := &c.Categories[ci]
		idx := make([]*model.OptionSpec, len(cat.Options))
		for oi := range cat.Options {
			idx[oi] = &cat.Options[oi]
		}
		slices.SortFunc(idx, func(a, b *model.OptionSpec) int {
			return strings.Compare(a.ID, b.ID)
		})
		out = append(out, idx...)
	}
	return out
}

// Keymaps preserves the caller's order. Keymaps are user-composed, not
// catalog-derived, so insertion order is the deterministic order.
func Keymaps(list []model.Keymap) []model.Keymap {
	return slices.Clone(list)
}

// Group is one autocommand container in emission order.
type Group struct {
	Name    string
	Entries []model.Autocmd
}

// Autocmds buckets hooks by group in first-seen order, preserving the
// supplied order within each group. Ungrouped entries join DefaultGroup
// at the position its first member appears.
func Autocmds(list []model.Autocmd) []Group {
	var groups []Group
	index := make(map[string]int)
	for _, a := range list {
		name := a.Group
		if name == "" {
			name = DefaultGroup
		}
		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, Group{Name: name})
		}
		groups[i].Entries = append(groups[i].Entries, a)
	}
	return groups
}
