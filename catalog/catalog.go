// SPDX-License-Identifier: MIT
//
// Copyright 2026 The nvinit Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package catalog holds the developer-authored list of available options,
// default keymaps, and default autocommands offered to the user, loaded
// from YAML. The catalog also fixes the category order the ordering
// engine uses; category order is declared, never alphabetic.
package catalog

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/nvinit/nvinit/model"
)

// Category is one named group of options. Categories appear in output in
// the order they are declared here.
type Category struct {
	Name    string             `yaml:"name"`
	Label   string             `yaml:"label,omitempty"`
	Options []model.OptionSpec `yaml:"options"`
}

// Catalog is the static set of choices the product offers.
type Catalog struct {
	Categories []Category      `yaml:"categories"`
	Keymaps    []model.Keymap  `yaml:"keymaps,omitempty"`
	Autocmds   []model.Autocmd `yaml:"autocmds,omitempty"`

	byID map[string]*model.OptionSpec
}

// Option looks up an option spec by ID. Catalogs from Load carry an
// index; a hand-assembled Catalog falls back to a scan so the method
// never mutates shared state.
func (c *Catalog) Option(id string) (*model.OptionSpec, bool) {
	if c.byID != nil {
		spec, ok := c.byID[id]
		return spec, ok
	}
	for ci := range c.Categories {
		for oi := range c.Categories[ci].Options {
			if c.Categories[ci].Options[oi].ID == id {
				return &c.Categories[ci].Options[oi], true
			}
		}
	}
	return nil, false
}

func (c *Catalog) index() {
	c.byID = make(map[string]*model.OptionSpec, len(c.Categories))
	for ci := range c.Categories {
		for oi := range c.Categories[ci].Options {
			spec := &c.Categories[ci].Options[oi]
			c.byID[spec.ID] = spec
		}
	}
}

// Load parses a YAML catalog and validates it.
func Load(data []byte) (*Catalog, error) {
	var raw struct {
		Categories []struct {
			Name    string             `yaml:"name"`
			Label   string             `yaml:"label"`
			Options []model.OptionSpec `yaml:"options"`
		} `yaml:"categories"`
		Keymaps  []keymapDoc     `yaml:"keymaps"`
		Autocmds []model.Autocmd `yaml:"autocmds"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	c := &Catalog{Autocmds: raw.Autocmds}
	for _, cat := range raw.Categories {
		c.Categories = append(c.Categories, Category{
			Name:    cat.Name,
			Label:   cat.Label,
			Options: cat.Options,
		})
	}
	for i, kd := range raw.Keymaps {
		k, err := kd.keymap()
		if err != nil {
			return nil, fmt.Errorf("parse catalog: keymap %d: %w", i, err)
		}
		c.Keymaps = append(c.Keymaps, k)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate catalog: %w", err)
	}
	c.index()
	return c, nil
}

// keymapDoc is the YAML shape of a catalog keymap. A mapping target is
// written as either rhs (literal command) or body (inline function).
type keymapDoc struct {
	Mode    string   `yaml:"mode"`
	Modes   []string `yaml:"modes"`
	Lhs     string   `yaml:"lhs"`
	Rhs     *string  `yaml:"rhs"`
	Body    *string  `yaml:"body"`
	Desc    string   `yaml:"desc"`
	Silent  *bool    `yaml:"silent"`
	Noremap *bool    `yaml:"noremap"`
}

func (d keymapDoc) keymap() (model.Keymap, error) {
	k := model.Keymap{
		Modes:   d.Modes,
		Lhs:     d.Lhs,
		Desc:    d.Desc,
		Silent:  d.Silent,
		Noremap: d.Noremap,
	}
	if len(k.Modes) == 0 && d.Mode != "" {
		k.Modes = []string{d.Mode}
	}
	switch {
	case d.Rhs != nil && d.Body != nil:
		return model.Keymap{}, fmt.Errorf("rhs and body are mutually exclusive")
	case d.Rhs != nil:
		k.Rhs = model.Command(*d.Rhs)
	case d.Body != nil:
		k.Rhs = model.Inline(*d.Body)
	default:
		return model.Keymap{}, fmt.Errorf("missing rhs or body")
	}
	return k, nil
}

//go:embed default.yaml
var defaultYAML []byte

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
)

// Default returns the embedded default catalog. It panics on a malformed
// embedded file, which is a build defect, not a runtime condition.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Load(defaultYAML)
		if err != nil {
			panic(fmt.Sprintf("embedded default catalog: %v", err))
		}
		defaultCat = c
	})
	return defaultCat
}

// DefaultSelections returns the choice set a fresh session starts from:
// every catalog option at its default, plus the catalog's default
// keymaps and autocommands.
func DefaultSelections(c *Catalog) model.Selections {
	sel := model.Selections{Options: make(map[string]model.OptionValue)}
	for _, cat := range c.Categories {
		for _, opt := range cat.Options {
			sel.Options[opt.ID] = opt.Default
		}
	}
	sel.Keymaps = append(sel.Keymaps, c.Keymaps...)
	sel.Autocmds = append(sel.Autocmds, c.Autocmds...)
	return sel
}
