// SPDX-License-Identifier: MIT
//
// Copyright 2026 The nvinit Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package emitter

import (
	"fmt"
	"strings"

	"github.com/nvinit/nvinit/dialect"
)

// Layout selects the output file arrangement.
type Layout string

const (
	// LayoutSingle concatenates every section into one root file.
	LayoutSingle Layout = "single"

	// LayoutSplit emits a root file plus one module per section.
	LayoutSplit Layout = "split"
)

// LayoutError reports an unrecognized layout mode. No fallback layout is
// ever substituted.
type LayoutError struct {
	Mode Layout
}

// Error implements the error interface.
func (e *LayoutError) Error() string {
	return fmt.Sprintf("layout: unknown mode %q", string(e.Mode))
}

// Blocks holds the four section blocks, each a list of output lines.
type Blocks struct {
	Header   []string
	Options  []string
	Keymaps  []string
	Autocmds []string
}

// sections returns the non-header blocks in their fixed emission order
// with their fixed module names.
func (b Blocks) sections() []struct {
	name  string
	lines []string
} {
	return []struct {
		name  string
		lines []string
	}{
		{"options", b.Options},
		{"keymaps", b.Keymaps},
		{"autocmds", b.Autocmds},
	}
}

// Compose assembles section blocks into the output file set.
//
// Single layout: Header, Options, Keymaps, Autocmds concatenated in that
// fixed order, empty blocks skipped, one blank line between blocks, one
// trailing newline.
//
// Split layout: a root file with the Header block plus three loader
// statements, then one module file per section. Module names never vary
// with selection content; an empty section still gets its module file.
// The returned order is fixed: root first, then options, keymaps,
// autocmds.
func Compose(d dialect.Dialect, b Blocks, layout Layout) ([]dialect.File, error) {
	switch layout {
	case LayoutSingle:
		blocks := [][]string{b.Header}
		for _, s := range b.sections() {
			if len(s.lines) > 0 {
				blocks = append(blocks, s.lines)
			}
		}
		return []dialect.File{{Path: d.RootPath(), Content: joinBlocks(blocks)}}, nil

	case LayoutSplit:
		root := append([]string(nil), b.Header...)
		root = append(root, "")
		for _, s := range b.sections() {
			root = append(root, d.Require(s.name))
		}
		files := []dialect.File{{Path: d.RootPath(), Content: joinBlocks([][]string{root})}}
		for _, s := range b.sections() {
			files = append(files, dialect.File{
				Path:    d.ModulePath(s.name),
				Content: joinBlocks([][]string{s.lines}),
			})
		}
		return files, nil

	default:
		return nil, &LayoutError{Mode: layout}
	}
}

// joinBlocks renders blocks separated by one blank line, terminated by a
// single trailing newline with no trailing blank lines beyond it.
func joinBlocks(blocks [][]string) string {
	parts := make([]string, len(blocks))
	for i, b := range blocks {
		parts[i] = strings.Join(b, "\n")
	}
	return strings.Join(parts, "\n\n") + "\n"
}
