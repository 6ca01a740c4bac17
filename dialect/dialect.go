// SPDX-License-Identifier: MIT
//
// Copyright 2026 The nvinit Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package dialect defines the interface every output dialect implements.
//
// Section builders and the ordering engine never hard-code target syntax;
// only a Dialect implementation (and the value encoder, which it feeds)
// knows dialect-specific text. Adding a dialect means supplying a new
// implementation, never adding branches to the builders.
package dialect

import "github.com/nvinit/nvinit/model"

// Dialect exposes, per syntactic concept, the literal and statement
// fragments the section builders need.
type Dialect interface {
	// Metadata returns information about this dialect.
	Metadata() Metadata

	// BoolLiteral returns the dialect's boolean literal keyword.
	BoolLiteral(b bool) string

	// StringDelim returns the delimiter the dialect's string literals
	// use; the encoder escapes it inside string content.
	StringDelim() byte

	// ListLiteral wraps already-encoded elements in the dialect's
	// sequence literal syntax.
	ListLiteral(elems []string) string

	// Comment renders a single-line comment.
	Comment(text string) string

	// HeaderLines returns the leader and local-leader assignments.
	HeaderLines() []string

	// OptionAssign renders one option assignment. literal is the
	// already-encoded value text.
	OptionAssign(id, literal string) string

	// MapPrelude returns the shared mapping declarations emitted once
	// before any mapping call. May be empty.
	MapPrelude() []string

	// MapCall renders one key mapping.
	MapCall(k model.Keymap) []string

	// GroupCreate renders the create-group statement for name and
	// returns the reference text later hook registrations use.
	GroupCreate(name string) (lines []string, ref string)

	// AutocmdStmt renders one hook registration under the group
	// referenced by ref.
	AutocmdStmt(a model.Autocmd, ref string) []string

	// RootPath is the output path of the root file.
	RootPath() string

	// ModulePath is the output path of a named section module.
	ModulePath(section string) string

	// Require renders the root-file statement loading a section module.
	Require(section string) string
}

// Metadata describes a dialect.
type Metadata struct {
	// Name is the short identifier (e.g. "lua", "vim").
	Name string

	// Version is the dialect implementation version (semver).
	Version string

	// Description is a human-readable description.
	Description string

	// FileExtension is the output extension (e.g. ".lua").
	FileExtension string
}
