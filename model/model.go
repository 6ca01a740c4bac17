// SPDX-License-Identifier: MIT
//
// Copyright 2026 The nvinit Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package model defines the data structures the configuration emitter
// consumes: option catalog entries, key mappings, autocommand hooks, and
// the complete per-invocation selection set.
//
// All values are created by the caller (UI or import layer) and passed by
// value; the emitter neither mutates nor retains them.
package model

// OptionType enumerates the value shapes a configurable option can take.
type OptionType string

const (
	TypeBool   OptionType = "boolean"
	TypeNumber OptionType = "number"
	TypeString OptionType = "string"
	TypeEnum   OptionType = "enum"
	TypeList   OptionType = "string-array"
)

// OptionSpec is a catalog entry describing one configurable editor setting.
type OptionSpec struct {
	// ID is the unique option key, e.g. "shiftwidth". It is emitted
	// verbatim as the assignment target.
	ID string `yaml:"id"`

	// Type declares the shape of the option's value.
	Type OptionType `yaml:"type"`

	// Default is used when the option is absent from Selections.
	// It must satisfy Type and, for enums, be a member of EnumValues.
	Default OptionValue `yaml:"default"`

	// EnumValues is the finite set of permitted strings for enum options.
	EnumValues []string `yaml:"enum,omitempty"`

	// Label and Description are display-only; emission ignores them.
	Label       string `yaml:"label,omitempty"`
	Description string `yaml:"description,omitempty"`

	// Min and Max bound numeric options. Clamping is the validation
	// layer's job; the encoder never re-clamps.
	Min *float64 `yaml:"min,omitempty"`
	Max *float64 `yaml:"max,omitempty"`

	// Format marks a format-string target (e.g. statusline). It is
	// presentation metadata only: the encoder passes percent sequences
	// through untouched for every string value, flagged or not, so a
	// UI can surface directive help without changing emission.
	Format bool `yaml:"format,omitempty"`
}

// Keymap describes one key mapping.
type Keymap struct {
	// Modes holds one or more mode tags ("n", "i", "v", "t", ...).
	Modes []string `yaml:"modes"`

	// Lhs is the trigger sequence. Must be non-empty; uniqueness per
	// mode is a validation concern of the caller, not the emitter.
	Lhs string `yaml:"lhs"`

	// Rhs is either a literal command string or an inline function body.
	Rhs Rhs `yaml:"rhs"`

	// Desc is an optional human-readable description; empty means unset.
	Desc string `yaml:"desc,omitempty"`

	// Silent and Noremap are tri-state: nil means unset and is omitted
	// from the emitted options record.
	Silent  *bool `yaml:"silent,omitempty"`
	Noremap *bool `yaml:"noremap,omitempty"`

	// Condition is reserved. It is carried through the data model but
	// has no emission semantics yet.
	Condition string `yaml:"condition,omitempty"`
}

// RhsKind discriminates the two forms a mapping target can take.
type RhsKind int

const (
	// RhsCommand is a literal command string, e.g. "<cmd>Lex 30<cr>".
	RhsCommand RhsKind = iota

	// RhsInline is executable statement text wrapped as an anonymous
	// callback in the emitted mapping.
	RhsInline
)

// Rhs is the mapping target: a literal command or an inline body.
// Using a two-case variant instead of a sentinel string keeps dispatch
// exhaustive and avoids collisions with legitimate command text.
type Rhs struct {
	Kind RhsKind
	Text string
}

// Command returns a literal-command mapping target.
func Command(text string) Rhs {
	return Rhs{Kind: RhsCommand, Text: text}
}

// Inline returns an inline-function mapping target wrapping body.
func Inline(body string) Rhs {
	return Rhs{Kind: RhsInline, Text: body}
}

// Autocmd describes one automatic-command hook.
type Autocmd struct {
	// Event is the trigger event name, e.g. "TextYankPost". Non-empty.
	Event string `yaml:"event"`

	// Pattern is an optional file-pattern filter.
	Pattern string `yaml:"pattern,omitempty"`

	// Body is executable statement text emitted as an inline callback.
	Body string `yaml:"body"`

	// Group names the container the hook registers under. Empty means
	// the implicit default group.
	Group string `yaml:"group,omitempty"`
}

// Selections is the complete user choice set for one generation call.
//
// Option map iteration order is irrelevant: the ordering engine imposes a
// deterministic order from the catalog. Keymap and autocommand slices are
// insertion-ordered and that order is preserved in output.
type Selections struct {
	// Options maps option ID to the chosen value. IDs absent from the
	// map fall back to the catalog default.
	Options map[string]OptionValue

	// Keymaps are emitted in the order given here.
	Keymaps []Keymap

	// Autocmds are grouped by Group in first-seen order; within a group
	// the order given here is preserved.
	Autocmds []Autocmd

	// Legacy selects the Vimscript dialect instead of Lua.
	Legacy bool
}
