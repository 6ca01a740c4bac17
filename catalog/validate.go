// SPDX-License-Identifier: MIT
//
// Copyright 2026 The nvinit Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package catalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/nvinit/nvinit/model"
)

// ValidationError represents a single validation failure.
type ValidationError struct {
	// Path locates the invalid entry, e.g. "options.shiftwidth" or
	// "keymaps[2]".
	Path string

	// Message describes what's wrong.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidationErrors collects multiple validation failures.
type ValidationErrors struct {
	Errors []*ValidationError
}

// Error implements the error interface.
func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	var msgs []string
	for _, err := range e.Errors {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("%d validation errors:\n  - %s", len(e.Errors), strings.Join(msgs, "\n  - "))
}

// Add appends a failure.
func (e *ValidationErrors) Add(path, format string, args ...any) {
	e.Errors = append(e.Errors, &ValidationError{Path: path, Message: fmt.Sprintf(format, args...)})
}

// AsError returns nil when no failures were recorded.
func (e *ValidationErrors) AsError() error {
	if len(e.Errors) == 0 {
		return nil
	}
	return e
}

// Validate checks catalog integrity: option IDs unique across all
// categories, defaults satisfying their declared type, enum defaults
// members of their value set, and sane numeric bounds.
func (c *Catalog) Validate() error {
	var errs ValidationErrors
	seen := make(map[string]bool)

	for _, cat := range c.Categories {
		if cat.Name == "" {
			errs.Add("categories", "category with empty name")
		}
		for _, opt := range cat.Options {
			path := "options." + opt.ID
			if opt.ID == "" {
				errs.Add("options", "option with empty id in category %q", cat.Name)
				continue
			}
			if seen[opt.ID] {
				errs.Add(path, "duplicate option id")
				continue
			}
			seen[opt.ID] = true

			if kind, ok := kindFor(opt.Type); !ok {
				errs.Add(path, "unknown type %q", opt.Type)
			} else if opt.Default.Kind != kind {
				errs.Add(path, "default is %s, declared type %s", opt.Default.Kind, opt.Type)
			}
			if opt.Type == model.TypeEnum {
				if len(opt.EnumValues) == 0 {
					errs.Add(path, "enum type without enum values")
				} else if opt.Default.Kind == model.KindString && !slices.Contains(opt.EnumValues, opt.Default.Str) {
					errs.Add(path, "default %q is not one of %v", opt.Default.Str, opt.EnumValues)
				}
			}
			if opt.Min != nil && opt.Max != nil && *opt.Min > *opt.Max {
				errs.Add(path, "min %v greater than max %v", *opt.Min, *opt.Max)
			}
		}
	}

	for i, k := range c.Keymaps {
		validateKeymap(&errs, fmt.Sprintf("keymaps[%d]", i), k)
	}
	for i, a := range c.Autocmds {
		validateAutocmd(&errs, fmt.Sprintf("autocmds[%d]", i), a)
	}

	return errs.AsError()
}

// ValidateSelections is the external validation layer the emitter
// assumes: it checks a user's choices against the catalog before
// generation. The emitter itself trusts its input and only fails
// defensively inside the value encoder.
func ValidateSelections(c *Catalog, sel model.Selections) error {
	var errs ValidationErrors

	for id, v := range sel.Options {
		path := "options." + id
		spec, ok := c.Option(id)
		if !ok {
			errs.Add(path, "unknown option")
			continue
		}
		kind, _ := kindFor(spec.Type)
		if v.Kind != kind {
			errs.Add(path, "value is %s, declared type %s", v.Kind, spec.Type)
			continue
		}
		switch spec.Type {
		case model.TypeEnum:
			if !slices.Contains(spec.EnumValues, v.Str) {
				errs.Add(path, "value %q is not one of %v", v.Str, spec.EnumValues)
			}
		case model.TypeNumber:
			if spec.Min != nil && v.Num < *spec.Min {
				errs.Add(path, "value %v below minimum %v", v.Num, *spec.Min)
			}
			if spec.Max != nil && v.Num > *spec.Max {
				errs.Add(path, "value %v above maximum %v", v.Num, *spec.Max)
			}
		}
	}

	// A duplicate lhs within one mode would silently shadow the earlier
	// mapping at runtime; the emitter does not dedupe, so reject here.
	seen := make(map[string]int)
	for i, k := range sel.Keymaps {
		path := fmt.Sprintf("keymaps[%d]", i)
		validateKeymap(&errs, path, k)
		for _, m := range k.Modes {
			key := m + "\x00" + k.Lhs
			if prev, dup := seen[key]; dup {
				errs.Add(path, "duplicate lhs %q in mode %q (also keymaps[%d])", k.Lhs, m, prev)
			} else {
				seen[key] = i
			}
		}
	}

	for i, a := range sel.Autocmds {
		validateAutocmd(&errs, fmt.Sprintf("autocmds[%d]", i), a)
	}

	return errs.AsError()
}

// validateAutocmd gates one hook entry. Group names end up inside
// augroup statements and generated identifiers, so characters that
// would terminate or corrupt those statements are rejected here rather
// than escaped downstream.
func validateAutocmd(errs *ValidationErrors, path string, a model.Autocmd) {
	if a.Event == "" {
		errs.Add(path, "empty event")
	}
	if strings.TrimSpace(a.Body) == "" {
		errs.Add(path, "empty body")
	}
	if strings.ContainsAny(a.Group, " \t\n|\"") {
		errs.Add(path, "group name %q contains whitespace or a statement separator", a.Group)
	}
}

func validateKeymap(errs *ValidationErrors, path string, k model.Keymap) {
	if k.Lhs == "" {
		errs.Add(path, "empty lhs")
	}
	if len(k.Modes) == 0 {
		errs.Add(path, "no modes")
	}
	for _, m := range k.Modes {
		if m == "" {
			errs.Add(path, "empty mode tag")
		}
	}
	if strings.TrimSpace(k.Rhs.Text) == "" {
		errs.Add(path, "empty rhs")
	}
}

func kindFor(t model.OptionType) (model.ValueKind, bool) {
	switch t {
	case model.TypeBool:
		return model.KindBool, true
	case model.TypeNumber:
		return model.KindNumber, true
	case model.TypeString, model.TypeEnum:
		return model.KindString, true
	case model.TypeList:
		return model.KindList, true
	default:
		return 0, false
	}
}
