// SPDX-License-Identifier: MIT
//
// Copyright 2026 The nvinit Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package model

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// ParseSelections decodes a Selections document from JSON bytes.
//
// Option values are dynamically typed; the JSON type of each value picks
// the OptionValue variant. The document shape:
//
//	{
//	  "legacy": false,
//	  "options": {"number": true, "shiftwidth": 2, "clipboard": "unnamedplus"},
//	  "keymaps": [
//	    {"modes": ["n", "t"], "lhs": "<leader>tt", "body": "...", "desc": "..."},
//	    {"mode": "n", "lhs": "<leader>e", "rhs": "<cmd>Lex 30<cr>"}
//	  ],
//	  "autocmds": [
//	    {"event": "TextYankPost", "group": "AppBasics", "body": "..."}
//	  ]
//	}
//
// A keymap carries either "rhs" (literal command) or "body" (inline
// function), never both. "mode" is shorthand for a single-tag "modes".
func ParseSelections(data []byte) (Selections, error) {
	var sel Selections

	if !gjson.ValidBytes(data) {
		return sel, fmt.Errorf("parse selections: invalid JSON")
	}
	doc := gjson.ParseBytes(data)

	sel.Legacy = doc.Get("legacy").Bool()

	var err error
	doc.Get("options").ForEach(func(key, value gjson.Result) bool {
		v, verr := optionValue(value)
		if verr != nil {
			err = fmt.Errorf("option %q: %w", key.String(), verr)
			return false
		}
		if sel.Options == nil {
			sel.Options = make(map[string]OptionValue)
		}
		sel.Options[key.String()] = v
		return true
	})
	if err != nil {
		return Selections{}, err
	}

	for i, km := range doc.Get("keymaps").Array() {
		k, kerr := keymapFrom(km)
		if kerr != nil {
			return Selections{}, fmt.Errorf("keymap %d: %w", i, kerr)
		}
		sel.Keymaps = append(sel.Keymaps, k)
	}

	for i, ac := range doc.Get("autocmds").Array() {
		a := Autocmd{
			Event:   ac.Get("event").String(),
			Pattern: ac.Get("pattern").String(),
			Body:    ac.Get("body").String(),
			Group:   ac.Get("group").String(),
		}
		if a.Event == "" {
			return Selections{}, fmt.Errorf("autocmd %d: missing event", i)
		}
		sel.Autocmds = append(sel.Autocmds, a)
	}

	return sel, nil
}

func optionValue(r gjson.Result) (OptionValue, error) {
	switch {
	case r.Type == gjson.True, r.Type == gjson.False:
		return BoolValue(r.Bool()), nil
	case r.Type == gjson.Number:
		return NumberValue(r.Float()), nil
	case r.Type == gjson.String:
		return StringValue(r.String()), nil
	case r.IsArray():
		var elems []string
		for _, e := range r.Array() {
			if e.Type != gjson.String {
				return OptionValue{}, fmt.Errorf("array element %s is not a string", e.Raw)
			}
			elems = append(elems, e.String())
		}
		return ListValue(elems...), nil
	default:
		return OptionValue{}, fmt.Errorf("unsupported value %s", r.Raw)
	}
}

func keymapFrom(r gjson.Result) (Keymap, error) {
	k := Keymap{
		Lhs:       r.Get("lhs").String(),
		Desc:      r.Get("desc").String(),
		Condition: r.Get("condition").String(),
	}
	if k.Lhs == "" {
		return Keymap{}, fmt.Errorf("missing lhs")
	}

	if modes := r.Get("modes"); modes.Exists() {
		for _, m := range modes.Array() {
			k.Modes = append(k.Modes, m.String())
		}
	} else if mode := r.Get("mode"); mode.Exists() {
		k.Modes = []string{mode.String()}
	}
	if len(k.Modes) == 0 {
		return Keymap{}, fmt.Errorf("missing mode")
	}

	rhs := r.Get("rhs")
	body := r.Get("body")
	switch {
	case rhs.Exists() && body.Exists():
		return Keymap{}, fmt.Errorf("rhs and body are mutually exclusive")
	case rhs.Exists():
		k.Rhs = Command(rhs.String())
	case body.Exists():
		k.Rhs = Inline(body.String())
	default:
		return Keymap{}, fmt.Errorf("missing rhs or body")
	}

	if s := r.Get("silent"); s.Exists() {
		v := s.Bool()
		k.Silent = &v
	}
	if n := r.Get("noremap"); n.Exists() {
		v := n.Bool()
		k.Noremap = &v
	}

	return k, nil
}
