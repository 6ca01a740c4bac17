// SPDX-License-Identifier: MIT
//
// Copyright 2026 The nvinit Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package encode converts typed option values into dialect-correct
// literal text. It is the single place escaping rules live; no other
// component concatenates raw string content into output.
package encode

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/nvinit/nvinit/dialect"
	"github.com/nvinit/nvinit/model"
)

// Error reports a value whose runtime shape contradicts its declared
// type. It indicates an upstream validation gap; the emitter aborts the
// whole generation rather than producing partial output.
type Error struct {
	// Option is the option ID being encoded, when known.
	Option string

	// Reason describes the contradiction.
	Reason string

	// Value is the offending value.
	Value model.OptionValue
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Option == "" {
		return fmt.Sprintf("encode: %s", e.Reason)
	}
	return fmt.Sprintf("encode %s: %s", e.Option, e.Reason)
}

// Encoder renders values in one dialect's literal syntax.
type Encoder struct {
	d dialect.Dialect
}

// New returns an Encoder targeting d.
func New(d dialect.Dialect) *Encoder {
	return &Encoder{d: d}
}

// Encode returns the canonical literal text for v under the declared
// spec. It is total for every value satisfying spec.Type and fails with
// *Error otherwise.
func (e *Encoder) Encode(v model.OptionValue, spec *model.OptionSpec) (string, error) {
	switch spec.Type {
	case model.TypeBool:
		if v.Kind != model.KindBool {
			return "", e.mismatch(spec, v, model.KindBool)
		}
		return e.d.BoolLiteral(v.Bool), nil

	case model.TypeNumber:
		if v.Kind != model.KindNumber {
			return "", e.mismatch(spec, v, model.KindNumber)
		}
		if math.IsNaN(v.Num) || math.IsInf(v.Num, 0) {
			return "", &Error{Option: spec.ID, Reason: "non-finite number", Value: v}
		}
		return strconv.FormatFloat(v.Num, 'f', -1, 64), nil

	case model.TypeString:
		if v.Kind != model.KindString {
			return "", e.mismatch(spec, v, model.KindString)
		}
		return QuoteString(v.Str, e.d.StringDelim()), nil

	case model.TypeEnum:
		if v.Kind != model.KindString {
			return "", e.mismatch(spec, v, model.KindString)
		}
		if !slices.Contains(spec.EnumValues, v.Str) {
			return "", &Error{
				Option: spec.ID,
				Reason: fmt.Sprintf("enum value %q is not one of %v", v.Str, spec.EnumValues),
				Value:  v,
			}
		}
		return QuoteString(v.Str, e.d.StringDelim()), nil

	case model.TypeList:
		if v.Kind != model.KindList {
			return "", e.mismatch(spec, v, model.KindList)
		}
		elems := make([]string, len(v.List))
		for i, s := range v.List {
			elems[i] = QuoteString(s, e.d.StringDelim())
		}
		return e.d.ListLiteral(elems), nil

	default:
		return "", &Error{Option: spec.ID, Reason: fmt.Sprintf("unhandled option type %q", spec.Type), Value: v}
	}
}

func (e *Encoder) mismatch(spec *model.OptionSpec, v model.OptionValue, want model.ValueKind) *Error {
	return &Error{
		Option: spec.ID,
		Reason: fmt.Sprintf("declared %s, value is %s", want, v.Kind),
		Value:  v,
	}
}

// QuoteString returns s as a quoted literal using delim, escaping the
// backslash before the delimiter so already-escaped text is never
// double-escaped. Percent signs pass through untouched: format-string
// values (statusline and friends) arrive in directive syntax, so a
// literal "%%" in the input stays a literal "%%" in the output.
func QuoteString(s string, delim byte) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte(delim)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' || c == delim {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	b.WriteByte(delim)
	return b.String()
}
