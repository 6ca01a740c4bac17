// SPDX-License-Identifier: MIT
//
// Copyright 2026 The nvinit Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package model

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ValueKind tags the variant held by an OptionValue.
type ValueKind int

const (
	KindBool ValueKind = iota
	KindNumber
	KindString
	KindList
)

// String returns the kind name used in error messages.
func (k ValueKind) String() string {
	switch k {
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindList:
		return "string-array"
	default:
		return fmt.Sprintf("ValueKind(%d)", int(k))
	}
}

// OptionValue is a tagged variant holding one option value. The encoder
// dispatches exhaustively over Kind; only the field matching Kind is
// meaningful.
type OptionValue struct {
	Kind ValueKind
	Bool bool
	Num  float64
	Str  string
	List []string
}

// BoolValue returns a boolean OptionValue.
func BoolValue(b bool) OptionValue {
	return OptionValue{Kind: KindBool, Bool: b}
}

// NumberValue returns a numeric OptionValue.
func NumberValue(n float64) OptionValue {
	return OptionValue{Kind: KindNumber, Num: n}
}

// StringValue returns a string OptionValue. Enum options use string
// values as well; membership is checked at encode time.
func StringValue(s string) OptionValue {
	return OptionValue{Kind: KindString, Str: s}
}

// ListValue returns a string-array OptionValue.
func ListValue(elems ...string) OptionValue {
	return OptionValue{Kind: KindList, List: elems}
}

// UnmarshalYAML decodes a catalog default into the matching variant.
// Scalars map onto bool/number/string by YAML tag; sequences must contain
// only strings.
func (v *OptionValue) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		switch node.Tag {
		case "!!bool":
			var b bool
			if err := node.Decode(&b); err != nil {
				return err
			}
			*v = BoolValue(b)
		case "!!int", "!!float":
			var n float64
			if err := node.Decode(&n); err != nil {
				return err
			}
			*v = NumberValue(n)
		case "!!str":
			*v = StringValue(node.Value)
		default:
			return fmt.Errorf("line %d: unsupported scalar tag %s for option value", node.Line, node.Tag)
		}
	case yaml.SequenceNode:
		var elems []string
		if err := node.Decode(&elems); err != nil {
			return fmt.Errorf("line %d: string-array default must contain only strings: %w", node.Line, err)
		}
		*v = ListValue(elems...)
	default:
		return fmt.Errorf("line %d: unsupported YAML node for option value", node.Line)
	}
	return nil
}

// MarshalYAML emits the variant back as the matching YAML scalar or
// sequence, so catalogs round-trip.
func (v OptionValue) MarshalYAML() (any, error) {
	switch v.Kind {
	case KindBool:
		return v.Bool, nil
	case KindNumber:
		return v.Num, nil
	case KindString:
		return v.Str, nil
	case KindList:
		return v.List, nil
	default:
		return nil, fmt.Errorf("unhandled value kind %v", v.Kind)
	}
}
