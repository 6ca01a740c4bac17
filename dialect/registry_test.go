// SPDX-License-Identifier: MIT
//
// Copyright 2026 The nvinit Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package dialect

import (
	"slices"
	"testing"
)

// mockDialect implements only Metadata; the registry never calls the
// emission methods.
type mockDialect struct {
	Dialect
	name string
}

func (m *mockDialect) Metadata() Metadata {
	return Metadata{
		Name:          m.name,
		Version:       "1.0.0",
		Description:   "Mock dialect for testing",
		FileExtension: ".mock",
	}
}

func TestRegistry(t *testing.T) {
	Reset()
	defer Reset()

	t.Run("Register and Get", func(t *testing.T) {
		d := &mockDialect{name: "test"}
		Register(d)

		got, ok := Get("test")
		if !ok {
			t.Fatal("expected to find registered dialect")
		}
		if got.Metadata().Name != "test" {
			t.Errorf("got name %q, want %q", got.Metadata().Name, "test")
		}
	})

	t.Run("Get nonexistent", func(t *testing.T) {
		_, ok := Get("nonexistent")
		if ok {
			t.Error("expected not to find nonexistent dialect")
		}
	})

	t.Run("List sorted", func(t *testing.T) {
		Reset()
		Register(&mockDialect{name: "zz"})
		Register(&mockDialect{name: "aa"})

		got := List()
		want := []string{"aa", "zz"}
		if !slices.Equal(got, want) {
			t.Errorf("List() = %v, want %v", got, want)
		}
	})

	t.Run("All ordered by name", func(t *testing.T) {
		Reset()
		Register(&mockDialect{name: "two"})
		Register(&mockDialect{name: "one"})

		var got []string
		for _, d := range All() {
			got = append(got, d.Metadata().Name)
		}
		want := []string{"one", "two"}
		if !slices.Equal(got, want) {
			t.Errorf("All() names = %v, want %v", got, want)
		}
	})

	t.Run("duplicate panics", func(t *testing.T) {
		Reset()
		Register(&mockDialect{name: "dup"})

		defer func() {
			if recover() == nil {
				t.Error("expected panic on duplicate registration")
			}
		}()
		Register(&mockDialect{name: "dup"})
	})
}
