// SPDX-License-Identifier: MIT
//
// Copyright 2026 The nvinit Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package dialect

import (
	"fmt"
	"slices"
	"sync"
)

// registry indexes dialects by metadata name. A single package-level
// instance backs the exported functions; dialect packages add
// themselves from init, so importing a dialect package is what makes
// its name resolvable.
type registry struct {
	mu sync.RWMutex
	m  map[string]Dialect
}

var reg = &registry{m: make(map[string]Dialect)}

func (r *registry) add(d Dialect) {
	name := d.Metadata().Name
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.m[name]; taken {
		panic(fmt.Sprintf("dialect %q already registered", name))
	}
	r.m[name] = d
}

func (r *registry) lookup(name string) (Dialect, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.m[name]
	return d, ok
}

func (r *registry) names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.m))
	for name := range r.m {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Register makes a dialect resolvable by its metadata name. It panics
// when the name is already taken: two packages claiming one name is a
// wiring mistake, not a runtime condition.
func Register(d Dialect) {
	reg.add(d)
}

// Get resolves a dialect by name.
func Get(name string) (Dialect, bool) {
	return reg.lookup(name)
}

// List reports the registered dialect names in sorted order.
func List() []string {
	return reg.names()
}

// All returns every registered dialect, ordered by name.
func All() []Dialect {
	ds := make([]Dialect, 0)
	for _, name := range reg.names() {
		if d, ok := reg.lookup(name); ok {
			ds = append(ds, d)
		}
	}
	return ds
}

// Reset empties the registry. Tests that need a clean slate call it and
// re-register what they use.
func Reset() {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.m = make(map[string]Dialect)
}
