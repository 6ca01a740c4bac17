// SPDX-License-Identifier: MIT
//
// Copyright 2026 The nvinit Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package emitter turns a validated selection set into an ordered list
// of virtual configuration files. Generation is pure and referentially
// transparent: no I/O, no shared state, byte-identical output for
// identical input across calls and process restarts.
//
// Dialects resolve through the registry, so callers must link the
// dialect packages they want:
//
//	import (
//		_ "github.com/nvinit/nvinit/dialects/lua"
//		_ "github.com/nvinit/nvinit/dialects/vimscript"
//	)
package emitter

import (
	"fmt"

	"github.com/nvinit/nvinit/catalog"
	"github.com/nvinit/nvinit/dialect"
	"github.com/nvinit/nvinit/internal/emit"
	"github.com/nvinit/nvinit/model"
)

// Dialect names the Legacy flag maps onto.
const (
	NativeDialect = "lua"
	LegacyDialect = "vim"
)

// DialectError reports a dialect that is not in the registry, which
// means the caller did not link its package.
type DialectError struct {
	Name string
}

// Error implements the error interface.
func (e *DialectError) Error() string {
	return fmt.Sprintf("dialect %q is not registered", e.Name)
}

// Generate produces the output file set for sel against the catalog.
// Any encoding failure aborts the whole invocation; no partial file set
// is returned.
func Generate(c *catalog.Catalog, sel model.Selections, layout Layout) ([]dialect.File, error) {
	name := NativeDialect
	if sel.Legacy {
		name = LegacyDialect
	}
	d, ok := dialect.Get(name)
	if !ok {
		return nil, &DialectError{Name: name}
	}

	options, err := emit.Options(d, c, sel.Options)
	if err != nil {
		return nil, err
	}

	blocks := Blocks{
		Header:   emit.Header(d),
		Options:  options,
		Keymaps:  emit.Keymaps(d, sel.Keymaps),
		Autocmds: emit.Autocmds(d, sel.Autocmds),
	}
	return Compose(d, blocks, layout)
}
