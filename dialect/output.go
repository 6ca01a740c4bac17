// SPDX-License-Identifier: MIT
//
// Copyright 2026 The nvinit Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package dialect

// File is one virtual output file. The emitter returns files in a fixed
// order (root first, then section modules) so downstream consumers stay
// deterministic.
type File struct {
	// Path is the target-relative path, e.g. "lua/nvinit/options.lua".
	Path string

	// Content is the full file text, terminated by a single newline.
	Content string
}
