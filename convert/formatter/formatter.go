/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package formatter provides the interface for block output formatters.
package formatter

import "bennypowers.dev/bem/block"

// Formatter defines the interface for output formatters.
type Formatter interface {
	// Format converts a block to the target format.
	Format(b *block.Block, opts Options) ([]byte, error)
}

// Options configures formatter behavior.
type Options struct {
	// Indent enables pretty-printed output where the format
	// distinguishes it. The canonical interchange form is compact.
	Indent bool
}
