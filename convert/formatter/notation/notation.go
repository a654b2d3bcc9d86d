/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package notation provides canonical BEM notation re-rendering.
package notation

import (
	"bennypowers.dev/bem/block"
	"bennypowers.dev/bem/convert/formatter"
)

// Formatter re-renders a block as canonical notation text.
type Formatter struct{}

// New creates a new notation formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format renders the block line followed by one line per element, with
// a trailing newline. Parsing the output reproduces an equal block.
func (f *Formatter) Format(b *block.Block, opts formatter.Options) ([]byte, error) {
	if b == nil {
		return nil, block.ErrNilBlock
	}
	return []byte(b.String() + "\n"), nil
}
