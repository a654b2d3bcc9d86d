/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package jsonout provides canonical JSON formatting for blocks.
package jsonout

import (
	"encoding/json"

	"bennypowers.dev/bem/block"
	"bennypowers.dev/bem/convert/formatter"
)

// Formatter outputs the canonical JSON interchange form.
type Formatter struct{}

// New creates a new JSON formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format converts a block to JSON. The compact form is byte-identical
// to block.ToJSON; Indent selects a two-space pretty form of the same
// shape.
func (f *Formatter) Format(b *block.Block, opts formatter.Options) ([]byte, error) {
	if b == nil {
		return nil, block.ErrNilBlock
	}

	if opts.Indent {
		return json.MarshalIndent(b, "", "  ")
	}

	out, err := block.ToJSON(b)
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}
