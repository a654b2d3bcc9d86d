/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package yamlout provides YAML formatting for blocks.
package yamlout

import (
	"bytes"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/bem/block"
	"bennypowers.dev/bem/convert/formatter"
)

// Formatter outputs the interchange shape as YAML.
type Formatter struct{}

// New creates a new YAML formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format converts a block to YAML. Sequences are always present: empty
// modifier and element lists encode as [], never null. YAML has no
// compact/indented split, so Options are not consulted.
func (f *Formatter) Format(b *block.Block, opts formatter.Options) ([]byte, error) {
	if b == nil {
		return nil, block.ErrNilBlock
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(b.Clone()); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
