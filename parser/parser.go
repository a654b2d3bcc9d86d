/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parser provides BEM notation parsing: grammar matching
// followed by reduction of the parse tree into the domain model.
package parser

import (
	"fmt"

	"bennypowers.dev/bem/block"
	"bennypowers.dev/bem/fs"
	"bennypowers.dev/bem/grammar"
)

// Parse parses BEM notation into a Block. The input must match the
// grammar in its entirety; no implicit trimming is performed.
//
// On failure the error is either a *grammar.SyntaxError describing
// where the input stopped matching, or an *InvariantError if the
// reducer met a tree shape the grammar can never produce. No partial
// result accompanies an error.
func Parse(input string) (*block.Block, error) {
	tree, err := grammar.Parse(input)
	if err != nil {
		return nil, err
	}
	return Reduce(tree)
}

// ParseFile reads a file and parses its contents as BEM notation.
// Parse errors are wrapped with the file path.
func ParseFile(filesystem fs.FileSystem, path string) (*block.Block, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	b, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return b, nil
}
