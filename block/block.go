/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package block provides the BEM domain model: one block owning its
// modifiers and elements, each element owning its modifiers. A parsed
// tree is a read-only fact about one input: nothing is shared between
// trees and nothing is mutated after construction.
package block

import (
	"fmt"
	"slices"
	"strings"

	"bennypowers.dev/bem/grammar"
)

// Block is the single top-level entity of a BEM document.
type Block struct {
	// Name is the block's identifier (e.g., "media-player").
	Name string `json:"name" yaml:"name"`

	// Modifiers are the block's modifier names, in the order written.
	// Duplicates are preserved.
	Modifiers []string `json:"modifiers" yaml:"modifiers"`

	// Elements are the block's elements, in the order their lines
	// appeared.
	Elements []Element `json:"elements" yaml:"elements"`
}

// Element is a named sub-entity declared on its own line beneath the
// block.
type Element struct {
	// Name is the element's identifier (e.g., "button").
	Name string `json:"name" yaml:"name"`

	// Modifiers are the element's modifier names, in the order written.
	Modifiers []string `json:"modifiers" yaml:"modifiers"`
}

// String renders the block in canonical notation: the block line
// followed by one line per element, modifiers parenthesized and
// pipe-separated. Parsing the result reproduces an equal block.
func (b *Block) String() string {
	var sb strings.Builder
	writeEntity(&sb, b.Name, b.Modifiers)
	for _, el := range b.Elements {
		sb.WriteByte('\n')
		writeEntity(&sb, el.Name, el.Modifiers)
	}
	return sb.String()
}

// String renders the element as a single canonical notation line.
func (e Element) String() string {
	var sb strings.Builder
	writeEntity(&sb, e.Name, e.Modifiers)
	return sb.String()
}

func writeEntity(sb *strings.Builder, name string, modifiers []string) {
	sb.WriteString(name)
	if len(modifiers) > 0 {
		sb.WriteByte('(')
		sb.WriteString(strings.Join(modifiers, "|"))
		sb.WriteByte(')')
	}
}

// Equal reports deep structural equality. Nil and empty modifier or
// element sequences compare equal.
func (b *Block) Equal(other *Block) bool {
	if b == nil || other == nil {
		return b == other
	}
	if b.Name != other.Name || !slices.Equal(b.Modifiers, other.Modifiers) {
		return false
	}
	if len(b.Elements) != len(other.Elements) {
		return false
	}
	for i := range b.Elements {
		if !b.Elements[i].Equal(other.Elements[i]) {
			return false
		}
	}
	return true
}

// Equal reports deep structural equality of two elements.
func (e Element) Equal(other Element) bool {
	return e.Name == other.Name && slices.Equal(e.Modifiers, other.Modifiers)
}

// Clone returns an independent deep copy with nil sequences normalized
// to empty ones.
func (b *Block) Clone() *Block {
	if b == nil {
		return nil
	}
	out := &Block{
		Name:      b.Name,
		Modifiers: cloneStrings(b.Modifiers),
		Elements:  make([]Element, len(b.Elements)),
	}
	for i, el := range b.Elements {
		out.Elements[i] = Element{Name: el.Name, Modifiers: cloneStrings(el.Modifiers)}
	}
	return out
}

func cloneStrings(ss []string) []string {
	out := make([]string, len(ss))
	copy(out, ss)
	return out
}

// Validate checks that every name in the tree satisfies the identifier
// grammar. Parsed blocks always pass; hand-constructed or decoded
// blocks may not.
func (b *Block) Validate() error {
	if b == nil {
		return ErrNilBlock
	}
	if err := validateName(b.Name, "block"); err != nil {
		return err
	}
	for i, m := range b.Modifiers {
		if err := validateName(m, fmt.Sprintf("block modifier %d", i)); err != nil {
			return err
		}
	}
	for i, el := range b.Elements {
		if err := validateName(el.Name, fmt.Sprintf("element %d", i)); err != nil {
			return err
		}
		for j, m := range el.Modifiers {
			if err := validateName(m, fmt.Sprintf("element %d modifier %d", i, j)); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateName(name, role string) error {
	if name == "" {
		return fmt.Errorf("%s: %w", role, ErrMissingName)
	}
	if !grammar.IsName(name) {
		return fmt.Errorf("%s: %w: %q", role, ErrInvalidName, name)
	}
	return nil
}
