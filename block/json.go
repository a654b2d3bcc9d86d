/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package block

import (
	"encoding/json"
	"fmt"
)

// MarshalJSON encodes the block with every sequence present: empty
// modifier and element lists serialize as [], never null and never
// omitted.
func (b Block) MarshalJSON() ([]byte, error) {
	type blockJSON struct {
		Name      string    `json:"name"`
		Modifiers []string  `json:"modifiers"`
		Elements  []Element `json:"elements"`
	}
	v := blockJSON{Name: b.Name, Modifiers: b.Modifiers, Elements: b.Elements}
	if v.Modifiers == nil {
		v.Modifiers = []string{}
	}
	if v.Elements == nil {
		v.Elements = []Element{}
	}
	return json.Marshal(v)
}

// MarshalJSON encodes the element with a present, possibly empty,
// modifier list.
func (e Element) MarshalJSON() ([]byte, error) {
	type elementJSON struct {
		Name      string   `json:"name"`
		Modifiers []string `json:"modifiers"`
	}
	v := elementJSON{Name: e.Name, Modifiers: e.Modifiers}
	if v.Modifiers == nil {
		v.Modifiers = []string{}
	}
	return json.Marshal(v)
}

// ToJSON serializes the block to its canonical compact JSON form:
//
//	{"name":"block","modifiers":[],"elements":[]}
func ToJSON(b *Block) (string, error) {
	if b == nil {
		return "", ErrNilBlock
	}
	data, err := json.Marshal(b)
	if err != nil {
		return "", fmt.Errorf("encoding block: %w", err)
	}
	return string(data), nil
}

// FromJSON decodes a block from its JSON form. Every decoded name is
// checked against the identifier grammar and absent sequences are
// normalized to empty ones, so the result satisfies the same
// invariants as a parsed block.
func FromJSON(input string) (*Block, error) {
	var b Block
	if err := json.Unmarshal([]byte(input), &b); err != nil {
		return nil, fmt.Errorf("decoding block: %w", err)
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b.Clone(), nil
}
