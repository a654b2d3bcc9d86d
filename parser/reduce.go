/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"strings"

	"bennypowers.dev/bem/block"
	"bennypowers.dev/bem/grammar"
)

// Reduce folds a concrete parse tree into the domain model, walking it
// in document order. Matched text is copied with strings.Clone, so the
// returned Block holds no references into the parsed input.
//
// Reduce performs no validation of its own: every shape it accepts was
// already enforced by the grammar. Anything else is an *InvariantError.
func Reduce(tree *grammar.Tree) (*block.Block, error) {
	if tree == nil || tree.Root == nil {
		return nil, &InvariantError{Kind: grammar.KindDocument, Reason: "missing tree"}
	}

	root := tree.Root
	if root.Kind != grammar.KindDocument {
		return nil, &InvariantError{Kind: root.Kind, Reason: "expected document at root"}
	}
	if len(root.Children) == 0 {
		return nil, &InvariantError{Kind: root.Kind, Reason: "document has no block"}
	}

	result := &block.Block{
		Modifiers: []string{},
		Elements:  make([]block.Element, 0, len(root.Children)-1),
	}

	for i, child := range root.Children {
		switch child.Kind {
		case grammar.KindBlock:
			if i != 0 {
				return nil, &InvariantError{Kind: child.Kind, Reason: "block after first position"}
			}
			name, modifiers, err := reduceEntity(tree, child)
			if err != nil {
				return nil, err
			}
			result.Name = name
			result.Modifiers = modifiers
		case grammar.KindElement:
			if i == 0 {
				return nil, &InvariantError{Kind: child.Kind, Reason: "element before block"}
			}
			name, modifiers, err := reduceEntity(tree, child)
			if err != nil {
				return nil, err
			}
			result.Elements = append(result.Elements, block.Element{Name: name, Modifiers: modifiers})
		default:
			return nil, &InvariantError{Kind: child.Kind, Reason: "unexpected document child"}
		}
	}

	return result, nil
}

// reduceEntity folds a block or element node: one name child, then an
// optional modifiers child.
func reduceEntity(tree *grammar.Tree, node *grammar.Node) (string, []string, error) {
	if len(node.Children) == 0 {
		return "", nil, &InvariantError{Kind: node.Kind, Reason: "missing name"}
	}

	var name string
	modifiers := []string{}

	for i, child := range node.Children {
		switch child.Kind {
		case grammar.KindName:
			if i != 0 {
				return "", nil, &InvariantError{Kind: child.Kind, Reason: "name after first position"}
			}
			name = strings.Clone(tree.Text(child))
		case grammar.KindModifiers:
			if i != 1 {
				return "", nil, &InvariantError{Kind: child.Kind, Reason: "modifiers before name"}
			}
			m, err := reduceModifiers(tree, child)
			if err != nil {
				return "", nil, err
			}
			modifiers = m
		default:
			return "", nil, &InvariantError{Kind: child.Kind, Reason: "unexpected entity child"}
		}
	}

	if name == "" {
		return "", nil, &InvariantError{Kind: node.Kind, Reason: "missing name"}
	}

	return name, modifiers, nil
}

// reduceModifiers folds a modifiers node into its name list, in the
// order written. The grammar guarantees at least one name.
func reduceModifiers(tree *grammar.Tree, node *grammar.Node) ([]string, error) {
	if len(node.Children) == 0 {
		return nil, &InvariantError{Kind: node.Kind, Reason: "empty modifier list"}
	}

	modifiers := make([]string, 0, len(node.Children))
	for _, child := range node.Children {
		if child.Kind != grammar.KindName {
			return nil, &InvariantError{Kind: child.Kind, Reason: "expected name in modifier list"}
		}
		modifiers = append(modifiers, strings.Clone(tree.Text(child)))
	}

	return modifiers, nil
}
