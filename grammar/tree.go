/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package grammar

// Kind identifies which grammar rule produced a node. The set is closed:
// consumers switch over it exhaustively and treat any other value as a
// defect.
type Kind uint8

const (
	// KindDocument is the root rule: one block, then element lines.
	KindDocument Kind = iota

	// KindBlock is the first line of a document.
	KindBlock

	// KindElement is one non-blank line after the block line.
	KindElement

	// KindModifiers is a parenthesized, pipe-separated name list.
	KindModifiers

	// KindName is a single validated identifier.
	KindName
)

// String returns the rule name as it appears in the grammar.
func (k Kind) String() string {
	switch k {
	case KindDocument:
		return "document"
	case KindBlock:
		return "block"
	case KindElement:
		return "element"
	case KindModifiers:
		return "modifiers"
	case KindName:
		return "name"
	}
	return "unknown"
}

// Node records one rule match: the rule, the matched byte span, and the
// sub-matches in input order. Nodes are immutable after a parse returns.
type Node struct {
	// Kind is the rule that matched.
	Kind Kind

	// Start is the byte offset of the first matched byte.
	Start int

	// End is the byte offset one past the last matched byte.
	End int

	// Children are the nested rule matches, in input order.
	Children []*Node
}

// Tree is a successful parse: the input that was matched and the root
// document node. The tree borrows spans of Input; it allocates no copies
// of the matched text.
type Tree struct {
	// Input is the exact text the tree was parsed from.
	Input string

	// Root is the document node covering the whole input.
	Root *Node
}

// Text returns the substring of the input that n matched.
func (t *Tree) Text(n *Node) string {
	return t.Input[n.Start:n.End]
}
