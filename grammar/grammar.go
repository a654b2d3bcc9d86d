/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package grammar defines and executes the BEM notation grammar.
//
// The notation describes one block, its modifiers, and its elements as
// plain text: the block on the first line, each element on its own line
// below it, modifiers grouped in parentheses and separated by pipes.
//
//	media-player(dark)
//	button(fast-forward|rewind)
//	timeline
//
// The grammar, PEG-style with ordered choice:
//
//	document  := block (NEWLINE element)* NEWLINE* EOI
//	block     := name modifiers?
//	element   := name modifiers?
//	modifiers := "(" name ("|" name)* ")"
//	name      := LOWER (LOWER | DIGIT | ("-" (LOWER|DIGIT)))*
//	NEWLINE   := "\r\n" | "\n" | "\r"
//
// A name begins with a lowercase ASCII letter and never begins or ends
// with a dash, and dashes never repeat. The match is anchored at both
// ends: anything short of full consumption is a syntax error, reported
// at the furthest byte the grammar reached with the set of alternatives
// it would have accepted there.
//
// Each rule is a pure function from a cursor position to a node and a
// new cursor position. The rule set is fixed at build time and all parse
// state lives in the call, so Parse is safe for concurrent use.
package grammar

// Expectation labels, phrased for the Expected list of a SyntaxError.
const (
	expectNameStart = "lowercase letter to start a name"
	expectLower     = "lowercase letter"
	expectDigit     = "digit"
	expectDash      = `"-"`
	expectLParen    = `"("`
	expectPipe      = `"|"`
	expectRParen    = `")"`
	expectNewline   = "newline"
	expectEOI       = "end of input"
)

// state carries the input and the furthest-failure bookkeeping for one
// parse call. Rules never mutate anything else.
type state struct {
	input    string
	failPos  int
	expected []string
}

// fail records an alternative the grammar rejected at pos. Only the
// furthest position is kept; ties merge their alternatives in attempt
// order.
func (s *state) fail(pos int, want string) {
	if pos < s.failPos {
		return
	}
	if pos > s.failPos {
		s.failPos = pos
		s.expected = s.expected[:0]
	}
	for _, e := range s.expected {
		if e == want {
			return
		}
	}
	s.expected = append(s.expected, want)
}

// syntaxError freezes the recorded furthest failure into a SyntaxError.
func (s *state) syntaxError() *SyntaxError {
	line, col := lineCol(s.input, s.failPos)
	expected := make([]string, len(s.expected))
	copy(expected, s.expected)
	return &SyntaxError{
		Offset:   s.failPos,
		Line:     line,
		Column:   col,
		Expected: expected,
		Found:    describeFound(s.input, s.failPos),
	}
}

// Parse matches input against the document rule. On success it returns
// the concrete parse tree; otherwise a *SyntaxError locating the first
// unmatchable point. No partial tree is ever returned.
func Parse(input string) (*Tree, error) {
	s := &state{input: input}
	root, _, ok := parseDocument(s, 0)
	if !ok {
		return nil, s.syntaxError()
	}
	return &Tree{Input: input, Root: root}, nil
}

// IsName reports whether str matches the name rule in its entirety.
// It is the single source of truth for the identifier shape shared by
// blocks, elements, and modifiers.
func IsName(str string) bool {
	s := &state{input: str}
	_, end, ok := parseName(s, 0)
	return ok && end == len(str)
}

// parseDocument: block (NEWLINE element)* NEWLINE* EOI.
func parseDocument(s *state, pos int) (*Node, int, bool) {
	start := pos
	blk, pos, ok := parseBlock(s, pos)
	if !ok {
		return nil, start, false
	}
	children := []*Node{blk}
	for {
		p, ok := matchNewline(s, pos)
		if !ok {
			break
		}
		el, p, ok := parseElement(s, p)
		if !ok {
			break
		}
		children = append(children, el)
		pos = p
	}
	for {
		p, ok := matchNewline(s, pos)
		if !ok {
			break
		}
		pos = p
	}
	if pos < len(s.input) {
		s.fail(pos, expectEOI)
		return nil, start, false
	}
	return &Node{Kind: KindDocument, Start: start, End: pos, Children: children}, pos, true
}

// parseBlock: name modifiers?.
func parseBlock(s *state, pos int) (*Node, int, bool) {
	return parseEntity(s, pos, KindBlock)
}

// parseElement: name modifiers?.
func parseElement(s *state, pos int) (*Node, int, bool) {
	return parseEntity(s, pos, KindElement)
}

// parseEntity matches the shared block/element shape under the given
// kind.
func parseEntity(s *state, pos int, kind Kind) (*Node, int, bool) {
	start := pos
	name, pos, ok := parseName(s, pos)
	if !ok {
		return nil, start, false
	}
	children := []*Node{name}
	if mods, p, ok := parseModifiers(s, pos); ok {
		children = append(children, mods)
		pos = p
	}
	return &Node{Kind: kind, Start: start, End: pos, Children: children}, pos, true
}

// parseModifiers: "(" name ("|" name)* ")". The list requires at least
// one name, so "()" fails at the closing parenthesis.
func parseModifiers(s *state, pos int) (*Node, int, bool) {
	start := pos
	pos, ok := matchByte(s, pos, '(', expectLParen)
	if !ok {
		return nil, start, false
	}
	name, pos, ok := parseName(s, pos)
	if !ok {
		return nil, start, false
	}
	children := []*Node{name}
	for {
		p, ok := matchByte(s, pos, '|', expectPipe)
		if !ok {
			break
		}
		n, p, ok := parseName(s, p)
		if !ok {
			break
		}
		children = append(children, n)
		pos = p
	}
	pos, ok = matchByte(s, pos, ')', expectRParen)
	if !ok {
		return nil, start, false
	}
	return &Node{Kind: KindModifiers, Start: start, End: pos, Children: children}, pos, true
}

// parseName: LOWER (LOWER | DIGIT | ("-" (LOWER|DIGIT)))*. A dash only
// matches together with the letter or digit after it, so a trailing or
// doubled dash fails one byte past the dash.
func parseName(s *state, pos int) (*Node, int, bool) {
	start := pos
	c, ok := byteAt(s, pos)
	if !ok || !isLower(c) {
		s.fail(pos, expectNameStart)
		return nil, start, false
	}
	pos++
	for {
		c, ok := byteAt(s, pos)
		if ok && isLower(c) {
			pos++
			continue
		}
		s.fail(pos, expectLower)
		if ok && isDigit(c) {
			pos++
			continue
		}
		s.fail(pos, expectDigit)
		if ok && c == '-' {
			c, ok := byteAt(s, pos+1)
			if ok && isLower(c) {
				pos += 2
				continue
			}
			s.fail(pos+1, expectLower)
			if ok && isDigit(c) {
				pos += 2
				continue
			}
			s.fail(pos+1, expectDigit)
			break
		}
		s.fail(pos, expectDash)
		break
	}
	return &Node{Kind: KindName, Start: start, End: pos}, pos, true
}

// matchNewline: "\r\n" | "\n" | "\r", ordered.
func matchNewline(s *state, pos int) (int, bool) {
	if c, ok := byteAt(s, pos); ok {
		if c == '\r' {
			if c2, ok := byteAt(s, pos+1); ok && c2 == '\n' {
				return pos + 2, true
			}
			return pos + 1, true
		}
		if c == '\n' {
			return pos + 1, true
		}
	}
	s.fail(pos, expectNewline)
	return pos, false
}

// matchByte consumes one literal byte or records want at pos.
func matchByte(s *state, pos int, c byte, want string) (int, bool) {
	if got, ok := byteAt(s, pos); ok && got == c {
		return pos + 1, true
	}
	s.fail(pos, want)
	return pos, false
}

func byteAt(s *state, pos int) (byte, bool) {
	if pos >= len(s.input) {
		return 0, false
	}
	return s.input[pos], true
}

func isLower(c byte) bool { return c >= 'a' && c <= 'z' }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
