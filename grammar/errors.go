/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package grammar

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// SyntaxError reports the first point at which no grammar rule could
// continue matching. Offset is a byte offset into the input; Line and
// Column are 1-based, with Column counted in runes.
type SyntaxError struct {
	// Offset is the byte offset of the failure.
	Offset int

	// Line is the 1-based line of the failure.
	Line int

	// Column is the 1-based rune column of the failure.
	Column int

	// Expected lists the alternatives the grammar would have accepted
	// at the failure point, in attempt order.
	Expected []string

	// Found describes what the input held at the failure point.
	Found string
}

// Error formats the failure for direct display, e.g.
//
//	syntax error at line 1, column 7: expected lowercase letter to start a name, found ')'
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at line %d, column %d: expected %s, found %s",
		e.Line, e.Column, joinAlternatives(e.Expected), e.Found)
}

// joinAlternatives renders an expectation list as prose:
// "a", "a or b", "a, b, or c".
func joinAlternatives(alts []string) string {
	switch len(alts) {
	case 0:
		return "nothing"
	case 1:
		return alts[0]
	case 2:
		return alts[0] + " or " + alts[1]
	}
	return strings.Join(alts[:len(alts)-1], ", ") + ", or " + alts[len(alts)-1]
}

// lineCol derives the 1-based line and rune column of a byte offset.
// All of "\n", "\r\n", and "\r" terminate a line.
func lineCol(input string, offset int) (line, col int) {
	if offset > len(input) {
		offset = len(input)
	}
	line = 1
	lineStart := 0
	for i := 0; i < offset; i++ {
		c := input[i]
		if c == '\n' || (c == '\r' && (i+1 >= len(input) || input[i+1] != '\n')) {
			line++
			lineStart = i + 1
		}
	}
	return line, utf8.RuneCountInString(input[lineStart:offset]) + 1
}

// describeFound names the input content at a byte offset for error
// messages.
func describeFound(input string, offset int) string {
	if offset >= len(input) {
		return "end of input"
	}
	r, _ := utf8.DecodeRuneInString(input[offset:])
	if r == '\n' || r == '\r' {
		return "newline"
	}
	return fmt.Sprintf("%q", r)
}
