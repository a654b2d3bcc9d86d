/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package grammar_test

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"bennypowers.dev/bem/grammar"
)

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"bare block", "block"},
		{"single letter", "a"},
		{"dashed name", "a-b-c"},
		{"digits after first letter", "h2-title"},
		{"block with one modifier", "block(mod)"},
		{"block with modifiers", "block(one|two|three)"},
		{"block and element", "block\nelement"},
		{"element with modifiers", "media-player(dark)\nbutton(fast-forward|rewind)\ntimeline"},
		{"trailing newline", "block\n"},
		{"trailing blank lines", "block\nelement\n\n\n"},
		{"crlf separators", "block\r\nelement\r\n"},
		{"bare cr separator", "block\relement"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := grammar.Parse(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tree.Input != tt.input {
				t.Errorf("expected tree input %q, got %q", tt.input, tree.Input)
			}
			if tree.Root == nil {
				t.Fatal("expected root node, got nil")
			}
			if tree.Root.Kind != grammar.KindDocument {
				t.Errorf("expected document root, got %v", tree.Root.Kind)
			}
			if tree.Root.Start != 0 || tree.Root.End != len(tt.input) {
				t.Errorf("expected root span [0,%d), got [%d,%d)",
					len(tt.input), tree.Root.Start, tree.Root.End)
			}
		})
	}
}

func TestParse_SyntaxErrors(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantOffset int
		wantLine   int
		wantColumn int
		wantFound  string
	}{
		{"empty input", "", 0, 1, 1, "end of input"},
		{"uppercase start", "Block", 0, 1, 1, `'B'`},
		{"empty modifier list", "block()", 6, 1, 7, `')'`},
		{"double dash", "a--b", 2, 1, 3, `'-'`},
		{"trailing dash", "a-", 2, 1, 3, "end of input"},
		{"leading dash", "-a", 0, 1, 1, `'-'`},
		{"uppercase inside name", "aB", 1, 1, 2, `'B'`},
		{"digit start", "1a", 0, 1, 1, `'1'`},
		{"non-ascii", "café", 3, 1, 4, `'é'`},
		{"space after block", "block extra", 5, 1, 6, `' '`},
		{"trailing garbage", "block\nelement\ntrailing garbage !!", 22, 3, 9, `' '`},
		{"unclosed modifiers", "block(a", 7, 1, 8, "end of input"},
		{"modifiers without name", "block(", 6, 1, 7, "end of input"},
		{"trailing pipe", "block(a|)", 8, 1, 9, `')'`},
		{"consecutive pipes", "block(a||b)", 8, 1, 9, `'|'`},
		{"blank line before element", "a\n\nb", 3, 3, 1, `'b'`},
		{"modifier double dash", "block(a--b)", 8, 1, 9, `'-'`},
		{"uppercase element", "block\nElement", 6, 2, 1, `'E'`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := grammar.Parse(tt.input)
			if tree != nil {
				t.Fatal("expected nil tree alongside error")
			}
			var syntaxErr *grammar.SyntaxError
			if !errors.As(err, &syntaxErr) {
				t.Fatalf("expected *SyntaxError, got %T: %v", err, err)
			}
			if syntaxErr.Offset != tt.wantOffset {
				t.Errorf("expected offset %d, got %d", tt.wantOffset, syntaxErr.Offset)
			}
			if syntaxErr.Line != tt.wantLine {
				t.Errorf("expected line %d, got %d", tt.wantLine, syntaxErr.Line)
			}
			if syntaxErr.Column != tt.wantColumn {
				t.Errorf("expected column %d, got %d", tt.wantColumn, syntaxErr.Column)
			}
			if syntaxErr.Found != tt.wantFound {
				t.Errorf("expected found %s, got %s", tt.wantFound, syntaxErr.Found)
			}
			if len(syntaxErr.Expected) == 0 {
				t.Error("expected at least one alternative")
			}
		})
	}
}

func TestParse_ExpectedAlternatives(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"uppercase start", "Block", []string{"lowercase letter to start a name"}},
		{"empty modifier list", "block()", []string{"lowercase letter to start a name"}},
		{"double dash", "a--b", []string{"lowercase letter", "digit"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := grammar.Parse(tt.input)
			var syntaxErr *grammar.SyntaxError
			if !errors.As(err, &syntaxErr) {
				t.Fatalf("expected *SyntaxError, got %T: %v", err, err)
			}
			if len(syntaxErr.Expected) != len(tt.want) {
				t.Fatalf("expected %d alternatives %v, got %v",
					len(tt.want), tt.want, syntaxErr.Expected)
			}
			for i, want := range tt.want {
				if syntaxErr.Expected[i] != want {
					t.Errorf("alternative %d: expected %q, got %q", i, want, syntaxErr.Expected[i])
				}
			}
		})
	}
}

func TestParse_TreeShape(t *testing.T) {
	input := "media-player(dark)\nbutton(fast-forward|rewind)\ntimeline"
	tree, err := grammar.Parse(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	root := tree.Root
	if len(root.Children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(root.Children))
	}

	wantKinds := []grammar.Kind{grammar.KindBlock, grammar.KindElement, grammar.KindElement}
	for i, want := range wantKinds {
		if root.Children[i].Kind != want {
			t.Errorf("child %d: expected kind %v, got %v", i, want, root.Children[i].Kind)
		}
	}

	block := root.Children[0]
	if len(block.Children) != 2 {
		t.Fatalf("expected block name and modifiers, got %d children", len(block.Children))
	}
	if got := tree.Text(block.Children[0]); got != "media-player" {
		t.Errorf("expected block name %q, got %q", "media-player", got)
	}
	mods := block.Children[1]
	if mods.Kind != grammar.KindModifiers {
		t.Fatalf("expected modifiers node, got %v", mods.Kind)
	}
	if got := tree.Text(mods); got != "(dark)" {
		t.Errorf("expected modifiers span %q, got %q", "(dark)", got)
	}
	if len(mods.Children) != 1 || tree.Text(mods.Children[0]) != "dark" {
		t.Errorf("expected single modifier %q, got %v", "dark", mods.Children)
	}

	button := root.Children[1]
	if got := tree.Text(button.Children[0]); got != "button" {
		t.Errorf("expected element name %q, got %q", "button", got)
	}
	buttonMods := button.Children[1]
	if len(buttonMods.Children) != 2 {
		t.Fatalf("expected 2 modifiers, got %d", len(buttonMods.Children))
	}
	if got := tree.Text(buttonMods.Children[0]); got != "fast-forward" {
		t.Errorf("expected first modifier %q, got %q", "fast-forward", got)
	}
	if got := tree.Text(buttonMods.Children[1]); got != "rewind" {
		t.Errorf("expected second modifier %q, got %q", "rewind", got)
	}

	timeline := root.Children[2]
	if len(timeline.Children) != 1 {
		t.Fatalf("expected bare element, got %d children", len(timeline.Children))
	}
	if got := tree.Text(timeline.Children[0]); got != "timeline" {
		t.Errorf("expected element name %q, got %q", "timeline", got)
	}
}

func TestParse_ModifierOrderAndDuplicates(t *testing.T) {
	tree, err := grammar.Parse("block(b|a|b)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mods := tree.Root.Children[0].Children[1]
	want := []string{"b", "a", "b"}
	if len(mods.Children) != len(want) {
		t.Fatalf("expected %d modifiers, got %d", len(want), len(mods.Children))
	}
	for i, w := range want {
		if got := tree.Text(mods.Children[i]); got != w {
			t.Errorf("modifier %d: expected %q, got %q", i, w, got)
		}
	}
}

func TestIsName(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"a", true},
		{"block", true},
		{"a-b-c", true},
		{"a1", true},
		{"a-1", true},
		{"fast-forward", true},
		{"", false},
		{"A", false},
		{"aB", false},
		{"1a", false},
		{"-a", false},
		{"a-", false},
		{"a--b", false},
		{"a b", false},
		{"café", false},
		{"a_b", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := grammar.IsName(tt.input); got != tt.want {
				t.Errorf("IsName(%q): expected %v, got %v", tt.input, tt.want, got)
			}
		})
	}
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind grammar.Kind
		want string
	}{
		{grammar.KindDocument, "document"},
		{grammar.KindBlock, "block"},
		{grammar.KindElement, "element"},
		{grammar.KindModifiers, "modifiers"},
		{grammar.KindName, "name"},
		{grammar.Kind(255), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}

// Parse keeps no state between calls, so concurrent parses of
// independent inputs need no coordination.
func TestParse_Concurrent(t *testing.T) {
	valid := "media-player(dark)\nbutton(fast-forward|rewind)\ntimeline"
	invalid := "a--b"

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if _, err := grammar.Parse(valid); err != nil {
					t.Errorf("unexpected error: %v", err)
					return
				}
				_, err := grammar.Parse(invalid)
				var syntaxErr *grammar.SyntaxError
				if !errors.As(err, &syntaxErr) || syntaxErr.Offset != 2 {
					t.Errorf("expected syntax error at offset 2, got %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestParse_LongDocument(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("root(one|two)")
	for i := 0; i < 200; i++ {
		sb.WriteString("\nitem(on|off)")
	}
	tree, err := grammar.Parse(sb.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(tree.Root.Children); got != 201 {
		t.Errorf("expected 201 children, got %d", got)
	}
}
