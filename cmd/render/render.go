/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package render provides shared rendering functions for CLI output.
package render

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/bem/block"
	"bennypowers.dev/bem/grammar"
)

// Row holds computed display values for a single entity.
type Row struct {
	Kind      string   // "block" or "element"
	Name      string   // Entity name as written in the source
	Modifiers []string // Modifier names in source order
}

// ComputeRows transforms a parsed document into display rows.
// The block comes first, then elements in document order.
func ComputeRows(b *block.Block) []Row {
	if b == nil {
		return nil
	}
	rows := make([]Row, 0, 1+len(b.Elements))
	rows = append(rows, Row{Kind: "block", Name: b.Name, Modifiers: b.Modifiers})
	for _, el := range b.Elements {
		rows = append(rows, Row{Kind: "element", Name: el.Name, Modifiers: el.Modifiers})
	}
	return rows
}

// ColumnWidths calculates the max width needed for each column.
func ColumnWidths(rows []Row) (kind, name int) {
	kind, name = 4, 4 // minimums for headers
	for _, r := range rows {
		if len(r.Kind) > kind {
			kind = len(r.Kind)
		}
		if len(r.Name) > name {
			name = len(r.Name)
		}
	}
	return
}

// Table renders rows as a table to stdout.
func Table(rows []Row) error {
	if len(rows) == 0 {
		return nil
	}
	kindW, nameW := ColumnWidths(rows)
	for _, r := range rows {
		fmt.Printf("%-*s  %-*s  %s\n", kindW, r.Kind, nameW, r.Name, joinModifiers(r.Modifiers))
	}
	return nil
}

// Markdown renders rows as markdown tables grouped by kind.
func Markdown(rows []Row) error {
	if len(rows) == 0 {
		return nil
	}

	// Group rows by kind, preserving order of first occurrence
	kindOrder := make([]string, 0)
	byKind := make(map[string][]Row)
	for _, r := range rows {
		if _, exists := byKind[r.Kind]; !exists {
			kindOrder = append(kindOrder, r.Kind)
		}
		byKind[r.Kind] = append(byKind[r.Kind], r)
	}

	first := true
	for _, kind := range kindOrder {
		group := byKind[kind]
		if !first {
			fmt.Println()
		}
		first = false

		fmt.Printf("## %s\n\n", toTitleCase(kind))

		// Calculate column widths for this group
		nameW, modW := 4, 9
		for _, r := range group {
			if len(r.Name) > nameW {
				nameW = len(r.Name)
			}
			if mods := joinModifiers(r.Modifiers); len(mods) > modW {
				modW = len(mods)
			}
		}

		fmt.Printf("| %-*s | %-*s |\n", nameW, "Name", modW, "Modifiers")
		fmt.Printf("|-%s-|-%s-|\n", strings.Repeat("-", nameW), strings.Repeat("-", modW))
		for _, r := range group {
			fmt.Printf("| %-*s | %-*s |\n", nameW, r.Name, modW, joinModifiers(r.Modifiers))
		}
	}
	return nil
}

// Names renders just the entity names, one per line.
func Names(rows []Row) error {
	for _, r := range rows {
		fmt.Println(r.Name)
	}
	return nil
}

// SyntaxHint returns a follow-up note for syntax errors the message alone
// does not explain. A bracket-and-comma modifier form circulates in some
// BEM write-ups; the notation only supports parentheses and pipes.
func SyntaxHint(input string, err error) string {
	var syntaxErr *grammar.SyntaxError
	if !errors.As(err, &syntaxErr) {
		return ""
	}
	if syntaxErr.Offset >= len(input) || input[syntaxErr.Offset] != '[' {
		return ""
	}
	return "hint: modifiers use parentheses and pipes, like button(active|focused)"
}

// joinModifiers renders a modifier list in notation form, or "-" when empty.
func joinModifiers(modifiers []string) string {
	if len(modifiers) == 0 {
		return "-"
	}
	return strings.Join(modifiers, "|")
}

// toTitleCase converts a string to Title Case.
func toTitleCase(s string) string {
	caser := cases.Title(language.English)
	return caser.String(s)
}
