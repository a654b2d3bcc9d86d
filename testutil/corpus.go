/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package testutil provides testing utilities for bem: an in-memory
// filesystem helper and shared corpora of accepted and rejected
// notation.
package testutil

import (
	"testing"

	"bennypowers.dev/bem/internal/mapfs"
)

// NewFS returns an in-memory filesystem preloaded with the given files.
func NewFS(t *testing.T, files map[string]string) *mapfs.MapFileSystem {
	t.Helper()

	mfs := mapfs.New()
	for path, content := range files {
		mfs.AddFile(path, content, 0644)
	}
	return mfs
}

// Invalid pairs rejected input with the byte offset of its syntax
// error.
type Invalid struct {
	Input  string
	Offset int
}

// ValidNames lists identifiers the name rule accepts. Each also parses
// as a complete bare-block document.
func ValidNames() []string {
	return []string{
		"a",
		"z",
		"a1",
		"block",
		"a-b",
		"a-b-c",
		"fast-forward",
		"h2",
		"grid-12",
		"x0-y1",
	}
}

// InvalidNames lists strings the name rule rejects, with the offset at
// which parsing each as a document fails.
func InvalidNames() []Invalid {
	return []Invalid{
		{"", 0},
		{"A", 0},
		{"Block", 0},
		{"1a", 0},
		{"-a", 0},
		{"a-", 2},
		{"a--b", 2},
		{"aB", 1},
		{"a_b", 1},
		{"a b", 1},
		{"café", 3},
	}
}

// ValidDocuments lists complete documents the grammar accepts.
func ValidDocuments() []string {
	return []string{
		"block",
		"block(mod)",
		"block(one|two)",
		"block\nelement",
		"media-player(dark)\nbutton(fast-forward|rewind)\ntimeline",
		"card\nheader(sticky)\nbody\nfooter(dark|compact)",
		"nav\nitem(active)\nitem(active)",
		"block\n",
		"block\nelement\n\n",
		"block\r\nelement\r\n",
	}
}

// InvalidDocuments lists rejected documents with their syntax error
// offsets.
func InvalidDocuments() []Invalid {
	return []Invalid{
		{"", 0},
		{"Block", 0},
		{"block()", 6},
		{"block(", 6},
		{"block(a|)", 8},
		{"block(a||b)", 8},
		{"block extra", 5},
		{"block\nelement\ntrailing garbage !!", 22},
		{"a--b", 2},
		{"a\n\nb", 3},
	}
}
