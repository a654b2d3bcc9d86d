/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/bem/block"
	"bennypowers.dev/bem/grammar"
	"bennypowers.dev/bem/parser"
	"bennypowers.dev/bem/testutil"
)

func TestParse_FullDocument(t *testing.T) {
	got, err := parser.Parse("media-player(dark)\nbutton(fast-forward|rewind)\ntimeline")
	require.NoError(t, err)

	want := &block.Block{
		Name:      "media-player",
		Modifiers: []string{"dark"},
		Elements: []block.Element{
			{Name: "button", Modifiers: []string{"fast-forward", "rewind"}},
			{Name: "timeline", Modifiers: []string{}},
		},
	}
	require.Equal(t, want, got)
}

func TestParse_BareBlock(t *testing.T) {
	got, err := parser.Parse("a-b-c")
	require.NoError(t, err)
	require.Equal(t, &block.Block{
		Name:      "a-b-c",
		Modifiers: []string{},
		Elements:  []block.Element{},
	}, got)
}

func TestParse_SequencesNeverNil(t *testing.T) {
	for _, input := range testutil.ValidDocuments() {
		b, err := parser.Parse(input)
		require.NoError(t, err, "input %q", input)
		assert.NotNil(t, b.Modifiers, "input %q", input)
		assert.NotNil(t, b.Elements, "input %q", input)
		for i, el := range b.Elements {
			assert.NotNil(t, el.Modifiers, "input %q element %d", input, i)
		}
	}
}

func TestParse_SyntaxErrorOffsets(t *testing.T) {
	for _, tt := range testutil.InvalidDocuments() {
		t.Run(tt.Input, func(t *testing.T) {
			b, err := parser.Parse(tt.Input)
			require.Error(t, err)
			require.Nil(t, b)

			var syntaxErr *grammar.SyntaxError
			require.ErrorAs(t, err, &syntaxErr)
			assert.Equal(t, tt.Offset, syntaxErr.Offset)

			var invariantErr *parser.InvariantError
			assert.False(t, errors.As(err, &invariantErr),
				"syntax failure must never surface as an invariant violation")
		})
	}
}

// Every string the name rule accepts is also a complete document: one
// bare block.
func TestParse_NamesAreDocuments(t *testing.T) {
	for _, name := range testutil.ValidNames() {
		t.Run(name, func(t *testing.T) {
			require.True(t, grammar.IsName(name))

			b, err := parser.Parse(name)
			require.NoError(t, err)
			require.Equal(t, name, b.Name)
			require.Empty(t, b.Modifiers)
			require.Empty(t, b.Elements)
		})
	}
}

func TestParse_InvalidNamesRejected(t *testing.T) {
	for _, tt := range testutil.InvalidNames() {
		t.Run(tt.Input, func(t *testing.T) {
			require.False(t, grammar.IsName(tt.Input))

			_, err := parser.Parse(tt.Input)
			var syntaxErr *grammar.SyntaxError
			require.ErrorAs(t, err, &syntaxErr)
			assert.Equal(t, tt.Offset, syntaxErr.Offset)
		})
	}
}

// No input in the valid corpus may ever reach the reducer with a shape
// it rejects: invariant violations are defects, not parse outcomes.
func TestParse_ValidCorpusNeverViolatesInvariants(t *testing.T) {
	inputs := testutil.ValidDocuments()
	inputs = append(inputs, testutil.ValidNames()...)

	for _, input := range inputs {
		b, err := parser.Parse(input)
		require.NoError(t, err, "input %q", input)
		require.NoError(t, b.Validate(), "input %q", input)
	}
}

func TestParse_OrderingPreserved(t *testing.T) {
	b, err := parser.Parse("z(c|a|b|a)\ny\nx(two|one)")
	require.NoError(t, err)

	assert.Equal(t, []string{"c", "a", "b", "a"}, b.Modifiers)
	require.Len(t, b.Elements, 2)
	assert.Equal(t, "y", b.Elements[0].Name)
	assert.Equal(t, "x", b.Elements[1].Name)
	assert.Equal(t, []string{"two", "one"}, b.Elements[1].Modifiers)
}

func TestParse_RenderRoundTrip(t *testing.T) {
	for _, input := range testutil.ValidDocuments() {
		first, err := parser.Parse(input)
		require.NoError(t, err, "input %q", input)

		second, err := parser.Parse(first.String())
		require.NoError(t, err, "rendered %q", first.String())
		require.True(t, first.Equal(second), "input %q", input)
	}
}

func TestParse_JSONRoundTrip(t *testing.T) {
	for _, input := range testutil.ValidDocuments() {
		first, err := parser.Parse(input)
		require.NoError(t, err, "input %q", input)

		encoded, err := block.ToJSON(first)
		require.NoError(t, err)

		decoded, err := block.FromJSON(encoded)
		require.NoError(t, err, "encoded %q", encoded)
		require.True(t, first.Equal(decoded), "input %q", input)
	}
}

func TestParseFile(t *testing.T) {
	mfs := testutil.NewFS(t, map[string]string{
		"/project/media.bem": "media-player(dark)\nbutton(fast-forward|rewind)\ntimeline",
	})

	b, err := parser.ParseFile(mfs, "/project/media.bem")
	require.NoError(t, err)
	assert.Equal(t, "media-player", b.Name)
	assert.Len(t, b.Elements, 2)
}

func TestParseFile_NotFound(t *testing.T) {
	mfs := testutil.NewFS(t, nil)

	_, err := parser.ParseFile(mfs, "/project/missing.bem")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestParseFile_SyntaxErrorKeepsPathAndType(t *testing.T) {
	mfs := testutil.NewFS(t, map[string]string{
		"/project/bad.bem": "Block",
	})

	_, err := parser.ParseFile(mfs, "/project/bad.bem")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "/project/bad.bem: "))

	var syntaxErr *grammar.SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.Equal(t, 0, syntaxErr.Offset)
}
