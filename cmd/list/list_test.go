/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package list

import (
	"bytes"
	"os"
	"testing"

	"bennypowers.dev/bem/cmd/render"
)

func captureStdout(t *testing.T, fn func() error) string {
	t.Helper()

	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	fnErr := fn()

	w.Close()
	var buf bytes.Buffer
	buf.ReadFrom(r)
	os.Stdout = old

	if fnErr != nil {
		t.Fatalf("unexpected error: %v", fnErr)
	}
	return buf.String()
}

func TestOutputJSON(t *testing.T) {
	rows := []render.Row{
		{Kind: "block", Name: "media-player", Modifiers: []string{"dark"}},
		{Kind: "element", Name: "timeline"},
	}

	actual := captureStdout(t, func() error { return outputJSON(rows) })

	expected := `[
  {
    "kind": "block",
    "name": "media-player",
    "modifiers": [
      "dark"
    ]
  },
  {
    "kind": "element",
    "name": "timeline",
    "modifiers": []
  }
]
`

	if actual != expected {
		t.Errorf("json output mismatch.\n\nExpected:\n%s\n\nActual:\n%s", expected, actual)
	}
}

func TestOutputJSON_NoRows(t *testing.T) {
	actual := captureStdout(t, func() error { return outputJSON(nil) })

	if actual != "[]\n" {
		t.Errorf("expected empty array, got %q", actual)
	}
}
