/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parse provides the parse command for bem.
package parse

import (
	"fmt"

	"github.com/spf13/cobra"

	"bennypowers.dev/bem/block"
	"bennypowers.dev/bem/fs"
	"bennypowers.dev/bem/parser"
)

// Cmd is the parse cobra command.
var Cmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a BEM notation file to JSON",
	Long: `Parse a BEM notation file and print its canonical JSON form to stdout.

The JSON form always carries the name, modifiers, and elements fields;
empty modifier and element lists appear as [], never null. Syntax errors
report the file, line, and column of the first unmatchable input.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func run(cmd *cobra.Command, args []string) error {
	filesystem := fs.NewOSFileSystem()

	b, err := parser.ParseFile(filesystem, args[0])
	if err != nil {
		return err
	}

	out, err := block.ToJSON(b)
	if err != nil {
		return err
	}

	fmt.Println(out)
	return nil
}
