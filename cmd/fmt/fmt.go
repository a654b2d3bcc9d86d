/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package fmt provides the fmt command for bem.
package fmt

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bennypowers.dev/bem/config"
	convertlib "bennypowers.dev/bem/convert"
	"bennypowers.dev/bem/convert/formatter"
	"bennypowers.dev/bem/fs"
	"bennypowers.dev/bem/parser"
)

// Cmd is the fmt cobra command.
var Cmd = &cobra.Command{
	Use:   "fmt [files...]",
	Short: "Format BEM notation files canonically",
	Long: `Format BEM notation files into canonical form.

Canonical form renders one entity per line, modifiers in
parenthesis-and-pipe form, with a trailing newline.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().BoolP("write", "w", false, "Rewrite files in place instead of printing")
	Cmd.Flags().Bool("check", false, "List files whose formatting differs and exit non-zero")
}

func run(cmd *cobra.Command, args []string) error {
	write, _ := cmd.Flags().GetBool("write")
	check, _ := cmd.Flags().GetBool("check")

	if write && check {
		return fmt.Errorf("--write and --check are mutually exclusive")
	}

	filesystem := fs.NewOSFileSystem()

	// Load config from .config/bem.{yaml,json}
	cfg := config.LoadOrDefault(filesystem, ".")

	// Use config files if no args provided
	files := args
	if len(files) == 0 {
		expanded, err := cfg.ExpandFiles(filesystem, ".")
		if err != nil {
			return fmt.Errorf("error expanding config files: %w", err)
		}
		files = expanded
	}

	if len(files) == 0 {
		return fmt.Errorf("no files specified and no files found in config")
	}

	var failures, diffs int

	for _, file := range files {
		data, err := filesystem.ReadFile(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", file, err)
			failures++
			continue
		}

		b, err := parser.Parse(string(data))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing %s: %v\n", file, err)
			failures++
			continue
		}

		formatted, err := convertlib.FormatBlock(b, convertlib.FormatBEM, formatter.Options{})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error formatting %s: %v\n", file, err)
			failures++
			continue
		}

		switch {
		case check:
			if string(data) != string(formatted) {
				fmt.Println(file)
				diffs++
			}
		case write:
			if string(data) == string(formatted) {
				continue
			}
			if err := filesystem.WriteFile(file, formatted, 0644); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", file, err)
				failures++
			}
		default:
			fmt.Print(string(formatted))
		}
	}

	if failures > 0 {
		return fmt.Errorf("failed to format %d file(s)", failures)
	}
	if diffs > 0 {
		return fmt.Errorf("%d file(s) not formatted", diffs)
	}
	return nil
}
