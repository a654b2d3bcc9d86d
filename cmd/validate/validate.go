/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for bem.
package validate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bennypowers.dev/bem/cmd/render"
	"bennypowers.dev/bem/config"
	"bennypowers.dev/bem/fs"
	"bennypowers.dev/bem/parser"
)

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate BEM notation files",
	Long:  `Validate BEM notation files for syntactic correctness.`,
	Args:  cobra.ArbitraryArgs,
	RunE:  run,
}

func init() {
	Cmd.Flags().Bool("quiet", false, "Only output errors")
}

func run(cmd *cobra.Command, args []string) error {
	quiet, _ := cmd.Flags().GetBool("quiet")

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

	hasErrors := false

	for _, file := range files {
		if !quiet {
			fmt.Printf("Validating %s...\n", file)
		}

		data, err := filesystem.ReadFile(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", file, err)
			hasErrors = true
			continue
		}

		input := string(data)
		b, err := parser.Parse(input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing %s: %v\n", file, err)
			if hint := render.SyntaxHint(input, err); hint != "" {
				fmt.Fprintf(os.Stderr, "  %s\n", hint)
			}
			hasErrors = true
			continue
		}

		if !quiet {
			fmt.Printf("  block %s, %d element(s)\n", b.Name, len(b.Elements))
		}
	}

	if hasErrors {
		return fmt.Errorf("validation failed")
	}

	if !quiet {
		fmt.Println("All files valid.")
	}
	return nil
}
