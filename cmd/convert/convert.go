/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package convert provides the convert command for bem.
package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/bem/config"
	convertlib "bennypowers.dev/bem/convert"
	"bennypowers.dev/bem/convert/formatter"
	"bennypowers.dev/bem/fs"
	"bennypowers.dev/bem/parser"
)

// Cmd is the convert cobra command.
var Cmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Convert a BEM notation document to another representation",
	Long: `Convert a BEM notation document to another representation.

Output Formats:
  json  Canonical JSON interchange form (default)
  yaml  YAML rendering of the same shape
  bem   Canonical BEM notation

Examples:
  # Print canonical JSON to stdout
  bem convert media.bem

  # Pretty-print JSON
  bem convert --indent media.bem

  # Convert to YAML
  bem convert --format yaml media.bem

  # Infer the format from the output extension
  bem convert -o media.yaml media.bem

  # Use the file listed in config (.config/bem.yaml)
  bem convert

The output format falls back to the BEM_FORMAT environment variable,
then the output file extension, then the config file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	viper.SetEnvPrefix("bem")
	viper.AutomaticEnv()

	Cmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
	Cmd.Flags().StringP("format", "f", "", "Output format: "+strings.Join(convertlib.ValidFormats(), ", "))
	Cmd.Flags().Bool("indent", false, "Indent JSON output")
}

func run(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	formatFlag, _ := cmd.Flags().GetString("format")
	indent, _ := cmd.Flags().GetBool("indent")

	filesystem := fs.NewOSFileSystem()

	// Load config from .config/bem.{yaml,json}
	cfg := config.LoadOrDefault(filesystem, ".")

	// Use the config file list if no arg provided
	var file string
	if len(args) == 1 {
		file = args[0]
	} else {
		expanded, err := cfg.ExpandFiles(filesystem, ".")
		if err != nil {
			return fmt.Errorf("error expanding config files: %w", err)
		}
		if len(expanded) == 0 {
			return fmt.Errorf("no file specified and no files found in config")
		}
		if len(expanded) > 1 {
			return fmt.Errorf("convert works on a single document; config lists %d files", len(expanded))
		}
		file = expanded[0]
	}

	// Format precedence: flag, then BEM_FORMAT (viper), then the output
	// file extension, then config
	formatName := formatFlag
	if formatName == "" {
		formatName = viper.GetString("format")
	}

	var format convertlib.Format
	if formatName != "" {
		var err error
		format, err = convertlib.ParseFormat(formatName)
		if err != nil {
			return err
		}
	} else if f, ok := convertlib.FormatForExtension(output); ok {
		format = f
	} else {
		format = cfg.FormatForFile(file)
	}

	b, err := parser.ParseFile(filesystem, file)
	if err != nil {
		return err
	}

	outputBytes, err := convertlib.FormatBlock(b, format, formatter.Options{Indent: indent})
	if err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}

	// Append newline for proper file formatting (if not already present)
	if len(outputBytes) > 0 && outputBytes[len(outputBytes)-1] != '\n' {
		outputBytes = append(outputBytes, '\n')
	}

	if output != "" {
		if err := ensureDir(output); err != nil {
			return fmt.Errorf("error creating directory for %s: %w", output, err)
		}
		if err := filesystem.WriteFile(output, outputBytes, 0644); err != nil {
			return fmt.Errorf("error writing to %s: %w", output, err)
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", output)
		return nil
	}

	// Write to stdout
	fmt.Print(string(outputBytes))
	return nil
}

// ensureDir creates the parent directory for a file path if it doesn't exist.
func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0755)
}
