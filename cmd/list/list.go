/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for bem.
package list

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bennypowers.dev/bem/cmd/render"
	"bennypowers.dev/bem/config"
	"bennypowers.dev/bem/fs"
	"bennypowers.dev/bem/parser"
)

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list [files...]",
	Short: "List entities from BEM notation files",
	Long:  `List the block, elements, and modifiers of BEM notation files in document order.`,
	Args:  cobra.ArbitraryArgs,
	RunE:  run,
}

func init() {
	Cmd.Flags().String("format", "table", "Output format: table, json, names, markdown")
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

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

	var allRows []render.Row

	for _, file := range files {
		data, err := filesystem.ReadFile(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", file, err)
			continue
		}

		b, err := parser.Parse(string(data))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing %s: %v\n", file, err)
			continue
		}

		// Document order is semantic; entities are never sorted.
		allRows = append(allRows, render.ComputeRows(b)...)
	}

	switch format {
	case "json":
		return outputJSON(allRows)
	case "names":
		return render.Names(allRows)
	case "markdown":
		return render.Markdown(allRows)
	default:
		return render.Table(allRows)
	}
}

func outputJSON(rows []render.Row) error {
	type entityOutput struct {
		Kind      string   `json:"kind"`
		Name      string   `json:"name"`
		Modifiers []string `json:"modifiers"`
	}

	output := make([]entityOutput, 0, len(rows))
	for _, r := range rows {
		modifiers := r.Modifiers
		if modifiers == nil {
			modifiers = []string{}
		}
		output = append(output, entityOutput{
			Kind:      r.Kind,
			Name:      r.Name,
			Modifiers: modifiers,
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}
