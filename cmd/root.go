/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for bem.
package cmd

import (
	"github.com/spf13/cobra"

	"bennypowers.dev/bem/cmd/convert"
	fmtcmd "bennypowers.dev/bem/cmd/fmt"
	"bennypowers.dev/bem/cmd/list"
	"bennypowers.dev/bem/cmd/parse"
	"bennypowers.dev/bem/cmd/validate"
	"bennypowers.dev/bem/cmd/version"
)

var rootCmd = &cobra.Command{
	Use:   "bem",
	Short: "Parse and work with BEM notation",
	Long:  `bem parses, validates, and converts documents written in the BEM (Block Element Modifier) notation.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(convert.Cmd)
	rootCmd.AddCommand(fmtcmd.Cmd)
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(parse.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
