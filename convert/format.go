/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package convert

import (
	"fmt"
	"path"
	"strings"

	"bennypowers.dev/bem/block"
	"bennypowers.dev/bem/convert/formatter"
	"bennypowers.dev/bem/convert/formatter/jsonout"
	"bennypowers.dev/bem/convert/formatter/notation"
	"bennypowers.dev/bem/convert/formatter/yamlout"
)

// Format represents an output format for block serialization.
type Format string

const (
	// FormatJSON outputs the canonical JSON interchange form (default).
	FormatJSON Format = "json"

	// FormatYAML outputs the same shape as YAML.
	FormatYAML Format = "yaml"

	// FormatBEM outputs canonical BEM notation.
	FormatBEM Format = "bem"
)

// ValidFormats returns all valid format strings.
func ValidFormats() []string {
	return []string{
		string(FormatJSON),
		string(FormatYAML),
		string(FormatBEM),
	}
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json", "":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "bem", "notation", "text":
		return FormatBEM, nil
	default:
		return "", fmt.Errorf("unknown format: %s (valid: %s)", s, strings.Join(ValidFormats(), ", "))
	}
}

// FormatForExtension infers an output format from a file extension.
func FormatForExtension(p string) (Format, bool) {
	switch strings.ToLower(path.Ext(p)) {
	case ".json":
		return FormatJSON, true
	case ".yaml", ".yml":
		return FormatYAML, true
	case ".bem":
		return FormatBEM, true
	}
	return "", false
}

// FormatBlock converts a block to the specified output format.
func FormatBlock(b *block.Block, format Format, opts formatter.Options) ([]byte, error) {
	var f formatter.Formatter
	switch format {
	case FormatJSON:
		f = jsonout.New()
	case FormatYAML:
		f = yamlout.New()
	case FormatBEM:
		f = notation.New()
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	return f.Format(b, opts)
}
