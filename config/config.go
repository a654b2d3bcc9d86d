/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for bem tooling.
package config

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/bem/convert"
)

// Config represents the bem configuration.
type Config struct {
	// Format is the default output format for conversion.
	// Valid values: "json", "yaml", "bem"
	Format string `yaml:"format" json:"format"`

	// Files specifies notation files to operate on (paths or specs).
	Files []FileSpec `yaml:"files" json:"files"`
}

// FileSpec represents a notation file specification.
// It can be specified as a simple string path or as an object with overrides.
type FileSpec struct {
	// Path is the file path (supports globs).
	Path string `yaml:"path" json:"path"`

	// Format overrides the global output format for this file.
	Format string `yaml:"format" json:"format"`
}

// UnmarshalYAML handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		f.Path = node.Value
		return nil
	}

	type rawFileSpec FileSpec
	return node.Decode((*rawFileSpec)(f))
}

// UnmarshalJSON handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.Path = s
		return nil
	}

	type rawFileSpec FileSpec
	return json.Unmarshal(data, (*rawFileSpec)(f))
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Format: "",
		Files:  nil,
	}
}

// OutputFormat returns the parsed output format from the Format field.
// Returns convert.FormatJSON if the field is empty or invalid.
func (c *Config) OutputFormat() convert.Format {
	f, err := convert.ParseFormat(c.Format)
	if err != nil {
		return convert.FormatJSON
	}
	return f
}

// FormatForFile returns the output format for the given file.
// File-level overrides take precedence over global config.
func (c *Config) FormatForFile(path string) convert.Format {
	format := c.OutputFormat()

	// Find matching file spec and apply overrides
	for _, spec := range c.Files {
		if spec.Path == path {
			if spec.Format != "" {
				if f, err := convert.ParseFormat(spec.Format); err == nil {
					format = f
				}
			}
			break
		}
	}

	return format
}

// FilePaths returns the list of file paths from all FileSpecs.
func (c *Config) FilePaths() []string {
	paths := make([]string, 0, len(c.Files))
	for _, spec := range c.Files {
		paths = append(paths, spec.Path)
	}
	return paths
}
