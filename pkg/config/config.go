// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"carvel.dev/shinylive-links/pkg/examples"
	"carvel.dev/shinylive-links/pkg/files"
	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	DefaultExamplesDir    = "examples"
	DefaultOutputDir      = "shinylive-pages"
	DefaultEncoderCommand = "shinylive"
	DefaultSourceURL      = "https://github.com/wch/shiny-react/tree/main/examples"
)

type Config struct {
	ExamplesDir       string `toml:"examples_dir" yaml:"examples_dir"`
	OutputDir         string `toml:"output_dir" yaml:"output_dir"`
	EncoderCommand    string `toml:"encoder" yaml:"encoder"`
	MinEncoderVersion string `toml:"min_encoder_version" yaml:"min_encoder_version"`

	// SourceURL is the base of the per-example "Source Code" links.
	// When empty it is derived from the git remote of ExamplesDir.
	SourceURL string `toml:"source_url" yaml:"source_url"`

	AllowAllSymlinks bool `toml:"allow_all_symlinks" yaml:"allow_all_symlinks"`
	ShowDiff         bool `toml:"diff" yaml:"diff"`
}

func NewDefault() Config {
	return Config{
		ExamplesDir:    DefaultExamplesDir,
		OutputDir:      DefaultOutputDir,
		EncoderCommand: DefaultEncoderCommand,
	}
}

// LoadFile overlays settings found in path onto c.
// Keys missing from the file leave the current values untouched.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("Reading config file '%s': %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), c); err != nil {
			return fmt.Errorf("Decoding TOML config file '%s': %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("Decoding YAML config file '%s': %w", path, err)
		}
	default:
		return fmt.Errorf("Expected config file '%s' to have one of extensions .toml, .yaml, .yml", path)
	}
	return nil
}

// Validate reports settings that would make a run destructive or meaningless.
func (c Config) Validate() error {
	err := files.CheckOutputDirectoryPath(c.OutputDir)
	if err != nil {
		return err
	}

	if c.ExamplesDir == "" {
		return fmt.Errorf("Expected examples directory to be specified")
	}

	if c.EncoderCommand == "" {
		return fmt.Errorf("Expected encoder command to be specified")
	}

	examplesDir, err := filepath.Abs(c.ExamplesDir)
	if err != nil {
		return err
	}
	outputDir, err := filepath.Abs(c.OutputDir)
	if err != nil {
		return err
	}
	if examplesDir == outputDir || strings.HasPrefix(examplesDir+string(filepath.Separator), outputDir+string(filepath.Separator)) {
		return fmt.Errorf("Expected output directory '%s' to not contain examples directory '%s'", c.OutputDir, c.ExamplesDir)
	}

	// Pages written into an example would end up in its own bundle.
	if relPath, err := filepath.Rel(examplesDir, outputDir); err == nil {
		firstDir := strings.Split(relPath, string(filepath.Separator))[0]
		if examples.IsExampleID(firstDir) {
			return fmt.Errorf("Expected output directory '%s' to not be inside example '%s'", c.OutputDir, firstDir)
		}
	}

	return nil
}
