// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package generate

import (
	"fmt"

	"carvel.dev/shinylive-links/pkg/config"
	"github.com/hashicorp/go-version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type ConfigFlags struct {
	ConfigFile string

	examplesDir       string
	outputDir         string
	encoder           string
	minEncoderVersion VersionFlag
	sourceURL         string
	allowAllSymlinks  bool
	showDiff          bool

	flags *pflag.FlagSet
}

func (f *ConfigFlags) Set(cmd *cobra.Command) {
	defaults := config.NewDefault()

	cmd.Flags().StringVarP(&f.ConfigFile, "config", "c", "", "Config file (.toml, .yaml or .yml)")
	cmd.Flags().StringVar(&f.examplesDir, "examples-dir", defaults.ExamplesDir, "Directory holding example apps")
	cmd.Flags().StringVar(&f.outputDir, "output-dir", defaults.OutputDir, "Directory for generated pages (emptied on every run)")
	cmd.Flags().StringVar(&f.encoder, "encoder", defaults.EncoderCommand, "Shinylive command used to encode URLs")
	cmd.Flags().Var(&f.minEncoderVersion, "min-encoder-version", "Warn when the encoder is older than this version")
	cmd.Flags().StringVar(&f.sourceURL, "source-url", "", "Base URL of example sources (derived from git remote 'origin' by default)")
	cmd.Flags().BoolVar(&f.allowAllSymlinks, "allow-all-symlinks", false, "Include symlinked files pointing outside of their example")
	cmd.Flags().BoolVar(&f.showDiff, "diff", false, "Show changes to the previously generated manifest")

	f.flags = cmd.Flags()
}

// Config resolves settings: defaults, then config file, then env, then
// flags explicitly set on the command line.
func (f *ConfigFlags) Config() (config.Config, error) {
	cfg := config.NewDefault()

	if f.ConfigFile != "" {
		err := cfg.LoadFile(f.ConfigFile)
		if err != nil {
			return config.Config{}, err
		}
	}

	cfg.ApplyEnv()

	if f.changed("examples-dir") {
		cfg.ExamplesDir = f.examplesDir
	}
	if f.changed("output-dir") {
		cfg.OutputDir = f.outputDir
	}
	if f.changed("encoder") {
		cfg.EncoderCommand = f.encoder
	}
	if f.changed("min-encoder-version") {
		cfg.MinEncoderVersion = f.minEncoderVersion.String()
	}
	if f.changed("source-url") {
		cfg.SourceURL = f.sourceURL
	}
	if f.changed("allow-all-symlinks") {
		cfg.AllowAllSymlinks = f.allowAllSymlinks
	}
	if f.changed("diff") {
		cfg.ShowDiff = f.showDiff
	}

	return cfg, cfg.Validate()
}

func (f *ConfigFlags) changed(name string) bool {
	return f.flags != nil && f.flags.Changed(name)
}

// VersionFlag holds a version string checked once flags are parsed.
type VersionFlag struct {
	value string
}

var _ pflag.Value = &VersionFlag{}

func (f *VersionFlag) Set(val string) error {
	f.value = val
	return nil
}

func (f *VersionFlag) Type() string   { return "version" }
func (f *VersionFlag) String() string { return f.value }

func (f *VersionFlag) Resolve() error {
	if f.value == "" {
		return nil
	}
	_, err := version.NewVersion(f.value)
	if err != nil {
		return fmt.Errorf("Expected flag '--min-encoder-version' to be a version: %w", err)
	}
	return nil
}
