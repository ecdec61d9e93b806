// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package generate

import (
	"context"
	"time"

	"carvel.dev/shinylive-links/pkg/cmd/ui"
	"carvel.dev/shinylive-links/pkg/encoder"
	"carvel.dev/shinylive-links/pkg/generator"
	"carvel.dev/shinylive-links/pkg/pages"
	"github.com/spf13/cobra"
)

type GenerateOptions struct {
	Debug       bool
	ConfigFlags ConfigFlags
}

func NewOptions() *GenerateOptions {
	return &GenerateOptions{}
}

func NewCmd(o *GenerateOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"g", "gen"},
		Short:   "Generate Shinylive redirect pages, index page and manifest for example apps",
		RunE:    func(cmd *cobra.Command, _ []string) error { return o.Run(cmd.Context()) },
	}
	o.Set(cmd)
	return cmd
}

// Set registers generate flags on cmd; other commands running the
// pipeline (e.g. watch) share them.
func (o *GenerateOptions) Set(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	o.ConfigFlags.Set(cmd)
}

func (o *GenerateOptions) Run(ctx context.Context) error {
	_, err := o.RunWithUI(ctx, ui.NewTTY(o.Debug))
	return err
}

// RunWithUI resolves settings and runs the pipeline once.
func (o *GenerateOptions) RunWithUI(ctx context.Context, ui ui.UI) (*pages.Manifest, error) {
	t1 := time.Now()

	defer func() {
		ui.Debugf("generate: %s\n", time.Since(t1))
	}()

	cfg, err := o.ConfigFlags.Config()
	if err != nil {
		return nil, err
	}

	ui.Debugf("config: %+v\n", cfg)

	encoder.CheckVersion(ctx, cfg.EncoderCommand, cfg.MinEncoderVersion, ui)

	return generator.Run(ctx, cfg, encoder.NewShinylive(cfg.EncoderCommand), ui)
}
