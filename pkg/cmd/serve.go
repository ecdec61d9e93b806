// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"

	"carvel.dev/shinylive-links/pkg/cmd/ui"
	"carvel.dev/shinylive-links/pkg/config"
	"carvel.dev/shinylive-links/pkg/preview"
	"github.com/spf13/cobra"
)

type ServeOptions struct {
	Dir             string
	ListenAddr      string
	RedirectToHTTPS bool
}

func NewServeOptions() *ServeOptions {
	return &ServeOptions{}
}

func NewServeCmd(o *ServeOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts HTTP server previewing generated pages",
		RunE:  func(cmd *cobra.Command, _ []string) error { return o.Run(cmd.Context()) },
	}
	cmd.Flags().StringVar(&o.Dir, "dir", config.DefaultOutputDir, "Directory of generated pages")
	cmd.Flags().StringVar(&o.ListenAddr, "listen-addr", "localhost:8080", "Listen address")
	cmd.Flags().BoolVar(&o.RedirectToHTTPS, "redirect-to-https", false, "Redirect to HTTPs address")
	return cmd
}

func (o *ServeOptions) Server(ui ui.UI) *preview.Server {
	opts := preview.ServerOpts{
		ListenAddr:      o.ListenAddr,
		Dir:             o.Dir,
		RedirectToHTTPS: o.RedirectToHTTPS,
	}
	return preview.NewServer(opts, ui)
}

func (o *ServeOptions) Run(ctx context.Context) error {
	return o.Server(ui.NewTTY(false)).Run(ctx)
}
