// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	cmdgen "carvel.dev/shinylive-links/pkg/cmd/generate"
	"carvel.dev/shinylive-links/pkg/version"
	"github.com/cppforlife/cobrautil"
	"github.com/spf13/cobra"
)

type LinksOptions struct{}

func NewDefaultLinksOptions() *LinksOptions {
	return &LinksOptions{}
}

func NewDefaultLinksCmd() *cobra.Command {
	return NewLinksCmd(NewDefaultLinksOptions())
}

func NewLinksCmd(o *LinksOptions) *cobra.Command {
	cmd := cmdgen.NewCmd(cmdgen.NewOptions())

	cmd.Use = "shinylive-links"
	cmd.Aliases = nil
	cmd.Version = version.Version
	cmd.Short = "shinylive-links generates Shinylive pages for example apps"
	cmd.Long = `shinylive-links generates Shinylive pages for example apps.

Every numbered example directory (e.g. examples/1-hello-world) with an r/ or
py/ backend is encoded into a Shinylive URL. The output directory receives
one redirect page per encoded backend, an index.html page and a
shinylive-links.json manifest.`

	// Affects children as well
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	// Disable docs header
	cmd.DisableAutoGenTag = true

	cmd.AddCommand(NewVersionCmd(NewVersionOptions()))
	cmd.AddCommand(cmdgen.NewCmd(cmdgen.NewOptions()))
	cmd.AddCommand(NewServeCmd(NewServeOptions()))
	cmd.AddCommand(NewWatchCmd(NewWatchOptions()))

	// Reconfigure Commands
	cobrautil.VisitCommands(cmd, cobrautil.ReconfigureCmdWithSubcmd,
		cobrautil.DisallowExtraArgs, cobrautil.WrapRunEForCmd(cobrautil.ResolveFlagsForCmd))

	return cmd
}
