// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package pkg is the collection of packages that make up the implementation of
shinylive-links.

Packages are layered; each depends on the ones below it only as much as it
must.

# Entry Point

shinylive-links is built into two executable formats:

	./cmd/shinylive-links          // a command-line tool
	./cmd/shinylive-links-lambda   // an AWS Lambda function serving generated pages

# Commands

	pkg/cmd            // root command, version, serve, watch
	pkg/cmd/generate   // generate (the default command), config flags
	pkg/cmd/ui         // stdout output, structured warnings and debug lines

# Pipeline

generator.Run drives one run: discover examples, load their metadata,
collect and encode each backend's files, render pages, then replace the
output directory.

	pkg/generator   => pkg/examples, pkg/files, pkg/encoder, pkg/pages, pkg/gitsource, pkg/config
	pkg/examples    // example discovery, package.json metadata, backends
	pkg/files       // backend file collection, symlink policy, output directory
	pkg/encoder     // the external "shinylive url encode" command
	pkg/pages       // redirect and index HTML, JSON manifest
	pkg/gitsource   // "Source Code" link base from the git remote

# Utilities

	pkg/config    // settings, config files, environment overrides
	pkg/preview   // HTTP server for generated pages
	pkg/version
*/
package pkg
