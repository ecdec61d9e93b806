// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package config holds the explicit settings of a link generation run.

Values are layered: defaults, then an optional config file (TOML or YAML,
picked by extension), then environment variables, then command-line flags.
Nothing in the pipeline derives paths from the working directory or the
location of the binary; everything it touches is named here.
*/
package config
