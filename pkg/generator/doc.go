// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package generator runs the link generation pipeline.

Examples are discovered under the examples directory, each backend of a
deployable example is encoded into a Shinylive URL, and the resulting
redirect pages, index page and JSON manifest replace the contents of the
output directory.

Failures that concern a single example (unreadable metadata, a missing
encoder, an encoder exiting non-zero) are reported as warnings and leave
that example without links. Only configuration and output errors stop a run.
*/
package generator
