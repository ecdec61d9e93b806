// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package encoder turns a set of app files into a shareable Shinylive URL by
running the external "shinylive url encode" command.

The URL is opaque to this program: whatever the command prints (trimmed)
is the result.
*/
package encoder
