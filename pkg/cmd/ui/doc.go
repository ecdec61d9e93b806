// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package ui provides a thin abstraction over user output (typically, a tty
device).

Regular output (progress, file listings) is written to stdout as-is.
Warnings and debug lines are structured log records written to stderr,
colored when stderr is a terminal.
*/
package ui
