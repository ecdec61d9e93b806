// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

// Package gitsource derives the base URL for browsing example sources from
// the git repository holding them.
package gitsource
