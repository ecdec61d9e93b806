// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

// Package preview serves a generated page set over HTTP.
package preview
