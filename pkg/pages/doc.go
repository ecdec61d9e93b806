// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package pages renders the static output of a run: one redirect page per
encoded (example, backend) link, an index page listing every example, and
the JSON manifest of the same data.

Templates and stylesheets are embedded in the binary.
*/
package pages
