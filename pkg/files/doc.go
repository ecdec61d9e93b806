// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package files provides primitives for enumerating the source files of an
example backend and for writing generated pages to a filesystem directory.

Enumeration skips files that never belong in a shared app bundle (caches,
OS metadata, compiled artifacts, version control and env files) and keeps
a deterministic, sorted order so that identical inputs produce identical
encoded URLs.
*/
package files
