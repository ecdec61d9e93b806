// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package examples finds example apps and reads what is known about them.

An example is a directory directly under the examples root whose name
starts with an integer and a dash (e.g. "1-hello-world"). Its optional
package.json may carry an "exampleMetadata" section describing how the
example is presented.
*/
package examples
