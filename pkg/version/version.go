// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package version

// Version is overridden at build time:
//
//	go build -ldflags "-X carvel.dev/shinylive-links/pkg/version.Version=1.2.3"
var Version = "develop"
