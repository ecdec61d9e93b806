// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package generate implements the "generate" command, the default command of
shinylive-links.

Settings are resolved in increasing order of precedence from built-in
defaults, a config file (--config), SHINYLIVE_LINKS_* environment variables
and finally explicitly set flags.
*/
package generate
