// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"strings"
)

// Names of the OS environment variables consulted by ApplyEnv.
const (
	EnvExamplesDir = "SHINYLIVE_LINKS_EXAMPLES_DIR"
	EnvOutputDir   = "SHINYLIVE_LINKS_OUTPUT_DIR"
	EnvEncoder     = "SHINYLIVE_LINKS_ENCODER"
)

// ApplyEnv overlays non-empty environment variables onto c.
func (c *Config) ApplyEnv() {
	lookup := func(key string, dst *string) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			*dst = v
		}
	}

	lookup(EnvExamplesDir, &c.ExamplesDir)
	lookup(EnvOutputDir, &c.OutputDir)
	lookup(EnvEncoder, &c.EncoderCommand)
}
