// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package encoder

import (
	"context"
	"fmt"
	"regexp"

	"github.com/hashicorp/go-version"
)

var (
	versionPattern = regexp.MustCompile(`\d+(\.\d+)+([-+.][0-9A-Za-z.-]+)?`)
)

// Version asks the encoder command for its version.
func (s Shinylive) Version(ctx context.Context) (*version.Version, error) {
	out, err := s.run(ctx, nil, "--version")
	if err != nil {
		return nil, err
	}
	return ParseVersion(out)
}

// ParseVersion extracts a version from output such as "shinylive, version 0.5.0".
func ParseVersion(out string) (*version.Version, error) {
	raw := versionPattern.FindString(out)
	if raw == "" {
		return nil, fmt.Errorf("Expected version in output '%s'", out)
	}
	return version.NewVersion(raw)
}

// RequireAtLeast reports an error when the encoder is older than minVersion.
func (s Shinylive) RequireAtLeast(ctx context.Context, minVersion string) error {
	constraint, err := version.NewConstraint(">= " + minVersion)
	if err != nil {
		return fmt.Errorf("Parsing minimum encoder version '%s': %w", minVersion, err)
	}

	actual, err := s.Version(ctx)
	if err != nil {
		return err
	}

	if !constraint.Check(actual) {
		return fmt.Errorf("%s version %s does not meet the minimum required version %s", s.command, actual, minVersion)
	}
	return nil
}

type UI interface {
	Warnf(string, ...interface{})
}

// CheckVersion warns through ui when command is older than minVersion or
// its version cannot be determined. An empty minVersion skips the check.
func CheckVersion(ctx context.Context, command, minVersion string, ui UI) {
	if minVersion == "" {
		return
	}
	err := NewShinylive(command).RequireAtLeast(ctx, minVersion)
	if err != nil {
		ui.Warnf("Could not confirm encoder version: %s\n", err)
	}
}
