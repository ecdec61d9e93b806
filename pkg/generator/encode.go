// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package generator

import (
	"context"
	"errors"
	"strings"

	"carvel.dev/shinylive-links/pkg/encoder"
)

const installHint = "shinylive command not found. Please install with: pip install shinylive"

// EncodeURL encodes files found in backendPath into a URL. It returns an
// empty string (after reporting the reason through ui) when there is
// nothing to encode or the encoder fails.
func EncodeURL(ctx context.Context, enc encoder.Encoder, backendPath string, files []string, ui UI) string {
	if len(files) == 0 {
		ui.Printf("No files found in %s\n", backendPath)
		return ""
	}

	url, err := enc.Encode(ctx, files)
	if err != nil {
		var exitErr *encoder.ExitError
		switch {
		case errors.Is(err, encoder.ErrNotInstalled):
			ui.Warnf("%s\n", installHint)
		case errors.As(err, &exitErr):
			ui.Warnf("Error generating shinylive URL for %s: %s\n", backendPath, exitErr)
			ui.Warnf("Command: %s\n", strings.Join(exitErr.Command, " "))
			ui.Warnf("Files: %s\n", strings.Join(exitErr.Files, ", "))
		default:
			ui.Warnf("Error generating shinylive URL for %s: %s\n", backendPath, err)
		}
		return ""
	}

	return url
}
