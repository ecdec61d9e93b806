// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
	"path/filepath"
	"strings"
)

// SymlinkAllowOpts restricts where symlinked backend files may point.
// Without restriction a symlink could pull arbitrary files from the
// machine into a publicly shared URL.
type SymlinkAllowOpts struct {
	AllowAll        bool
	AllowedDstPaths []string
}

// ResolveSymlink returns the final destination of the link at path, or an
// error when that destination is outside every allowed directory.
func ResolveSymlink(path string, opts SymlinkAllowOpts) (string, error) {
	dstPath, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", fmt.Errorf("Resolving symlink: %w", err)
	}

	if opts.AllowAll {
		return dstPath, nil
	}

	dstPath, err = filepath.Abs(dstPath)
	if err != nil {
		return "", err
	}

	for _, allowedDir := range opts.AllowedDstPaths {
		// Allowed dirs may themselves sit behind symlinks (e.g. /tmp on macOS).
		if resolved, err := filepath.EvalSymlinks(allowedDir); err == nil {
			allowedDir = resolved
		}
		allowedDir, err = filepath.Abs(allowedDir)
		if err != nil {
			return "", err
		}
		if isWithin(dstPath, allowedDir) {
			return dstPath, nil
		}
	}

	return "", fmt.Errorf("Expected symlink '%s' -> '%s' to point inside one of '%s'",
		path, dstPath, strings.Join(opts.AllowedDstPaths, "', '"))
}

// isWithin expects both paths to be absolute and clean.
func isWithin(path, dir string) bool {
	relPath, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return relPath != ".." && !strings.HasPrefix(relPath, ".."+string(filepath.Separator))
}
