// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var (
	// Any path containing one of these is left out of an app bundle.
	excludedPathMarkers = []string{"__pycache__", ".DS_Store", ".pyc", ".git", ".env"}
)

type CollectOpts struct {
	SymlinkAllowOpts SymlinkAllowOpts
}

// IsExcluded reports whether path carries a cache, VCS or env marker.
// path is expected to be relative to the directory being collected or
// watched so that markers in its parents do not count.
func IsExcluded(path string) bool {
	for _, marker := range excludedPathMarkers {
		if strings.Contains(path, marker) {
			return true
		}
	}
	return false
}

// CollectBackendFiles lists every file under exampleDir/backendDir, sorted.
//
// A missing backend directory yields no files and no error. Symlinked files
// are kept only when opts allows their destination; others are reported
// through ui and skipped.
func CollectBackendFiles(exampleDir, backendDir string, opts CollectOpts, ui UI) ([]string, error) {
	root := filepath.Join(exampleDir, backendDir)

	fileInfo, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("Checking backend directory '%s': %w", root, err)
	}
	if !fileInfo.IsDir() {
		return nil, nil
	}

	allowOpts := opts.SymlinkAllowOpts
	if !allowOpts.AllowAll && len(allowOpts.AllowedDstPaths) == 0 {
		allowOpts.AllowedDstPaths = []string{exampleDir}
	}

	var selectedPaths []string

	err = filepath.WalkDir(root, func(walkedPath string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		relPath, err := filepath.Rel(root, walkedPath)
		if err != nil {
			return err
		}
		if IsExcluded(relPath) {
			ui.Debugf("skipping: %s\n", walkedPath)
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 {
			dstPath, err := ResolveSymlink(walkedPath, allowOpts)
			if err != nil {
				ui.Warnf("Skipping %s: %s\n", walkedPath, err)
				return nil
			}
			// Directory links are not followed.
			if dstInfo, err := os.Stat(dstPath); err != nil || dstInfo.IsDir() {
				return nil
			}
		}
		selectedPaths = append(selectedPaths, walkedPath)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("Listing files '%s': %w", root, err)
	}

	sort.Strings(selectedPaths)

	return selectedPaths, nil
}
