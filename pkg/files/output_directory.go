// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	suspiciousOutputDirectoryPaths = []string{"/", ".", "./", ""}
)

// StagingDirSuffix follows the output directory name in the sibling
// directory Write fills before swapping it in.
const StagingDirSuffix = ".staging-"

// CheckOutputDirectoryPath rejects paths that name the working or root
// directory, however they are spelled; such a directory would be wiped by
// OutputDirectory.Write.
func CheckOutputDirectoryPath(path string) error {
	cleaned := filepath.Clean(path)
	if cleaned == "." || cleaned == string(filepath.Separator) || cleaned == filepath.VolumeName(cleaned)+string(filepath.Separator) {
		return fmt.Errorf("Expected output directory path to not be one of '%s' (was '%s')",
			strings.Join(suspiciousOutputDirectoryPaths, "', '"), path)
	}
	return nil
}

// OutputDirectory is a directory exclusively owned by one run: Write
// replaces whatever it held before.
type OutputDirectory struct {
	path  string
	files []OutputFile
	ui    UI
}

func NewOutputDirectory(path string, files []OutputFile, ui UI) *OutputDirectory {
	return &OutputDirectory{path, files, ui}
}

func (d *OutputDirectory) Path() string        { return d.path }
func (d *OutputDirectory) Files() []OutputFile { return d.files }

// Write stages all files in a sibling directory and swaps it in, so a
// failed write leaves the previous contents in place.
func (d *OutputDirectory) Write() error {
	err := CheckOutputDirectoryPath(d.path)
	if err != nil {
		return err
	}

	seen := map[string]struct{}{}
	for _, file := range d.files {
		if _, found := seen[file.RelativePath()]; found {
			return fmt.Errorf("Multiple files have same output destination paths: %s", file.RelativePath())
		}
		seen[file.RelativePath()] = struct{}{}
	}

	parentDir := filepath.Dir(filepath.Clean(d.path))

	err = os.MkdirAll(parentDir, 0755)
	if err != nil {
		return fmt.Errorf("Creating parent of output directory '%s': %w", d.path, err)
	}

	stagingDir, err := os.MkdirTemp(parentDir, filepath.Base(d.path)+StagingDirSuffix)
	if err != nil {
		return fmt.Errorf("Creating staging directory for '%s': %w", d.path, err)
	}
	defer os.RemoveAll(stagingDir)

	err = os.Chmod(stagingDir, 0755)
	if err != nil {
		return fmt.Errorf("Preparing staging directory '%s': %w", stagingDir, err)
	}

	for _, file := range d.files {
		d.ui.Debugf("creating: %s\n", file.Path(d.path))

		err := file.Create(stagingDir)
		if err != nil {
			return fmt.Errorf("Writing '%s': %w", file.Path(d.path), err)
		}
	}

	err = os.RemoveAll(d.path)
	if err != nil {
		return fmt.Errorf("Removing output directory '%s': %w", d.path, err)
	}

	err = os.Rename(stagingDir, d.path)
	if err != nil {
		return fmt.Errorf("Moving staged files into '%s': %w", d.path, err)
	}

	return nil
}
