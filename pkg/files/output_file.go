// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"os"
	"path/filepath"
	"strings"
)

type OutputFile struct {
	relativePath string
	data         []byte
}

func NewOutputFile(relativePath string, data []byte) OutputFile {
	return OutputFile{relativePath, data}
}

func (f OutputFile) RelativePath() string { return f.relativePath }
func (f OutputFile) IsHTML() bool         { return strings.HasSuffix(f.relativePath, ".html") }

func (f OutputFile) Path(dirPath string) string {
	return filepath.Join(dirPath, f.relativePath)
}

// Create writes the file under dirPath. Pages are meant to be served, so
// they are world-readable.
func (f OutputFile) Create(dirPath string) error {
	resultPath := f.Path(dirPath)

	err := os.MkdirAll(filepath.Dir(resultPath), 0755)
	if err != nil {
		return err
	}

	return os.WriteFile(resultPath, f.data, 0644)
}
