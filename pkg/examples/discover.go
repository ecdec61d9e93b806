// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package examples

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
)

// Discover lists example IDs found directly under root.
//
// IDs are sorted lexically, so "10-x" comes before "2-y". A missing root is
// not an error; it simply has no examples.
func Discover(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("Listing examples directory '%s': %w", root, err)
	}

	var ids []string
	for _, entry := range entries {
		if entry.IsDir() && IsExampleID(entry.Name()) {
			ids = append(ids, entry.Name())
		}
	}

	sort.Strings(ids)

	return ids, nil
}
