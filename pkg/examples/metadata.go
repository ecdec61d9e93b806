// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package examples

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

type UI interface {
	Warnf(string, ...interface{})
}

type packageJSON struct {
	ExampleMetadata *exampleMetadata `json:"exampleMetadata"`
}

// Pointers tell absent keys apart from zero values.
type exampleMetadata struct {
	Title             *string `json:"title"`
	Description       *string `json:"description"`
	DeployToShinylive *bool   `json:"deployToShinylive"`
	Comment           *string `json:"comment"`
}

// LoadMetadata reads root/id/package.json and merges its exampleMetadata
// section over the defaults. Problems reading the file are reported through
// ui and never stop processing.
func LoadMetadata(root, id string, ui UI) App {
	app := NewDefaultApp(id)
	path := filepath.Join(root, id, MetadataFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			ui.Warnf("Could not read metadata for %s: %s\n", id, err)
		}
		return app
	}

	var pkg packageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		ui.Warnf("Could not read metadata for %s: %s\n", id, err)
		return NewDefaultApp(id)
	}

	if md := pkg.ExampleMetadata; md != nil {
		if md.Title != nil {
			app.Title = *md.Title
		}
		if md.Description != nil {
			app.Description = *md.Description
		}
		if md.DeployToShinylive != nil {
			app.DeployToShinylive = *md.DeployToShinylive
		}
		if md.Comment != nil {
			app.Comment = *md.Comment
		}
	}

	return app
}
