// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package pages

import (
	"bytes"
	"encoding/json"

	"carvel.dev/shinylive-links/pkg/examples"
)

const (
	IndexFileName    = "index.html"
	ManifestFileName = "shinylive-links.json"
)

// Link is an encoded URL for one example backend.
type Link struct {
	Backend   examples.Backend
	ExampleID string
	URL       string
}

// Entry is one example together with its encoded links. Field order is the
// key order of the JSON manifest.
type Entry struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	RURL              string `json:"r_url"`
	PythonURL         string `json:"python_url"`
	DeployToShinylive bool   `json:"deployToShinylive"`
	Comment           string `json:"comment"`
}

func NewEntry(app examples.App, links []Link) Entry {
	entry := Entry{
		ID:                app.ID,
		Title:             app.Title,
		Description:       app.Description,
		DeployToShinylive: app.DeployToShinylive,
		Comment:           app.Comment,
	}
	for _, link := range links {
		entry.SetURL(link.Backend, link.URL)
	}
	return entry
}

func (e Entry) App() examples.App {
	return examples.App{
		ID:                e.ID,
		Title:             e.Title,
		Description:       e.Description,
		DeployToShinylive: e.DeployToShinylive,
		Comment:           e.Comment,
	}
}

func (e Entry) URL(backend examples.Backend) string {
	if backend == examples.BackendR {
		return e.RURL
	}
	return e.PythonURL
}

func (e *Entry) SetURL(backend examples.Backend, url string) {
	if backend == examples.BackendR {
		e.RURL = url
	} else {
		e.PythonURL = url
	}
}

// Links returns the successfully encoded links of a deployable example.
func (e Entry) Links() []Link {
	if !e.DeployToShinylive {
		return nil
	}
	var links []Link
	for _, backend := range examples.Backends {
		if url := e.URL(backend); url != "" {
			links = append(links, Link{Backend: backend, ExampleID: e.ID, URL: url})
		}
	}
	return links
}

// Manifest lists examples in discovery order.
type Manifest struct {
	Entries []Entry
}

func (m *Manifest) Add(entry Entry) { m.Entries = append(m.Entries, entry) }

func (m Manifest) IDs() []string {
	var ids []string
	for _, entry := range m.Entries {
		ids = append(ids, entry.ID)
	}
	return ids
}

func (m Manifest) Links() []Link {
	var links []Link
	for _, entry := range m.Entries {
		links = append(links, entry.Links()...)
	}
	return links
}

// MarshalJSON encodes the manifest as a plain array of entries.
func (m Manifest) MarshalJSON() ([]byte, error) {
	entries := m.Entries
	if entries == nil {
		entries = []Entry{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(entries); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func (m *Manifest) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &m.Entries)
}

// MarshalManifest produces the manifest file contents. Output depends only
// on the manifest, so unchanged inputs give byte-identical files.
func MarshalManifest(m Manifest) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
