// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package pages

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"carvel.dev/shinylive-links/pkg/examples"
)

type redirectData struct {
	Style      template.CSS
	Title      string
	URL        string
	Backend    string
	BadgeClass string
}

type indexData struct {
	Style template.CSS
	Cards []indexCard
}

type indexCard struct {
	ID           string
	DisplayTitle string
	Description  string
	Note         string
	SourceURL    string
	Links        []indexLink
}

type indexLink struct {
	Href  string
	Class string
	Label string
}

var linkClasses = map[examples.Backend]string{
	examples.BackendR:      "link-r",
	examples.BackendPython: "link-py",
}

// RenderRedirect produces a page forwarding the browser to url after a
// short delay (meta refresh, with a timed script fallback).
func RenderRedirect(title, url string, backend examples.Backend) ([]byte, error) {
	return execute("redirect.html", redirectData{
		Style:      redirectStyle,
		Title:      title,
		URL:        url,
		Backend:    backend.DisplayName(),
		BadgeClass: backend.PageSuffix(),
	})
}

// RenderIndex produces the page listing every example of m, in order.
// Backend links appear only for deployable examples whose encoding
// succeeded; non-deployable examples show their comment instead.
func RenderIndex(m Manifest, sourceBaseURL string) ([]byte, error) {
	data := indexData{Style: indexStyle}

	for _, entry := range m.Entries {
		card := indexCard{
			ID:           entry.ID,
			DisplayTitle: entry.App().DisplayTitle(),
			Description:  entry.Description,
			SourceURL:    SourceURL(sourceBaseURL, entry.ID),
		}
		if !entry.DeployToShinylive {
			card.Note = entry.Comment
		}
		for _, link := range entry.Links() {
			card.Links = append(card.Links, indexLink{
				Href:  link.Backend.PageName(link.ExampleID),
				Class: linkClasses[link.Backend],
				Label: link.Backend.DisplayName() + " Version",
			})
		}
		data.Cards = append(data.Cards, card)
	}

	return execute("index.html", data)
}

// SourceURL joins the source browsing base URL and an example ID.
func SourceURL(base, id string) string {
	return strings.TrimRight(base, "/") + "/" + id
}

func execute(name string, data interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("Rendering %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
