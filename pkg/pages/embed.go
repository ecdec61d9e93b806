// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package pages

import (
	"embed"
	"fmt"
	"html/template"
	"strings"

	"carvel.dev/shinylive-links/pkg/examples"
)

//go:embed templates/*
var templateFS embed.FS

var (
	templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

	redirectStyle = mustReadCSS("templates/redirect.css") + badgeStyle()
	indexStyle    = mustReadCSS("templates/index.css")
)

func mustReadCSS(name string) template.CSS {
	data, err := templateFS.ReadFile(name)
	if err != nil {
		panic(err)
	}
	return template.CSS(data)
}

// badgeStyle colors the backend badge of redirect pages.
func badgeStyle() template.CSS {
	var sb strings.Builder
	for _, backend := range examples.Backends {
		fmt.Fprintf(&sb, "\n.backend-%s {\n    background-color: %s;\n}\n", backend.PageSuffix(), backend.BadgeColor())
	}
	return template.CSS(sb.String())
}
