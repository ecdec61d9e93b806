// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package pages_test

import (
	"bytes"
	"strings"
	"testing"

	"carvel.dev/shinylive-links/pkg/examples"
	"carvel.dev/shinylive-links/pkg/pages"
	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const encodedURL = "https://shinylive.io/py/app/#code=NobwRAdghgtgpmAXGKAHVA6VBPMAaMAYwHsIAXOcpMAMwCcjYACAZwAsBLCbDOAD3QM4rVsk4x0pBhBoAdCPTKkylNhEEAREsABWLOYsFaGAZTIGOAc1aN9IuFSrC8wsUhGrF+zO3akUu2YAkgBtrQIBSGVxDJVAbHu-xBFNGkoQ=+$"

func parse(t *testing.T, data []byte) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	require.NoError(t, err)
	return doc
}

func TestRenderRedirect(t *testing.T) {
	data, err := pages.RenderRedirect("1 Hello World", encodedURL, examples.BackendPython)
	require.NoError(t, err)

	doc := parse(t, data)

	refresh, ok := doc.Find(`meta[http-equiv="refresh"]`).Attr("content")
	require.True(t, ok)
	require.Equal(t, "0.5;url="+encodedURL, refresh)

	href, ok := doc.Find("a.manual-link").Attr("href")
	require.True(t, ok)
	require.Equal(t, encodedURL, href)

	require.Equal(t, "Redirecting to 1 Hello World (Python) - Shinylive", doc.Find("title").Text())
	require.Equal(t, "Python", doc.Find(".backend-badge").Text())
	require.True(t, doc.Find(".backend-badge").HasClass("backend-python"))
	require.Equal(t, "1 Hello World", doc.Find("h1").Text())

	script := doc.Find("script").Text()
	assert.Contains(t, script, "setTimeout")
	assert.Contains(t, script, "2000")
	assert.Contains(t, script, `window.location.href = "https:`)
	assert.Contains(t, script, "document.addEventListener('click'")
	for _, line := range strings.Split(script, "\n") {
		assert.False(t, strings.HasPrefix(strings.TrimSpace(line), "//"), "script line %q", line)
	}

	assert.Contains(t, doc.Find("style").Text(), ".backend-python {\n    background-color: #059669;\n}")
}

func TestRenderRedirectEscapesTitle(t *testing.T) {
	data, err := pages.RenderRedirect(`<script>alert("x")</script>`, encodedURL, examples.BackendR)
	require.NoError(t, err)

	require.NotContains(t, string(data), `<script>alert`)
	require.Equal(t, `<script>alert("x")</script>`, parse(t, data).Find("h1").Text())
}

func sampleManifest() pages.Manifest {
	m := pages.Manifest{}
	m.Add(pages.NewEntry(examples.App{
		ID: "1-hello-world", Title: "Hello World", Description: "Say hello", DeployToShinylive: true,
	}, []pages.Link{
		{Backend: examples.BackendR, ExampleID: "1-hello-world", URL: "URL_A"},
		{Backend: examples.BackendPython, ExampleID: "1-hello-world", URL: "URL_B"},
	}))
	m.Add(pages.NewEntry(examples.App{
		ID: "2-inputs", Title: "Inputs", Description: "Input widgets", DeployToShinylive: true,
	}, []pages.Link{
		{Backend: examples.BackendPython, ExampleID: "2-inputs", URL: "URL_C"},
	}))
	m.Add(pages.NewEntry(examples.App{
		ID: "7-chat", Title: "Chat", Description: "AI chat", DeployToShinylive: false, Comment: "Needs an API key",
	}, nil))
	return m
}

func TestRenderIndex(t *testing.T) {
	data, err := pages.RenderIndex(sampleManifest(), "https://github.com/wch/shiny-react/tree/main/examples/")
	require.NoError(t, err)

	doc := parse(t, data)
	cards := doc.Find(".app-card")
	require.Equal(t, 3, cards.Length())

	var titles []string
	cards.Each(func(_ int, s *goquery.Selection) {
		titles = append(titles, strings.TrimSpace(s.Find(".app-title").Text()))
	})
	require.Equal(t, []string{"1. Hello World", "2. Inputs", "7. Chat"}, titles)

	hello := doc.Find(`[id="1-hello-world"]`)
	source, _ := hello.Find("a.link-source").Attr("href")
	require.Equal(t, "https://github.com/wch/shiny-react/tree/main/examples/1-hello-world", source)
	rHref, _ := hello.Find("a.link-r").Attr("href")
	require.Equal(t, "1-hello-world-r.html", rHref)
	pyHref, _ := hello.Find("a.link-py").Attr("href")
	require.Equal(t, "1-hello-world-python.html", pyHref)
	require.Equal(t, 0, hello.Find(".app-comment").Length())

	inputs := doc.Find(`[id="2-inputs"]`)
	require.Equal(t, 0, inputs.Find("a.link-r").Length())
	require.Equal(t, "Python Version", inputs.Find("a.link-py").Text())

	chat := doc.Find(`[id="7-chat"]`)
	require.Equal(t, 0, chat.Find("a.link-r, a.link-py").Length())
	require.Equal(t, 1, chat.Find("a.link-source").Length())
	require.Equal(t, "Note: Needs an API key", strings.TrimSpace(chat.Find(".app-comment").Text()))
}

func TestRenderIndexHidesLinksOfNonDeployableExamples(t *testing.T) {
	m := pages.Manifest{}
	m.Add(pages.Entry{ID: "5-shadcn", Title: "Shadcn", RURL: "URL_A", PythonURL: "URL_B", DeployToShinylive: false})

	data, err := pages.RenderIndex(m, "https://example.com/examples")
	require.NoError(t, err)

	doc := parse(t, data)
	require.Equal(t, 0, doc.Find("a.link-r, a.link-py").Length())
	require.Equal(t, 0, doc.Find(".app-comment").Length(), "no note without a comment")
}

func TestRenderIndexEmpty(t *testing.T) {
	data, err := pages.RenderIndex(pages.Manifest{}, "https://example.com")
	require.NoError(t, err)
	require.Equal(t, 0, parse(t, data).Find(".app-card").Length())
}
