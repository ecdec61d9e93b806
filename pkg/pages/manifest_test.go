// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package pages_test

import (
	"encoding/json"
	"testing"

	"carvel.dev/shinylive-links/pkg/examples"
	"carvel.dev/shinylive-links/pkg/pages"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestMarshalManifest(t *testing.T) {
	data, err := pages.MarshalManifest(sampleManifest())
	require.NoError(t, err)

	expected := `[
  {
    "id": "1-hello-world",
    "title": "Hello World",
    "description": "Say hello",
    "r_url": "URL_A",
    "python_url": "URL_B",
    "deployToShinylive": true,
    "comment": ""
  },
  {
    "id": "2-inputs",
    "title": "Inputs",
    "description": "Input widgets",
    "r_url": "",
    "python_url": "URL_C",
    "deployToShinylive": true,
    "comment": ""
  },
  {
    "id": "7-chat",
    "title": "Chat",
    "description": "AI chat",
    "r_url": "",
    "python_url": "",
    "deployToShinylive": false,
    "comment": "Needs an API key"
  }
]
`
	require.Equal(t, expected, string(data))
}

func TestMarshalManifestEmpty(t *testing.T) {
	data, err := pages.MarshalManifest(pages.Manifest{})
	require.NoError(t, err)
	require.Equal(t, "[]\n", string(data))
}

func TestMarshalManifestKeepsURLCharacters(t *testing.T) {
	m := pages.Manifest{}
	m.Add(pages.Entry{ID: "1-a", PythonURL: "https://shinylive.io/py/app/#code=a&b<c>", DeployToShinylive: true})

	data, err := pages.MarshalManifest(m)
	require.NoError(t, err)
	require.Contains(t, string(data), `"python_url": "https://shinylive.io/py/app/#code=a&b<c>"`)

	var decoded pages.Manifest
	require.NoError(t, json.Unmarshal(data, &decoded))
	if diff := cmp.Diff(m, decoded); diff != "" {
		t.Fatalf("manifest mismatch (-want +got):\n%s", diff)
	}
}

func TestManifestLinks(t *testing.T) {
	links := sampleManifest().Links()
	require.Equal(t, []pages.Link{
		{Backend: examples.BackendR, ExampleID: "1-hello-world", URL: "URL_A"},
		{Backend: examples.BackendPython, ExampleID: "1-hello-world", URL: "URL_B"},
		{Backend: examples.BackendPython, ExampleID: "2-inputs", URL: "URL_C"},
	}, links)
}
