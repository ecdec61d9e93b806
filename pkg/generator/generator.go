// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"carvel.dev/shinylive-links/pkg/config"
	"carvel.dev/shinylive-links/pkg/encoder"
	"carvel.dev/shinylive-links/pkg/examples"
	"carvel.dev/shinylive-links/pkg/files"
	"carvel.dev/shinylive-links/pkg/gitsource"
	"carvel.dev/shinylive-links/pkg/pages"
	"github.com/k14s/difflib"
)

// Generator turns an examples directory into a page set.
type Generator struct {
	cfg config.Config
	enc encoder.Encoder
	ui  UI
}

func NewGenerator(cfg config.Config, enc encoder.Encoder, ui UI) *Generator {
	return &Generator{cfg, enc, ui}
}

// Run generates pages for cfg using enc. It returns a nil manifest (and
// writes nothing) when no examples are found.
func Run(ctx context.Context, cfg config.Config, enc encoder.Encoder, ui UI) (*pages.Manifest, error) {
	return NewGenerator(cfg, enc, ui).Run(ctx)
}

func (g *Generator) Run(ctx context.Context) (*pages.Manifest, error) {
	t1 := time.Now()

	defer func() {
		g.ui.Debugf("total: %s\n", time.Since(t1))
	}()

	err := g.cfg.Validate()
	if err != nil {
		return nil, err
	}

	ids, err := examples.Discover(g.cfg.ExamplesDir)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		g.ui.Printf("No example apps found in %s/ directory\n", g.cfg.ExamplesDir)
		return nil, nil
	}

	g.ui.Printf("Found %d example apps: %s\n", len(ids), strings.Join(ids, ", "))

	var (
		manifest    pages.Manifest
		outputFiles []files.OutputFile
	)

	for _, id := range ids {
		g.ui.Printf("\nProcessing %s...\n", id)

		entry, pageFiles, err := g.processExample(ctx, id)
		if err != nil {
			return nil, err
		}
		manifest.Add(entry)
		outputFiles = append(outputFiles, pageFiles...)
	}

	indexPage, err := pages.RenderIndex(manifest, g.sourceBaseURL())
	if err != nil {
		return nil, err
	}
	outputFiles = append(outputFiles, files.NewOutputFile(pages.IndexFileName, indexPage))

	manifestData, err := pages.MarshalManifest(manifest)
	if err != nil {
		return nil, fmt.Errorf("Encoding manifest: %w", err)
	}
	outputFiles = append(outputFiles, files.NewOutputFile(pages.ManifestFileName, manifestData))

	var prevManifest *pages.Manifest
	if g.cfg.ShowDiff {
		prevManifest = g.readPreviousManifest()
	}

	outputDir := files.NewOutputDirectory(g.cfg.OutputDir, outputFiles, g.ui)

	err = outputDir.Write()
	if err != nil {
		return nil, err
	}

	g.ui.Debugf("wrote %d files to %s\n", len(outputFiles), outputDir.Path())

	g.ui.Printf("\nGenerated %s with %d apps\n", pages.IndexFileName, len(manifest.Entries))
	g.ui.Printf("Generated %s with structured data\n", pages.ManifestFileName)

	if g.cfg.ShowDiff {
		g.printManifestDiff(prevManifest, manifest, manifestData)
	}

	g.printGeneratedPages(outputDir)

	return &manifest, nil
}

func (g *Generator) processExample(ctx context.Context, id string) (pages.Entry, []files.OutputFile, error) {
	app := examples.LoadMetadata(g.cfg.ExamplesDir, id, g.ui)

	if !app.DeployToShinylive {
		g.ui.Printf("  Skipping shinylive deployment: %s\n", app.Comment)
		return pages.NewEntry(app, nil), nil, nil
	}

	exampleDir := filepath.Join(g.cfg.ExamplesDir, id)

	var (
		links     []pages.Link
		pageFiles []files.OutputFile
	)

	for _, backend := range examples.Backends {
		url, err := g.encodeBackend(ctx, exampleDir, backend)
		if err != nil {
			return pages.Entry{}, nil, err
		}
		if url == "" {
			g.ui.Printf("  %s URL: Not available\n", backend.DisplayName())
			continue
		}

		g.ui.Printf("  %s URL length: %d\n", backend.DisplayName(), len(url))

		page, err := pages.RenderRedirect(app.Title, url, backend)
		if err != nil {
			return pages.Entry{}, nil, err
		}

		links = append(links, pages.Link{Backend: backend, ExampleID: id, URL: url})
		pageFiles = append(pageFiles, files.NewOutputFile(backend.PageName(id), page))
	}

	return pages.NewEntry(app, links), pageFiles, nil
}

// encodeBackend returns an empty URL when the example has no such backend.
func (g *Generator) encodeBackend(ctx context.Context, exampleDir string, backend examples.Backend) (string, error) {
	backendPath := filepath.Join(exampleDir, backend.Dir())

	if _, err := os.Stat(backendPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		g.ui.Warnf("Could not inspect %s: %s\n", backendPath, err)
		return "", nil
	}

	collectOpts := files.CollectOpts{
		SymlinkAllowOpts: files.SymlinkAllowOpts{AllowAll: g.cfg.AllowAllSymlinks},
	}

	paths, err := files.CollectBackendFiles(exampleDir, backend.Dir(), collectOpts, g.ui)
	if err != nil {
		g.ui.Warnf("Could not collect files of %s: %s\n", backendPath, err)
		return "", nil
	}

	return EncodeURL(ctx, g.enc, backendPath, paths, g.ui), nil
}

func (g *Generator) sourceBaseURL() string {
	if g.cfg.SourceURL != "" {
		return g.cfg.SourceURL
	}

	url, err := gitsource.BaseURL(g.cfg.ExamplesDir)
	if err != nil {
		g.ui.Debugf("using default source url: %s\n", err)
		return config.DefaultSourceURL
	}
	return url
}

// readPreviousManifest returns nil when there is no readable manifest
// from an earlier run.
func (g *Generator) readPreviousManifest() *pages.Manifest {
	path := filepath.Join(g.cfg.OutputDir, pages.ManifestFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			g.ui.Warnf("Could not read previous manifest %s: %s\n", path, err)
		}
		return nil
	}

	var manifest pages.Manifest

	err = json.Unmarshal(data, &manifest)
	if err != nil {
		g.ui.Warnf("Could not parse previous manifest %s: %s\n", path, err)
		return nil
	}
	return &manifest
}

func (g *Generator) printManifestDiff(prev *pages.Manifest, next pages.Manifest, nextData []byte) {
	if prev == nil {
		g.ui.Printf("\nNo previous %s to compare with\n", pages.ManifestFileName)
		return
	}

	// Re-encoding drops formatting differences left by hand edits or
	// older versions.
	prevData, err := pages.MarshalManifest(*prev)
	if err != nil {
		g.ui.Warnf("Could not encode previous manifest: %s\n", err)
		return
	}
	if bytes.Equal(prevData, nextData) {
		g.ui.Printf("\nNo changes in %s\n", pages.ManifestFileName)
		return
	}

	prevIDs, nextIDs := entryIDs(*prev), entryIDs(next)

	g.ui.Printf("\nChanges in %s:\n", pages.ManifestFileName)
	for _, id := range next.IDs() {
		if _, found := prevIDs[id]; !found {
			g.ui.Printf("  added: %s\n", id)
		}
	}
	for _, id := range prev.IDs() {
		if _, found := nextIDs[id]; !found {
			g.ui.Printf("  removed: %s\n", id)
		}
	}
	g.ui.Printf("%s\n", difflib.PPDiff(strings.Split(string(prevData), "\n"), strings.Split(string(nextData), "\n")))
}

func entryIDs(m pages.Manifest) map[string]struct{} {
	ids := map[string]struct{}{}
	for _, id := range m.IDs() {
		ids[id] = struct{}{}
	}
	return ids
}

func (g *Generator) printGeneratedPages(outputDir *files.OutputDirectory) {
	var names []string
	for _, file := range outputDir.Files() {
		if file.IsHTML() {
			names = append(names, file.RelativePath())
		}
	}
	sort.Strings(names)

	g.ui.Printf("\nGenerated %d HTML files:\n", len(names))
	for _, name := range names {
		g.ui.Printf("  %s\n", name)
	}
}
