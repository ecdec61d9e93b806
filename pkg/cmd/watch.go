// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	cmdgen "carvel.dev/shinylive-links/pkg/cmd/generate"
	"carvel.dev/shinylive-links/pkg/cmd/ui"
	"carvel.dev/shinylive-links/pkg/files"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type WatchOptions struct {
	GenerateOptions *cmdgen.GenerateOptions
	Debounce        time.Duration
}

func NewWatchOptions() *WatchOptions {
	return &WatchOptions{
		GenerateOptions: cmdgen.NewOptions(),
		Debounce:        500 * time.Millisecond,
	}
}

func NewWatchCmd(o *WatchOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate pages whenever example apps change",
		RunE:  func(cmd *cobra.Command, _ []string) error { return o.Run(cmd.Context()) },
	}
	o.GenerateOptions.Set(cmd)
	cmd.Flags().DurationVar(&o.Debounce, "debounce", o.Debounce, "Wait for changes to settle for this long before regenerating")
	return cmd
}

func (o *WatchOptions) Run(ctx context.Context) error {
	return o.RunWithUI(ctx, ui.NewTTY(o.GenerateOptions.Debug))
}

// RunWithUI generates pages once and then after every batch of changes to
// the examples directory, until ctx is done. Runs never overlap.
func (o *WatchOptions) RunWithUI(ctx context.Context, ui ui.UI) error {
	cfg, err := o.GenerateOptions.ConfigFlags.Config()
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("Creating file watcher: %w", err)
	}
	defer watcher.Close()

	outputDir, err := filepath.Abs(cfg.OutputDir)
	if err != nil {
		return err
	}

	examplesDir, err := filepath.Abs(cfg.ExamplesDir)
	if err != nil {
		return err
	}

	w := dirWatcher{watcher: watcher, examplesDir: examplesDir, ignoredDir: outputDir, ui: ui}

	err = w.AddRecursive(cfg.ExamplesDir)
	if err != nil {
		return err
	}

	triggerCh := make(chan struct{}, 1)
	triggerCh <- struct{}{}

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return w.Debounce(ctx, o.Debounce, triggerCh)
	})

	group.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-triggerCh:
				_, err := o.GenerateOptions.RunWithUI(ctx, ui)
				if err != nil {
					ui.Warnf("Generating pages: %s\n", err)
				}
				ui.Printf("\nWatching %s for changes...\n", cfg.ExamplesDir)
			}
		}
	})

	return group.Wait()
}

type dirWatcher struct {
	watcher     *fsnotify.Watcher
	examplesDir string
	ignoredDir  string
	ui          ui.UI
}

// AddRecursive watches dir and every directory below it; fsnotify watches
// are not recursive.
func (w dirWatcher) AddRecursive(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("Watching '%s': %w", path, err)
		}
		if !d.IsDir() {
			return nil
		}
		if w.isIgnored(path) {
			return filepath.SkipDir
		}
		w.ui.Debugf("watching: %s\n", path)
		err = w.watcher.Add(path)
		if err != nil {
			return fmt.Errorf("Watching '%s': %w", path, err)
		}
		return nil
	})
}

// Debounce sends on triggerCh once no relevant event has been seen for
// delay. Pending triggers are coalesced.
func (w dirWatcher) Debounce(ctx context.Context, delay time.Duration, triggerCh chan<- struct{}) error {
	timer := time.NewTimer(delay)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if w.isIgnored(event.Name) {
				continue
			}
			w.ui.Debugf("change: %s\n", event)

			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.AddRecursive(event.Name); err != nil {
						w.ui.Warnf("%s\n", err)
					}
				}
			}
			timer.Reset(delay)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.ui.Warnf("Watching files: %s\n", err)

		case <-timer.C:
			select {
			case triggerCh <- struct{}{}:
			default:
			}
		}
	}
}

func (w dirWatcher) isIgnored(path string) bool {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	if absPath == w.ignoredDir || strings.HasPrefix(absPath, w.ignoredDir+string(filepath.Separator)) ||
		strings.HasPrefix(absPath, w.ignoredDir+files.StagingDirSuffix) {
		return true
	}
	relPath, err := filepath.Rel(w.examplesDir, absPath)
	if err != nil {
		return false
	}
	return files.IsExcluded(relPath)
}
