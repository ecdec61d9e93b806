// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package gitsource

import (
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

const (
	RemoteName    = "origin"
	DefaultBranch = "main"
)

var (
	scpLikeURL = regexp.MustCompile(`^(?:[\w.-]+@)?([\w.-]+):([^/].*)$`)
)

// BaseURL returns the web URL of dir inside its repository's origin remote,
// e.g. "https://github.com/o/r/tree/main/examples".
func BaseURL(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	repo, err := git.PlainOpenWithOptions(absDir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("Opening git repository for '%s': %w", dir, err)
	}

	remote, err := repo.Remote(RemoteName)
	if err != nil {
		return "", fmt.Errorf("Finding remote '%s': %w", RemoteName, err)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("Expected remote '%s' to have a URL", RemoteName)
	}

	webURL, err := WebURL(urls[0])
	if err != nil {
		return "", err
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("Opening worktree: %w", err)
	}

	relPath, err := relativeToRoot(worktree.Filesystem.Root(), absDir)
	if err != nil {
		return "", err
	}

	result := webURL + "/tree/" + currentBranch(repo)
	if relPath != "" {
		result += "/" + relPath
	}
	return result, nil
}

// WebURL converts a clone URL (scp-like, ssh:// or http(s)://) into the
// https URL of the repository.
func WebURL(remoteURL string) (string, error) {
	var host, repoPath string

	if m := scpLikeURL.FindStringSubmatch(remoteURL); m != nil && !strings.Contains(remoteURL, "://") {
		host, repoPath = m[1], m[2]
	} else {
		parsed, err := url.Parse(remoteURL)
		if err != nil {
			return "", fmt.Errorf("Parsing remote URL '%s': %w", remoteURL, err)
		}
		switch parsed.Scheme {
		case "https", "http", "ssh", "git":
		default:
			return "", fmt.Errorf("Expected remote URL '%s' to use one of schemes https, http, ssh, git", remoteURL)
		}
		host, repoPath = parsed.Hostname(), parsed.Path
	}

	repoPath = strings.TrimSuffix(strings.Trim(repoPath, "/"), ".git")
	if host == "" || repoPath == "" {
		return "", fmt.Errorf("Expected remote URL '%s' to name a host and repository", remoteURL)
	}

	return "https://" + host + "/" + repoPath, nil
}

// currentBranch reads HEAD without requiring any commit to exist.
func currentBranch(repo *git.Repository) string {
	ref, err := repo.Storer.Reference(plumbing.HEAD)
	if err != nil {
		return DefaultBranch
	}
	switch {
	case ref.Type() == plumbing.SymbolicReference && ref.Target().IsBranch():
		return ref.Target().Short()
	case ref.Name().IsBranch():
		return ref.Name().Short()
	default:
		return DefaultBranch
	}
}

func relativeToRoot(root, dir string) (string, error) {
	resolvedRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		return "", fmt.Errorf("Resolving repository root '%s': %w", root, err)
	}
	resolvedDir, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return "", fmt.Errorf("Resolving directory '%s': %w", dir, err)
	}

	rel, err := filepath.Rel(resolvedRoot, resolvedDir)
	if err != nil {
		return "", err
	}
	if rel == "." {
		return "", nil
	}
	return path.Clean(filepath.ToSlash(rel)), nil
}
