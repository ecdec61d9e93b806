// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package examples

import (
	"regexp"
	"unicode"
)

const (
	DefaultDescription = "Shiny React example application"
	MetadataFileName   = "package.json"
)

var (
	idPattern = regexp.MustCompile(`^(\d+)-`)
)

// App describes one example as it is presented on the index page.
type App struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	DeployToShinylive bool   `json:"deployToShinylive"`
	Comment           string `json:"comment"`
}

// NewDefaultApp returns the metadata used when an example carries none.
func NewDefaultApp(id string) App {
	return App{
		ID:                id,
		Title:             DefaultTitle(id),
		Description:       DefaultDescription,
		DeployToShinylive: true,
	}
}

// Number returns the leading integer of the example ID ("" if there is none).
func (a App) Number() string {
	if m := idPattern.FindStringSubmatch(a.ID); m != nil {
		return m[1]
	}
	return ""
}

// DisplayTitle prefixes the title with the example number, e.g. "1. Hello World".
func (a App) DisplayTitle() string {
	if n := a.Number(); n != "" {
		return n + ". " + a.Title
	}
	return a.Title
}

// IsExampleID reports whether name follows the "<integer>-<name>" convention.
func IsExampleID(name string) bool { return idPattern.MatchString(name) }

// DefaultTitle turns "1-hello-world" into "1 Hello World".
//
// A rune following a cased rune is lower-cased; any other rune is
// title-cased. Letters without case (e.g. CJK) and digits do not start
// or continue a word.
func DefaultTitle(id string) string {
	runes := []rune(id)
	prevCased := false
	for i, r := range runes {
		if r == '-' {
			r = ' '
		}
		if prevCased {
			r = unicode.ToLower(r)
		} else {
			r = unicode.ToTitle(r)
		}
		prevCased = isCased(r)
		runes[i] = r
	}
	return string(runes)
}

func isCased(r rune) bool {
	return unicode.IsUpper(r) || unicode.IsLower(r) || unicode.IsTitle(r)
}
