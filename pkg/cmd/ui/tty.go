// Copyright 2020 VMware, Inc.
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

type TTY struct {
	debug  bool
	stdout io.Writer
	logger *slog.Logger
}

var _ UI = TTY{}

func NewTTY(debug bool) TTY {
	return NewCustomWriterTTY(debug, os.Stdout, os.Stderr)
}

func (t TTY) Printf(str string, args ...interface{}) {
	fmt.Fprintf(t.stdout, str, args...)
}

func (t TTY) Warnf(str string, args ...interface{}) {
	t.logger.Warn(strings.TrimSpace(fmt.Sprintf(str, args...)))
}

func (t TTY) Debugf(str string, args ...interface{}) {
	if t.debug {
		t.logger.Debug(strings.TrimSpace(fmt.Sprintf(str, args...)))
	}
}

// Used for testing whether TTY writes correct output to stdout/stderr
func NewCustomWriterTTY(debug bool, stdout, stderr io.Writer) TTY {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return TTY{debug, stdout, newLogger(debug, stderr)}
}

func newLogger(debug bool, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	color := false
	if f, ok := w.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd())
		w = colorable.NewColorable(f)
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
		NoColor:    !color,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Timestamps only help when a human watches the run.
			if !color && a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	}))
}
