// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package encoder

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strings"
)

// ErrNotInstalled is returned when the encoder command cannot be found.
var ErrNotInstalled = errors.New("shinylive command not found")

// Encoder encodes files into a URL.
type Encoder interface {
	Encode(ctx context.Context, files []string) (string, error)
}

// ExitError is returned when the encoder command ran but failed.
type ExitError struct {
	Command  []string
	Files    []string
	ExitCode int
	Stderr   string
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("Command '%s' exited with status %d", strings.Join(e.Command, " "), e.ExitCode)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	}
	return msg
}

type Shinylive struct {
	command string
}

var _ Encoder = Shinylive{}

// NewShinylive returns an Encoder running command (e.g. "shinylive" or an
// absolute path to it).
func NewShinylive(command string) Shinylive { return Shinylive{command} }

func (s Shinylive) Encode(ctx context.Context, files []string) (string, error) {
	args := append([]string{"url", "encode"}, files...)

	out, err := s.run(ctx, files, args...)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(out), nil
}

func (s Shinylive) run(ctx context.Context, files []string, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, s.command, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotInstalled, s.command)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &ExitError{
				Command:  append([]string{s.command}, args...),
				Files:    files,
				ExitCode: exitErr.ExitCode(),
				Stderr:   stderr.String(),
			}
		}
		return "", fmt.Errorf("Running '%s': %w", s.command, err)
	}

	return stdout.String(), nil
}
