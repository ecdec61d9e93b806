// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package encoder_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"carvel.dev/shinylive-links/pkg/encoder"
	"github.com/stretchr/testify/require"
)

const fakeShinylive = `#!/bin/sh
if [ "$1" = "--version" ]; then
  echo "shinylive, version 0.5.0"
  exit 0
fi
if [ "$1" != "url" ] || [ "$2" != "encode" ]; then
  echo "unexpected arguments: $*" >&2
  exit 2
fi
shift 2
if [ "$#" -eq 0 ]; then
  echo "no files" >&2
  exit 1
fi
printf '  https://shinylive.io/#code=%s  \n' "$*"
`

func writeScript(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "shinylive")
	require.NoError(t, os.WriteFile(path, []byte(content), 0700))
	return path
}

func TestEncodeTrimsStdout(t *testing.T) {
	enc := encoder.NewShinylive(writeScript(t, fakeShinylive))

	url, err := enc.Encode(context.Background(), []string{"py/app.py", "py/utils.py"})
	require.NoError(t, err)
	require.Equal(t, "https://shinylive.io/#code=py/app.py py/utils.py", url)
}

func TestEncodeNonZeroExit(t *testing.T) {
	script := writeScript(t, fakeShinylive)
	enc := encoder.NewShinylive(script)

	_, err := enc.Encode(context.Background(), nil)
	require.Error(t, err)

	var exitErr *encoder.ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, 1, exitErr.ExitCode)
	require.Equal(t, []string{script, "url", "encode"}, exitErr.Command)
	require.Contains(t, err.Error(), "no files")
}

func TestEncodeNotInstalled(t *testing.T) {
	for _, command := range []string{
		"shinylive-links-test-missing-encoder",
		filepath.Join(t.TempDir(), "missing", "shinylive"),
	} {
		_, err := encoder.NewShinylive(command).Encode(context.Background(), []string{"app.py"})
		require.ErrorIs(t, err, encoder.ErrNotInstalled, command)
	}
}

func TestParseVersion(t *testing.T) {
	v, err := encoder.ParseVersion("shinylive, version 0.10.3\n")
	require.NoError(t, err)
	require.Equal(t, "0.10.3", v.String())

	_, err = encoder.ParseVersion("unknown")
	require.ErrorContains(t, err, "Expected version")
}

func TestRequireAtLeast(t *testing.T) {
	enc := encoder.NewShinylive(writeScript(t, fakeShinylive))

	require.NoError(t, enc.RequireAtLeast(context.Background(), "0.4.1"))
	require.NoError(t, enc.RequireAtLeast(context.Background(), "0.5.0"))
	require.ErrorContains(t, enc.RequireAtLeast(context.Background(), "0.10.0"),
		"does not meet the minimum required version 0.10.0")
	require.ErrorContains(t, enc.RequireAtLeast(context.Background(), "not-a-version"),
		"Parsing minimum encoder version")
}

type recordingUI struct {
	warnings []string
}

func (u *recordingUI) Warnf(str string, args ...interface{}) {
	u.warnings = append(u.warnings, fmt.Sprintf(str, args...))
}

func TestCheckVersion(t *testing.T) {
	script := writeScript(t, fakeShinylive)

	ui := &recordingUI{}
	encoder.CheckVersion(context.Background(), script, "", ui)
	encoder.CheckVersion(context.Background(), script, "0.5.0", ui)
	require.Empty(t, ui.warnings)

	encoder.CheckVersion(context.Background(), script, "1.0.0", ui)
	require.Len(t, ui.warnings, 1)
	require.Contains(t, ui.warnings[0], "does not meet the minimum required version 1.0.0")

	ui = &recordingUI{}
	encoder.CheckVersion(context.Background(), "shinylive-links-test-missing-encoder", "0.1.0", ui)
	require.Len(t, ui.warnings, 1)
	require.Contains(t, ui.warnings[0], "shinylive command not found")
}
