// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/xyzedit/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, levelFromFlags(true, false, true))
	assert.Equal(t, slog.LevelInfo, levelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, levelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, levelFromFlags(false, false, false))
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSettingsCommand(t *testing.T) {
	out, err := execute(t, "settings")
	require.NoError(t, err)
	st := &settings.Settings{}
	require.NoError(t, st.Read(bytes.NewBufferString(out)))
	assert.Equal(t, settings.New(), st)

	fn := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(fn, []byte("DragThreshold = 9\n"), 0o644))
	out, err = execute(t, "--settings", fn, "settings")
	require.NoError(t, err)
	assert.Contains(t, out, "DragThreshold = 9")

	_, err = execute(t, "--settings", filepath.Join(t.TempDir(), "missing.toml"), "settings")
	assert.Error(t, err)

	out, err = execute(t, "settings", "--yaml")
	require.NoError(t, err)
	st = settings.New()
	require.NoError(t, st.ReadYAML(bytes.NewBufferString(out)))
	assert.Equal(t, settings.New(), st)

	_, err = execute(t, "settings", "--watch")
	assert.Error(t, err)
}

func TestWatchSettings(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, settings.New().Save(fn))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	assert.NoError(t, watchSettings(ctx, &buf, fn, false))
	assert.Empty(t, buf.String())
}

func TestDemo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runDemo(&buf, settings.New()))
	out := buf.String()
	assert.Contains(t, out, "selection changed: [cube]")
	assert.Contains(t, out, "state Selected, 2 manipulators")
	assert.Contains(t, out, "dragged SideLength")
	assert.Contains(t, out, "dragged Rotation")
	assert.Contains(t, out, `label "cube"`)
	assert.Contains(t, out, "state Default, selection []")
}

func TestDemoCommand(t *testing.T) {
	out, err := execute(t, "-q", "demo")
	require.NoError(t, err)
	assert.Contains(t, out, "side length")
}
