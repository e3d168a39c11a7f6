// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cogentcore.org/xyzedit/events/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

func TestDefaults(t *testing.T) {
	st := New()
	assert.Equal(t, float32(50), st.BoundingBoxRatio)
	assert.Equal(t, 4, st.DragThreshold)
	assert.Equal(t, key.Control, st.ExtendModifier())
	assert.True(t, st.Hover)
	assert.Equal(t, float32(30), st.Camera.FOV)

	st.ExtendKey = ""
	assert.Equal(t, key.Modifiers(0), st.ExtendModifier())
}

func TestReadPartial(t *testing.T) {
	st := New()
	err := st.Read(strings.NewReader("DragThreshold = 8\nExtendKey = 'Shift'\n\n[Camera]\nFOV = 45\n"))
	require.NoError(t, err)
	assert.Equal(t, 8, st.DragThreshold)
	assert.Equal(t, key.Shift, st.ExtendModifier())
	assert.Equal(t, float32(45), st.Camera.FOV)
	assert.Equal(t, float32(50), st.BoundingBoxRatio, "unset fields keep defaults")

	assert.Error(t, st.Read(strings.NewReader("DragThreshold = 'many'")))
}

func TestSaveOpen(t *testing.T) {
	fnm := filepath.Join(t.TempDir(), "settings.toml")
	st := New()
	st.BoundingBoxRatio = 25
	st.SelectedColor = colornames.Red
	require.NoError(t, st.Save(fnm))

	got, err := Open(fnm)
	require.NoError(t, err)
	assert.Equal(t, st, got)

	_, err = Open(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestClone(t *testing.T) {
	st := New()
	cp := st.Clone()
	assert.Equal(t, st, cp)
	cp.Camera.FOV = 60
	assert.Equal(t, float32(30), st.Camera.FOV)
}

func TestSaveOpenYAML(t *testing.T) {
	fnm := filepath.Join(t.TempDir(), "settings.yaml")
	st := New()
	st.DragThreshold = 7
	st.HoverColor = colornames.Green
	require.NoError(t, st.Save(fnm))

	got, err := Open(fnm)
	require.NoError(t, err)
	assert.Equal(t, st, got)

	assert.True(t, IsYAML("a/b.YML"))
	assert.False(t, IsYAML("a/b.toml"))

	empty := New()
	require.NoError(t, empty.ReadYAML(strings.NewReader("")))
	assert.Equal(t, New(), empty)
}

func TestWatch(t *testing.T) {
	fnm := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, New().Save(fnm))

	loaded := make(chan *Settings, 32)
	sw, err := Watch(fnm, func(st *Settings) { loaded <- st })
	require.NoError(t, err)
	defer sw.Close()

	require.NoError(t, os.WriteFile(fnm, []byte("DragThreshold = 9\n"), 0o644))
	timeout := time.After(5 * time.Second)
	for {
		select {
		case st := <-loaded:
			if st.DragThreshold == 9 {
				return
			}
		case <-timeout:
			t.Fatal("settings were not reloaded")
		}
	}
}

func TestWatchMissingDir(t *testing.T) {
	_, err := Watch(filepath.Join(t.TempDir(), "none", "settings.toml"), func(st *Settings) {})
	assert.Error(t, err)
}
