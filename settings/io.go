// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// IsYAML returns whether the file name has a YAML extension.
// All other files are TOML.
func IsYAML(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Read reads TOML settings from the reader on top of the current values.
func (st *Settings) Read(r io.Reader) error {
	return toml.NewDecoder(r).Decode(st)
}

// Write writes the settings as TOML.
func (st *Settings) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(st)
}

// ReadYAML reads YAML settings from the reader on top of the current values.
func (st *Settings) ReadYAML(r io.Reader) error {
	err := yaml.NewDecoder(r).Decode(st)
	if err == io.EOF {
		return nil
	}
	return err
}

// WriteYAML writes the settings as YAML.
func (st *Settings) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(st); err != nil {
		return err
	}
	return enc.Close()
}

// Open returns default settings updated from the file, which is YAML
// if it has a YAML extension and TOML otherwise. A leading ~ in the
// file name is the home directory.
func Open(filename string) (*Settings, error) {
	st := New()
	fn, err := homedir.Expand(filename)
	if err != nil {
		return st, fmt.Errorf("settings.Open: %w", err)
	}
	fp, err := os.Open(fn)
	if err != nil {
		return st, fmt.Errorf("settings.Open: %w", err)
	}
	defer fp.Close()
	br := bufio.NewReader(fp)
	if IsYAML(fn) {
		err = st.ReadYAML(br)
	} else {
		err = st.Read(br)
	}
	if err != nil {
		return st, fmt.Errorf("settings.Open %q: %w", filename, err)
	}
	return st, nil
}

// Save writes the settings to the file, as YAML if it has a YAML
// extension and TOML otherwise.
func (st *Settings) Save(filename string) error {
	fn, err := homedir.Expand(filename)
	if err != nil {
		return fmt.Errorf("settings.Save: %w", err)
	}
	fp, err := os.Create(fn)
	if err != nil {
		return fmt.Errorf("settings.Save: %w", err)
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	if IsYAML(fn) {
		err = st.WriteYAML(bw)
	} else {
		err = st.Write(bw)
	}
	if err != nil {
		return fmt.Errorf("settings.Save %q: %w", filename, err)
	}
	return bw.Flush()
}
