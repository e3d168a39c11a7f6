// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command xyzedit runs headless 3D editing interactions and prints
// the resulting state.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"cogentcore.org/xyzedit/settings"
	"github.com/spf13/cobra"
)

// flags are the global command line flags.
type flags struct {
	settings string
	vv       bool
	v        bool
	q        bool
}

// levelFromFlags returns the log level for the verbosity flags,
// evaluated in order vv, v, q. The default is Warn.
func levelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// loadSettings returns the settings from the file, or defaults
// if there is no file.
func (fl *flags) loadSettings() (*settings.Settings, error) {
	if fl.settings == "" {
		return settings.New(), nil
	}
	return settings.Open(fl.settings)
}

func newRootCmd() *cobra.Command {
	fl := &flags{}
	root := &cobra.Command{
		Use:           "xyzedit",
		Short:         "Interactive 3D editing core, run headless",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: levelFromFlags(fl.vv, fl.v, fl.q)})
			slog.SetDefault(slog.New(h))
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&fl.settings, "settings", "", "TOML or YAML settings file")
	pf.BoolVar(&fl.vv, "vv", false, "debug output")
	pf.BoolVarP(&fl.v, "verbose", "v", false, "verbose output")
	pf.BoolVarP(&fl.q, "quiet", "q", false, "only show errors")

	root.AddCommand(&cobra.Command{
		Use:   "demo",
		Short: "Run a scripted selection and manipulation session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := fl.loadSettings()
			if err != nil {
				return err
			}
			return runDemo(cmd.OutOrStdout(), st)
		},
	})
	root.AddCommand(newSettingsCmd(fl))
	return root
}

// printSettings writes the settings as TOML, or YAML.
func printSettings(w io.Writer, st *settings.Settings, asYAML bool) error {
	if asYAML {
		return st.WriteYAML(w)
	}
	return st.Write(w)
}

func newSettingsCmd(fl *flags) *cobra.Command {
	var asYAML, watch bool
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Print the settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := fl.loadSettings()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if err := printSettings(out, st, asYAML); err != nil {
				return err
			}
			if !watch {
				return nil
			}
			if fl.settings == "" {
				return errors.New("--watch needs a --settings file")
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return watchSettings(ctx, out, fl.settings, asYAML)
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print as YAML")
	cmd.Flags().BoolVar(&watch, "watch", false, "print again every time the settings file changes")
	return cmd
}

// watchSettings prints the settings file every time it changes,
// until the context is done.
func watchSettings(ctx context.Context, w io.Writer, filename string, asYAML bool) error {
	changed := make(chan *settings.Settings, 1)
	sw, err := settings.Watch(filename, func(st *settings.Settings) {
		select {
		case changed <- st:
		case <-ctx.Done():
		}
	})
	if err != nil {
		return err
	}
	defer sw.Close()
	for {
		select {
		case <-ctx.Done():
			return nil
		case st := <-changed:
			fmt.Fprintln(w, "# reloaded", sw.Filename)
			if err := printSettings(w, st, asYAML); err != nil {
				return err
			}
		}
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "xyzedit:", err)
		os.Exit(1)
	}
}
