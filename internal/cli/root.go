// seehuhn.de/go/slotdots - decorative dots for rounded slot borders
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"seehuhn.de/go/slotdots"
	"seehuhn.de/go/slotdots/internal/config"
	"seehuhn.de/go/slotdots/internal/logger"
	"seehuhn.de/go/slotdots/presets"
)

// Exit codes. Every error kind gets its own code so that build scripts
// can tell a missing anchor from a bad configuration.
const (
	ExitOK             = 0
	ExitFailure        = 1
	ExitInvalidConfig  = 2
	ExitAnchorNotFound = 3
	ExitIO             = 4
	ExitAlreadyPatched = 5
)

func Execute() {
	cmd := newRootCmd()
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "✗", err)
	}
	os.Exit(ExitCode(err))
}

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, slotdots.ErrInvalidConfig):
		return ExitInvalidConfig
	case errors.Is(err, slotdots.ErrAnchorNotFound):
		return ExitAnchorNotFound
	case errors.Is(err, slotdots.ErrAlreadyPatched):
		return ExitAlreadyPatched
	case errors.Is(err, slotdots.ErrIO):
		return ExitIO
	}
	return ExitFailure
}

// globalOptions are the persistent flags shared by all subcommands.
type globalOptions struct {
	configPath string
	preset     string
	debug      bool
	logFile    string
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	var cleanup func() error

	cmd := &cobra.Command{
		Use:           "slotdots",
		Short:         "Place decorative dots on the rounded corners of a slot border",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			c, err := logger.Setup(logger.Config{
				Path:  opts.logFile,
				Debug: opts.debug,
			})
			if err != nil {
				return &slotdots.OpError{Op: "logger.setup", Kind: slotdots.KindIO, Path: opts.logFile, Err: err}
			}
			cleanup = c
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if cleanup != nil {
				return cleanup()
			}
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "YAML file overriding the slot geometry")
	pf.StringVarP(&opts.preset, "preset", "p", "light_bulb", "named base configuration")
	pf.BoolVar(&opts.debug, "debug", false, "enable verbose logging")
	pf.StringVar(&opts.logFile, "log-file", "", "append log records to this file instead of standard error")

	cmd.AddCommand(
		analyzeCmd(opts),
		dotsCmd(opts),
		patchCmd(opts),
		reportCmd(opts),
		previewCmd(opts),
		presetsCmd(),
	)
	return cmd
}

// loadLayout builds the layout selected by the global flags.
// Configuration problems surface here, before any file is touched.
func (o *globalOptions) loadLayout() (*slotdots.Layout, error) {
	base, ok := presets.Get(o.preset)
	if !ok {
		return nil, &slotdots.OpError{
			Op:   "cli.preset",
			Kind: slotdots.KindInvalidConfig,
			Err:  fmt.Errorf("unknown preset %q", o.preset),
		}
	}

	cfg := base
	if o.configPath != "" {
		var err error
		cfg, err = config.Load(o.configPath, base)
		if err != nil {
			return nil, err
		}
	}

	l, err := slotdots.NewLayout(cfg)
	if err != nil {
		return nil, err
	}
	logger.L().Debug("layout.ready",
		"preset", o.preset,
		"config", o.configPath,
		"arc_radius", l.Corners.ArcRadius,
		"dots_per_corner", l.DotCount)
	return l, nil
}
