// Copyright 2026 Trevor Strong
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cli implements the bracefmt command.
package cli

import (
	"context"
	"io"
	"log/slog"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/Trevor-Strong/bracefmt/internal/logging"
)

// app is the state shared by every subcommand.
type app struct {
	stdout, stderr io.Writer

	configPath string
	logLevel   string
	logFormat  string
	jobs       int
	surrogates bool
	overlong   bool
	cells      bool

	cfg    *Config
	logger *slog.Logger
}

// Execute runs the command line args, writing output to stdout and
// diagnostics to stderr.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cmd := NewRootCommand(stdout, stderr)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

// NewRootCommand builds the bracefmt command tree.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr, logger: logging.Nop()}

	root := &cobra.Command{
		Use:   "bracefmt",
		Short: "Check, inspect and render {...} templates",
		Long: `bracefmt works with text templates whose placeholders are written in braces,
such as "Hello, {[name]:>8}!".

Configuration is read from --config, or else from .bracefmt.yaml in the
working directory. Flags override the config file.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default .bracefmt.yaml, if present)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.StringVar(&a.logFormat, "log-format", "", "log format: text or json")
	flags.IntVarP(&a.jobs, "jobs", "j", 0, "files to process at once (default: number of CPUs)")
	flags.BoolVar(&a.surrogates, "allow-surrogates", false, "accept encoded surrogates (WTF-8)")
	flags.BoolVar(&a.overlong, "allow-overlong", false, "accept overlong encodings")
	flags.BoolVar(&a.cells, "cells", false, "measure widths in terminal cells")

	root.AddCommand(
		a.checkCommand(),
		a.tokensCommand(),
		a.renderCommand(),
	)
	return root
}

// setup loads the config file and applies flag overrides.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	path := a.configPath
	if path == "" {
		path = FindLocalConfig("")
	}

	a.cfg = new(Config)
	if path != "" {
		cfg, err := LoadConfig(path)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}

	changed := cmd.Flags().Changed
	if changed("log-level") {
		a.cfg.Log.Level = a.logLevel
	}
	if changed("log-format") {
		a.cfg.Log.Format = a.logFormat
	}
	if changed("jobs") {
		a.cfg.Jobs = a.jobs
	}
	if changed("allow-surrogates") {
		a.cfg.AllowSurrogates = a.surrogates
	}
	if changed("allow-overlong") {
		a.cfg.AllowOverlong = a.overlong
	}
	if changed("cells") {
		a.cfg.TerminalCells = a.cells
	}
	if a.cfg.Jobs <= 0 {
		a.cfg.Jobs = runtime.NumCPU()
	}

	logCfg, err := a.cfg.Logging(a.stderr)
	if err != nil {
		return err
	}
	a.logger = logging.New(logCfg)
	a.logger.Debug("configured", "config", path, "jobs", a.cfg.Jobs, "utf8", a.cfg.UTF8())
	return nil
}
