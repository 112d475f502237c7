// Copyright 2020-2025 Buf Technologies, Inc.
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

// Package cmd implements the arithc command line.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/bufbuild/arith/internal/config"
	"github.com/bufbuild/arith/report"
)

// ErrFailed is returned by a command when some input had syntax errors.
// The errors themselves have already been printed.
var ErrFailed = errors.New("one or more inputs had errors")

// app is the state shared by every subcommand.
type app struct {
	stdout, stderr io.Writer

	configPath string
	verbose    bool
	cfg        config.Config

	log      *slog.Logger
	renderer report.Renderer
}

// NewRootCommand returns the arithc command, writing output to stdout and
// logs to stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		stdout: stdout,
		stderr: stderr,
		cfg:    config.Default(),
	}

	root := &cobra.Command{
		Use:   "arithc",
		Short: "Scan, parse and check arithmetic expressions",
		Long: `arithc scans, parses and checks arithmetic expressions.

Expressions are made of numbers, identifiers and quoted strings, combined
with parentheses, unary -, prefix and postfix ++ and --, and binary +.
Syntax errors are reported against the source, with suggested fixes.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (.yaml, .yml or .toml)")
	flags.StringVar(&a.cfg.Color, "color", a.cfg.Color, "when to color diagnostics: auto, always or never")
	flags.BoolVar(&a.cfg.Compact, "compact", a.cfg.Compact, "print each diagnostic on a single line")
	flags.StringVar(&a.cfg.Format, "format", a.cfg.Format, "diagnostic format: text or json")
	flags.IntVarP(&a.cfg.Jobs, "jobs", "j", a.cfg.Jobs, "files to check at once; 0 means one per CPU")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log debugging output")

	root.AddCommand(
		a.tokensCommand(),
		a.parseCommand(),
		a.checkCommand(),
	)
	return root
}

// setup loads configuration and builds the logger and renderer. Flags set on
// the command line win over the config file.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))

	if a.configPath != "" {
		file, err := config.Load(a.configPath)
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		if !flags.Changed("color") {
			a.cfg.Color = file.Color
		}
		if !flags.Changed("compact") {
			a.cfg.Compact = file.Compact
		}
		if !flags.Changed("format") {
			a.cfg.Format = file.Format
		}
		if !flags.Changed("jobs") {
			a.cfg.Jobs = file.Jobs
		}
		a.log.Debug("loaded config", slog.String("path", a.configPath))
	}

	if err := a.cfg.Validate(); err != nil {
		return err
	}
	if a.cfg.Jobs == 0 {
		a.cfg.Jobs = runtime.NumCPU()
	}

	a.renderer = report.Renderer{
		Compact: a.cfg.Compact,
		Styles:  newStylesheet(a.stdout, a.cfg.Color),
	}
	a.log.Debug("configured",
		slog.String("color", a.cfg.Color),
		slog.Bool("compact", a.cfg.Compact),
		slog.String("format", a.cfg.Format),
		slog.Int("jobs", a.cfg.Jobs),
	)
	return nil
}

// report prints a syntax error found in src. If path is not empty, it names
// the file src was read from.
func (a *app) report(src report.Source, path string, err *report.SyntaxError) error {
	if a.cfg.Format == "json" {
		msg, protoErr := report.ToProto(err)
		if protoErr != nil {
			return fmt.Errorf("encoding diagnostic: %w", protoErr)
		}
		if path != "" {
			msg.Fields["path"] = structpb.NewStringValue(path)
		}
		data, protoErr := protojson.Marshal(msg)
		if protoErr != nil {
			return fmt.Errorf("encoding diagnostic: %w", protoErr)
		}
		_, writeErr := fmt.Fprintln(a.stdout, string(data))
		return writeErr
	}

	text := a.renderer.RenderError(src, err)
	if path != "" {
		text = path + ":" + text
	}
	_, writeErr := fmt.Fprintln(a.stdout, text)
	return writeErr
}

// readInput returns arg, or all of standard input if arg is "-".
func readInput(cmd *cobra.Command, arg string) (string, error) {
	if arg != "-" {
		return arg, nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading standard input: %w", err)
	}
	return string(data), nil
}

