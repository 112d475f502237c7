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

package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bufbuild/arith/parser"
	"github.com/bufbuild/arith/report"
	"github.com/bufbuild/arith/token"
)

func (a *app) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check GLOB...",
		Short: "Check files of expressions for syntax errors",
		Long: `Check files of expressions for syntax errors.

Each non-blank line of each file is parsed as one expression. Globs may use
** to match any number of directories. Files are checked in parallel, up to
--jobs at a time; diagnostics are printed in file name order.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := expandGlobs(args)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return fmt.Errorf("no files match %s", strings.Join(args, " "))
			}

			results := make([][]diagnostic, len(files))
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(a.cfg.Jobs)
			for i, path := range files {
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					data, err := os.ReadFile(path)
					if err != nil {
						return fmt.Errorf("reading %s: %w", path, err)
					}
					results[i] = checkText(string(data))
					a.log.Debug("checked file", slog.String("path", path), slog.Int("errors", len(results[i])))
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			var failed int
			for i, path := range files {
				for _, d := range results[i] {
					if err := a.report(d.src, path, d.err); err != nil {
						return err
					}
					failed++
				}
			}
			a.log.Debug("check finished", slog.Int("files", len(files)), slog.Int("errors", failed))
			if failed > 0 {
				return ErrFailed
			}
			return nil
		},
	}
}

// diagnostic is a syntax error along with the source it refers to.
type diagnostic struct {
	src *token.Tokenizer
	err *report.SyntaxError
}

// checkText parses each non-blank line of text as a separate expression.
//
// Each line gets its own tokenizer, which ends at that line's end but
// starts at the beginning of the text, so that positions in diagnostics are
// relative to the whole text.
func checkText(text string) []diagnostic {
	var diags []diagnostic

	// Cursor at the start of the previous line. Every tokenizer below scans a
	// prefix of text, so it can be moved between them.
	at := token.NewTokenizerString(text).Mark()
	for start := 0; start < len(text); {
		end := strings.IndexByte(text[start:], '\n')
		if end < 0 {
			end = len(text)
		} else {
			end += start
		}

		tokens := token.NewTokenizerString(text[:end])
		tokens.Rewind(at)
		tokens.SkipTo(start)
		at = tokens.Mark()

		if tokens.Peek().Kind != token.EOF {
			_, err := parser.New(tokens).Parse()
			var syntax *report.SyntaxError
			if errors.As(err, &syntax) {
				diags = append(diags, diagnostic{tokens, syntax})
			}
		}
		start = end + 1
	}
	return diags
}

// expandGlobs returns the sorted, de-duplicated files that match any of
// patterns.
func expandGlobs(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("bad glob %q: %w", pattern, err)
		}
		files = append(files, matches...)
	}
	slices.Sort(files)
	return slices.Compact(files), nil
}
