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

	"github.com/spf13/cobra"

	"github.com/bufbuild/arith/ast"
	"github.com/bufbuild/arith/parser"
	"github.com/bufbuild/arith/report"
	"github.com/bufbuild/arith/token"
)

func (a *app) parseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse EXPR",
		Short: "Parse an expression and print its syntax tree",
		Long: `Parse an expression and print its syntax tree as an s-expression,
or the syntax error that stopped the parse. Pass - to read standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			p := parser.New(token.NewTokenizerString(text))
			expr, err := p.Parse()
			if err != nil {
				var syntax *report.SyntaxError
				if !errors.As(err, &syntax) {
					return err
				}
				if err := a.report(p.Tokens(), "", syntax); err != nil {
					return err
				}
				return ErrFailed
			}

			_, err = fmt.Fprintln(a.stdout, ast.Format(expr))
			return err
		},
	}
}
