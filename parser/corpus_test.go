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

package parser_test

import (
	"errors"
	"testing"

	"github.com/bufbuild/arith/ast"
	"github.com/bufbuild/arith/internal/corpora"
	"github.com/bufbuild/arith/parser"
	"github.com/bufbuild/arith/report"
	"github.com/bufbuild/arith/token"
)

func TestCorpus(t *testing.T) {
	t.Parallel()

	corpus := corpora.Corpus{
		Root:      "testdata",
		Refresh:   "ARITH_REFRESH",
		Extension: "arith",
		Outputs: []corpora.Output{
			{Extension: "ast"},
			{Extension: "stderr"},
		},
		Test: func(t *testing.T, _, text string) []string {
			p := parser.New(token.NewTokenizerString(text))
			expr, err := p.Parse()
			if err == nil {
				return []string{ast.Format(expr) + "\n", ""}
			}

			var syntax *report.SyntaxError
			if !errors.As(err, &syntax) {
				t.Fatalf("unexpected error type %T: %v", err, err)
			}
			t.Log("\n" + report.Renderer{Styles: report.ANSI}.RenderError(p.Tokens(), syntax))
			return []string{"", report.Renderer{}.RenderError(p.Tokens(), syntax) + "\n"}
		},
	}

	corpus.Run(t)
}
