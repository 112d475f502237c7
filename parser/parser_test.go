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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/arith/ast"
	"github.com/bufbuild/arith/parser"
	"github.com/bufbuild/arith/report"
	"github.com/bufbuild/arith/token"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input, want string
	}{
		{"2", "2"},
		{"2 + 3", "(add 2 3)"},
		{"2 + 3 + 4", "(add (add 2 3) 4)"},
		{"--a", "(pre-decrement a)"},
		{"a--", "(post-decrement a)"},
		{"++x", "(pre-increment x)"},
		{"x++ + 1", "(add (post-increment x) 1)"},
		{"-5 + x", "(add (negate 5) x)"},
		{"a + -b", "(add a (negate b))"},
		{"-(a + b)", "(negate (group (add a b)))"},
		{`"s" + 's'`, `(add "s" 's')`},
		{"'a\nb' + 1", `(add "'a\nb'" 1)`},
		{"(1 + (2 + 3))", "(group (add 1 (group (add 2 3))))"},
		{"(x)++", "(post-increment (group x))"},
		{"++(x + 1)", "(pre-increment (group (add x 1)))"},
		{"1 +\n  2\n", "(add 1 2)"},
		{"a + b + c + d", "(add (add (add a b) c) d)"},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			t.Parallel()

			expr, err := parser.Parse(test.input)
			require.NoError(t, err)
			assert.Equal(t, test.want, ast.Format(expr))
		})
	}
}

func TestParseTree(t *testing.T) {
	t.Parallel()

	num := func(text string, start int) *ast.Literal {
		return &ast.Literal{Token: token.Token{
			Kind:   token.Number,
			Start:  start,
			End:    start + len(text),
			Line:   1,
			Column: start + 1,
			Text:   text,
		}}
	}

	expr, err := parser.Parse("2 + 3")
	require.NoError(t, err)
	want := &ast.Add{Left: num("2", 0), Right: num("3", 4)}
	if diff := cmp.Diff(ast.Expr(want), expr); diff != "" {
		t.Errorf("unexpected tree (-want +got):\n%s", diff)
	}

	expr, err = parser.Parse("2 + 3 + 4")
	require.NoError(t, err)
	want = &ast.Add{
		Left:  &ast.Add{Left: num("2", 0), Right: num("3", 4)},
		Right: num("4", 8),
	}
	if diff := cmp.Diff(ast.Expr(want), expr); diff != "" {
		t.Errorf("unexpected tree (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		kind  report.ErrorKind
		at    string
		col   int

		// Expected hints, if any, as their kind and the text of their targets.
		hint    report.HintKind
		targets []string
		help    string
	}{
		{
			input: "++x++", kind: report.ErrPrefixAndPostfix, at: "++", col: 4,
			hint: report.HintRemove, targets: []string{"++"}, help: "remove this `++`",
		},
		{
			input: "--x--", kind: report.ErrPrefixAndPostfix, at: "--", col: 4,
			hint: report.HintRemove, targets: []string{"--"}, help: "remove this `--`",
		},
		{
			input: "++x--", kind: report.ErrPrefixAndPostfix, at: "--", col: 4,
			hint: report.HintRemove, targets: []string{"--"}, help: "remove this `--`",
		},
		{
			input: "(2 + 3", kind: report.ErrUnclosedGroup, at: "3", col: 6,
			hint: report.HintAdd, targets: []string{"3"}, help: "insert `)` after `3`",
		},
		{
			input: "(2 + 3 4", kind: report.ErrUnclosedGroup, at: "3", col: 6,
			hint: report.HintAdd, targets: []string{"3"}, help: "insert `)` after `3`",
		},
		{
			input: "((a)", kind: report.ErrUnclosedGroup, at: "a", col: 3,
			hint: report.HintAdd, targets: []string{"a"}, help: "insert `)` after `a`",
		},
		{
			input: "2 +", kind: report.ErrUnexpectedEOF, at: "", col: 4,
		},
		{
			input: "", kind: report.ErrUnexpectedEOF, at: "", col: 1,
		},
		{
			input: ")", kind: report.ErrExpectedExpression, at: ")", col: 1,
			hint: report.HintRemove, targets: []string{")"}, help: "remove this `)`",
		},
		{
			input: "- -x", kind: report.ErrExpectedExpression, at: "-", col: 3,
			hint: report.HintRemove, targets: []string{"-"}, help: "remove this `-`",
		},
		{
			input: `"abc`, kind: report.ErrUnterminatedString, at: `"abc`, col: 1,
			hint: report.HintAdd, targets: []string{`"abc`}, help: "insert `\"` to close the string",
		},
		{
			input: "1 + @", kind: report.ErrUnrecognized, at: "@", col: 5,
			hint: report.HintRemove, targets: []string{"@"}, help: "remove this character",
		},
		{
			input: "x + é", kind: report.ErrUnrecognized, at: "é", col: 5,
			hint: report.HintRemove, targets: []string{"é"}, help: "remove this character",
		},
		{
			input: "x + \xff", kind: report.ErrUnrecognized, at: "\xff", col: 5,
			hint: report.HintRemove, targets: []string{"\xff"}, help: "remove this byte",
		},
		{
			input: "2 3", kind: report.ErrTrailingTokens, at: "3", col: 3,
			hint: report.HintRemove, targets: []string{"3"}, help: "remove this `3`",
		},
		{
			input: "2 3 ) +", kind: report.ErrTrailingTokens, at: "3", col: 3,
			hint: report.HintRemove, targets: []string{"3", ")", "+"}, help: "remove these tokens",
		},
		{
			input: "-x++", kind: report.ErrTrailingTokens, at: "++", col: 3,
			hint: report.HintRemove, targets: []string{"++"}, help: "remove this `++`",
		},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			t.Parallel()

			expr, err := parser.Parse(test.input)
			assert.Nil(t, expr)
			require.ErrorIs(t, err, test.kind)

			var syntax *report.SyntaxError
			require.ErrorAs(t, err, &syntax)
			assert.Equal(t, test.at, syntax.At.Text)
			assert.Equal(t, test.col, syntax.At.Column)

			if test.hint == 0 {
				assert.Empty(t, syntax.Hints)
				return
			}
			require.Len(t, syntax.Hints, 1)
			hint := syntax.Hints[0]
			assert.Equal(t, test.hint, hint.Kind)
			assert.Equal(t, test.help, hint.Help)
			assert.Equal(t, syntax.At.Column, hint.Column)

			var targets []string
			for _, target := range hint.Targets {
				targets = append(targets, target.Text)
			}
			assert.Equal(t, test.targets, targets)
		})
	}
}

func TestHintsFixErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input, fixed, want string
	}{
		{"(2 + 3", "(2 + 3)", "(group (add 2 3))"},
		{"++x++", "++x", "(pre-increment x)"},
		{"2 3 4", "2  ", "2"},
		{`"abc`, `"abc"`, `"abc"`},
		{"1 + @2", "1 + 2", "(add 1 2)"},
		{"1 + 日2", "1 + 2", "(add 1 2)"},
		{"(a + b\n", "(a + b)\n", "(group (add a b))"},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			t.Parallel()

			_, err := parser.Parse(test.input)
			var syntax *report.SyntaxError
			require.ErrorAs(t, err, &syntax)
			require.NotEmpty(t, syntax.Hints)

			fixed := syntax.Hints[0].Apply(test.input)
			assert.Equal(t, test.fixed, fixed)

			expr, err := parser.Parse(fixed)
			require.NoError(t, err)
			assert.Equal(t, test.want, ast.Format(expr))
		})
	}
}

func TestParseExpr(t *testing.T) {
	t.Parallel()

	p := parser.New(token.NewTokenizerString("1 + 2 ) x"))
	expr, err := p.ParseExpr()
	require.NoError(t, err)
	assert.Equal(t, "(add 1 2)", ast.Format(expr))
	assert.Equal(t, token.RParen, p.Tokens().Next().Kind)

	// A rejected postfix operator is still consumed.
	p = parser.New(token.NewTokenizerString("++x++ y"))
	_, err = p.ParseExpr()
	require.ErrorIs(t, err, report.ErrPrefixAndPostfix)
	assert.Equal(t, "y", p.Tokens().Next().Text)
}

func TestRenderParseError(t *testing.T) {
	t.Parallel()

	p := parser.New(token.NewTokenizerString("(2 + 3"))
	_, err := p.Parse()

	var syntax *report.SyntaxError
	require.ErrorAs(t, err, &syntax)
	assert.Equal(t,
		"1:6: error[unclosed-group]: missing `)` to close group\n"+
			"(2 + 3\n"+
			"     ^\n"+
			"help: insert `)` after `3`",
		report.Renderer{}.RenderError(p.Tokens(), syntax),
	)
}

func TestUnrecognizedMessage(t *testing.T) {
	t.Parallel()

	_, err := parser.Parse("x + é")
	var syntax *report.SyntaxError
	require.ErrorAs(t, err, &syntax)
	assert.Equal(t, "unrecognized character `é`", syntax.Message)

	_, err = parser.Parse("x + \xff")
	require.ErrorAs(t, err, &syntax)
	assert.Equal(t, "invalid UTF-8 byte `0xff`", syntax.Message)
}
