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

package parser

import (
	"fmt"
	"slices"
	"unicode/utf8"

	"github.com/bufbuild/arith/ast"
	"github.com/bufbuild/arith/report"
	"github.com/bufbuild/arith/token"
)

// errUnclosedGroup diagnoses a parenthesized expression that is not followed
// by a ")". The error points at the end of the expression, where the ")"
// belongs, rather than at whatever came next.
func errUnclosedGroup(inner ast.Expr) *report.SyntaxError {
	last := ast.LastToken(inner)
	return report.Errorf(report.ErrUnclosedGroup, last, "missing `)` to close group").With(
		report.SuggestInsert(last, ")", fmt.Sprintf("insert `)` after `%s`", last.Text)),
	)
}

func errPrefixAndPostfix(prefix, postfix token.Token) *report.SyntaxError {
	return report.Errorf(report.ErrPrefixAndPostfix, postfix,
		"operand of prefix `%s` cannot also have a postfix `%s`", prefix.Text, postfix.Text,
	).With(
		report.SuggestRemove(postfix, fmt.Sprintf("remove this `%s`", postfix.Text)),
	)
}

func errExpectedExpression(got token.Token) *report.SyntaxError {
	return report.Errorf(report.ErrExpectedExpression, got, "expected an expression, found `%s`", got.Text).With(
		report.SuggestRemove(got, fmt.Sprintf("remove this `%s`", got.Text)),
	)
}

func errUnexpectedEOF(eof token.Token) *report.SyntaxError {
	return report.Errorf(report.ErrUnexpectedEOF, eof, "unexpected end of input, expected an expression")
}

func errUnterminatedString(str token.Token) *report.SyntaxError {
	quote := str.Text[:1]
	return report.Errorf(report.ErrUnterminatedString, str, "unterminated string literal").With(
		report.SuggestInsert(str, quote, fmt.Sprintf("insert `%s` to close the string", quote)),
	)
}

func errUnrecognized(got token.Token) *report.SyntaxError {
	if !utf8.ValidString(got.Text) {
		return report.Errorf(report.ErrUnrecognized, got, "invalid UTF-8 byte `%#02x`", got.Text[0]).With(
			report.SuggestRemove(got, "remove this byte"),
		)
	}
	return report.Errorf(report.ErrUnrecognized, got, "unrecognized character `%s`", got.Text).With(
		report.SuggestRemove(got, "remove this character"),
	)
}

// errTrailing diagnoses tokens left over after a complete expression. first
// has already been consumed; the rest are drained from tokens.
func errTrailing(first token.Token, tokens *token.Tokenizer) *report.SyntaxError {
	rest := slices.Collect(tokens.All())

	help := fmt.Sprintf("remove this `%s`", first.Text)
	if len(rest) > 0 {
		help = "remove these tokens"
	}

	return report.Errorf(report.ErrTrailingTokens, first, "unexpected `%s` after expression", first.Text).With(
		report.SuggestRemove(first, help, rest...),
	)
}
