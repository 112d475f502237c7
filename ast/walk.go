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

package ast

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Walk conducts a depth-first traversal of the tree rooted at e, calling
// enter on each node before visiting its children and exit after. exit may
// be nil.
//
// If either function returns an error, the walk stops and that error is
// returned.
func Walk(e Expr, enter, exit func(Expr) error) error {
	if err := enter(e); err != nil {
		return err
	}
	for _, child := range Children(e) {
		if err := Walk(child, enter, exit); err != nil {
			return err
		}
	}
	if exit != nil {
		if err := exit(e); err != nil {
			return err
		}
	}
	return nil
}

// Format renders e as an s-expression. Literals are printed as their source
// text, and every other node as a parenthesized list headed by its kind.
// A literal whose text would break the output onto several lines, such as a
// string spanning a newline, is printed Go-quoted instead:
//
//	2 + (x++ + 3)
//	(add 2 (group (add (post-increment x) 3)))
func Format(e Expr) string {
	var out strings.Builder
	_ = Walk(e,
		func(e Expr) error {
			if out.Len() > 0 {
				out.WriteByte(' ')
			}
			if lit, ok := e.(*Literal); ok {
				out.WriteString(literalText(lit.Token.Text))
				return nil
			}
			out.WriteByte('(')
			out.WriteString(e.Kind().String())
			return nil
		},
		func(e Expr) error {
			if e.Kind() != KindLiteral {
				out.WriteByte(')')
			}
			return nil
		},
	)
	return out.String()
}

func literalText(text string) string {
	if !utf8.ValidString(text) || strings.ContainsFunc(text, unicode.IsControl) {
		return strconv.Quote(text)
	}
	return text
}
