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

package token

import "fmt"

// Token is a lexical element of an expression.
//
// Tokens are plain values: they can be copied freely, and they refer to the
// source text they were scanned from rather than owning a copy of it.
type Token struct {
	Kind Kind

	// Byte offsets of the lexeme. Start is inclusive, End is exclusive, and
	// End-Start is always len(Text).
	Start, End int

	// The position of the first byte of the lexeme, 1-indexed.
	Line, Column int

	// The raw lexeme, including the quotes of a string.
	Text string

	// Set if at least one '\n' was skipped between the previous token and
	// this one.
	AfterNewline bool
}

// IsZero returns whether this is the zero Token.
func (t Token) IsZero() bool {
	return t == Token{}
}

// Len returns the length of the lexeme in bytes.
func (t Token) Len() int {
	return t.End - t.Start
}

// Value returns the semantic contents of this token.
//
// For [String] tokens, this is the text between the quotes. For
// [UnterminatedString] tokens, this is everything after the opening quote.
// For all other kinds, this is the same as Text.
func (t Token) Value() string {
	switch t.Kind {
	case String:
		return t.Text[1 : len(t.Text)-1]
	case UnterminatedString:
		return t.Text[1:]
	default:
		return t.Text
	}
}

// String implements [fmt.Stringer].
func (t Token) String() string {
	return fmt.Sprintf("%v%q@%d:%d[%d:%d]", t.Kind, t.Text, t.Line, t.Column, t.Start, t.End)
}
