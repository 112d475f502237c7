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

const (
	EOF Kind = iota // The end of the input. Always zero-width.

	Number             // A run of ASCII digits.
	String             // A quoted string, e.g. "foo" or 'foo'. No escapes are recognized.
	UnterminatedString // A quoted string that reached the end of the input before its closing quote.
	Ident              // An ASCII letter followed by ASCII letters and digits.
	LParen             // (
	RParen             // )
	Plus               // +
	Increment          // ++
	Minus              // -
	Decrement          // --
	Unrecognized       // A character (or invalid byte) that does not begin any other token.
)

// Kind identifies what kind of token a particular [Token] is.
type Kind byte

// IsLiteral returns whether a token of this kind can stand on its own as a
// literal expression.
func (k Kind) IsLiteral() bool {
	return k == Number || k == String || k == Ident
}

// IsOperator returns whether this is one of the operator punctuation kinds.
func (k Kind) IsOperator() bool {
	switch k {
	case Plus, Increment, Minus, Decrement:
		return true
	default:
		return false
	}
}

// String implements [fmt.Stringer].
func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case Number:
		return "Number"
	case String:
		return "String"
	case UnterminatedString:
		return "UnterminatedString"
	case Ident:
		return "Ident"
	case LParen:
		return "LParen"
	case RParen:
		return "RParen"
	case Plus:
		return "Plus"
	case Increment:
		return "Increment"
	case Minus:
		return "Minus"
	case Decrement:
		return "Decrement"
	case Unrecognized:
		return "Unrecognized"
	default:
		return fmt.Sprintf("token.Kind(%d)", int(k))
	}
}
