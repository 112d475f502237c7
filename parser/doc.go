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

// Package parser is a recursive-descent parser for arithmetic expressions.
//
// The grammar, from loosest to tightest binding, is
//
//	expr    := unary ('+' unary)*
//	unary   := '-' literal | prefix
//	prefix  := ('++' | '--') literal | postfix
//	postfix := literal ('++' | '--')?
//	literal := '(' expr ')' | Number | String | Ident
//
// Chains of binary operators fold to the left, so a + b + c parses as
// (a + b) + c.
//
// Parsing stops at the first error, which is always a [*report.SyntaxError].
// No partial tree is returned alongside an error.
package parser
