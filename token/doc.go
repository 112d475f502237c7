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

// Package token implements the lexical layer of the arithmetic expression
// language: token kinds, positioned tokens, and a pull-based [Tokenizer].
//
// # Positions
//
// Every [Token] records its byte offsets into the source text, along with a
// 1-based line and column. Columns count bytes, not runes or display cells:
// each consumed byte advances the column by one, and consuming a '\n' resets
// the column to 1 and moves to the next line.
//
// # Lookahead
//
// [Tokenizer.Peek] is guaranteed to have no observable effect on the
// tokenizer. The parser relies on this for every one-token lookahead decision
// it makes.
package token
