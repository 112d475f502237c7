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

/*
Package report defines the syntax errors produced by package parser, and
renders them against the source text they came from.

A [SyntaxError] carries a machine-readable [ErrorKind], a human-readable
message, the token it is anchored at, and zero or more [Hint]s. Each hint is
a fix-it: a suggestion to insert text after a token ([HintAdd]) or to delete
one or more tokens ([HintRemove]).

Rendering is a pure text transform. A [Renderer] produces strings; it never
writes to the terminal itself. Colors are not part of the data model either:
the renderer asks a [Stylesheet] to style each piece of output by its [Role],
so the same error can be shown on a terminal, in a log, or in an editor.

Columns are measured in bytes. Source text containing multi-byte UTF-8
characters renders with markers that may not line up on screen.

# Message style

Messages do not begin with a capital letter and do not end in punctuation.
Code in messages is quoted with backticks. Help text is a short imperative
suggestion, such as "insert `)` after `3`".
*/
package report
