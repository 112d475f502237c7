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

import (
	"iter"
	"strings"
	"unicode/utf8"
)

// Tokenizer is a pull-based scanner over a piece of source text.
//
// A Tokenizer is a cursor: it is not safe for concurrent use, and the tokens
// it produces refer back to its text.
type Tokenizer struct {
	text string
	cur  Mark
}

// Mark is a snapshot of a [Tokenizer]'s cursor, which can be used to rewind
// it with [Tokenizer.Rewind].
//
// Marks are comparable; two marks taken from the same tokenizer are equal
// exactly when the cursor was in the same state. A mark may also be used to
// rewind a different tokenizer, so long as its text starts with the same
// bytes up to the mark.
type Mark struct {
	offset       int
	line, column int
	afterNewline bool
}

// NewTokenizer returns a new tokenizer over a copy of the given bytes.
func NewTokenizer(text []byte) *Tokenizer {
	return NewTokenizerString(string(text))
}

// NewTokenizerString returns a new tokenizer over the given string.
func NewTokenizerString(text string) *Tokenizer {
	return &Tokenizer{
		text: text,
		cur:  Mark{line: 1, column: 1},
	}
}

// Text returns the complete source text this tokenizer scans.
func (t *Tokenizer) Text() string {
	return t.text
}

// Offset returns the byte offset of the cursor.
func (t *Tokenizer) Offset() int {
	return t.cur.offset
}

// Mark returns a snapshot of the cursor.
func (t *Tokenizer) Mark() Mark {
	return t.cur
}

// Rewind restores the cursor to a snapshot returned by [Tokenizer.Mark].
func (t *Tokenizer) Rewind(mark Mark) {
	t.cur = mark
}

// SkipTo moves the cursor forward to offset without producing tokens,
// keeping line and column up to date. Offsets behind the cursor are ignored.
func (t *Tokenizer) SkipTo(offset int) {
	offset = min(offset, len(t.text))
	for t.cur.offset < offset {
		if t.text[t.cur.offset] == '\n' {
			t.cur.afterNewline = true
		}
		t.advance()
	}
}

// Peek returns the next token without consuming it.
//
// Any number of consecutive calls to Peek return the same token, and leave
// the tokenizer exactly as it was.
func (t *Tokenizer) Peek() Token {
	mark := t.Mark()
	tok := t.Next()
	t.Rewind(mark)
	return tok
}

// Next returns the next token and advances past it.
//
// Once the input is exhausted, Next returns an [EOF] token on every call.
func (t *Tokenizer) Next() Token {
	t.skipSpace()

	start := t.cur
	t.cur.afterNewline = false
	mint := func(kind Kind) Token {
		return Token{
			Kind:         kind,
			Start:        start.offset,
			End:          t.cur.offset,
			Line:         start.line,
			Column:       start.column,
			Text:         t.text[start.offset:t.cur.offset],
			AfterNewline: start.afterNewline,
		}
	}

	c, ok := t.peekByte()
	if !ok {
		return mint(EOF)
	}

	switch {
	case c == '+':
		t.advance()
		if t.accept('+') {
			return mint(Increment)
		}
		return mint(Plus)

	case c == '-':
		t.advance()
		if t.accept('-') {
			return mint(Decrement)
		}
		return mint(Minus)

	case c == '(':
		t.advance()
		return mint(LParen)

	case c == ')':
		t.advance()
		return mint(RParen)

	case c == '"', c == '\'':
		// Scan to the matching quote. A string that runs off the end of the
		// input still becomes a token, so that the parser can point at it.
		t.advance()
		for {
			b, ok := t.peekByte()
			if !ok {
				return mint(UnterminatedString)
			}
			t.advance()
			if b == c {
				return mint(String)
			}
		}

	case isDigit(c):
		for ok && isDigit(c) {
			t.advance()
			c, ok = t.peekByte()
		}
		return mint(Number)

	case isLetter(c):
		for ok && (isLetter(c) || isDigit(c)) {
			t.advance()
			c, ok = t.peekByte()
		}
		return mint(Ident)

	default:
		// Consume a whole UTF-8 sequence, so that the token's text is never a
		// fragment of a character. Each byte is still one column.
		_, n := utf8.DecodeRuneInString(t.text[t.cur.offset:])
		for range n {
			t.advance()
		}
		return mint(Unrecognized)
	}
}

// All returns an iterator over the remaining tokens, stopping before the
// [EOF] token.
//
// Breaking out of the loop leaves the tokenizer positioned after the last
// yielded token.
func (t *Tokenizer) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			tok := t.Next()
			if tok.Kind == EOF || !yield(tok) {
				return
			}
		}
	}
}

// Line returns the full text of the line that contains tok's first byte,
// without its trailing newline or carriage return.
//
// An [EOF] token at the very end of the input belongs to the last line.
func (t *Tokenizer) Line(tok Token) string {
	offset := min(max(tok.Start, 0), len(t.text))
	start := strings.LastIndexByte(t.text[:offset], '\n') + 1
	end := strings.IndexByte(t.text[offset:], '\n')
	if end == -1 {
		end = len(t.text)
	} else {
		end += offset
	}
	return strings.TrimSuffix(t.text[start:end], "\r")
}

// skipSpace consumes spaces, tabs, carriage returns and newlines, recording
// whether a newline was seen.
func (t *Tokenizer) skipSpace() {
	for {
		c, ok := t.peekByte()
		switch {
		case !ok:
			return
		case c == ' ', c == '\t', c == '\r':
			t.advance()
		case c == '\n':
			t.cur.afterNewline = true
			t.advance()
		default:
			return
		}
	}
}

func (t *Tokenizer) peekByte() (byte, bool) {
	if t.cur.offset >= len(t.text) {
		return 0, false
	}
	return t.text[t.cur.offset], true
}

// advance consumes one byte, keeping line and column up to date.
func (t *Tokenizer) advance() {
	if t.cur.offset >= len(t.text) {
		return
	}

	c := t.text[t.cur.offset]
	t.cur.offset++
	t.cur.column++
	if c == '\n' {
		t.cur.line++
		t.cur.column = 1
	}
}

// accept consumes the next byte if it is c.
func (t *Tokenizer) accept(c byte) bool {
	if b, ok := t.peekByte(); ok && b == c {
		t.advance()
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
