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

package report

import (
	"fmt"

	"github.com/bufbuild/arith/token"
)

// Well-known syntax error kinds, so that callers can branch on a
// [SyntaxError] without matching its message:
//
//	if errors.Is(err, report.ErrUnclosedGroup) { ... }
const (
	ErrUnclosedGroup      ErrorKind = "unclosed-group"
	ErrPrefixAndPostfix   ErrorKind = "prefix-and-postfix"
	ErrExpectedExpression ErrorKind = "expected-expression"
	ErrUnexpectedEOF      ErrorKind = "unexpected-eof"
	ErrUnterminatedString ErrorKind = "unterminated-string"
	ErrUnrecognized       ErrorKind = "unrecognized-character"
	ErrTrailingTokens     ErrorKind = "trailing-tokens"
)

// ErrorKind is a stable, machine-readable tag for a [SyntaxError].
//
// Kinds are lowercase identifiers separated by dashes. ErrorKind implements
// error so that kinds can be used as targets for [errors.Is].
type ErrorKind string

// Error implements [error].
func (k ErrorKind) Error() string {
	return string(k)
}

// SyntaxError is a grammar violation found while parsing.
//
// A SyntaxError is created where the violation is found and is passed up
// to the caller unmodified.
type SyntaxError struct {
	Kind    ErrorKind
	Message string

	// The token the error is reported at.
	At token.Token

	// Suggested fixes, in the order they should be shown.
	Hints []Hint
}

// Errorf constructs a new SyntaxError.
func Errorf(kind ErrorKind, at token.Token, format string, args ...any) *SyntaxError {
	return &SyntaxError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		At:      at,
	}
}

// With appends hints to this error and returns it.
func (e *SyntaxError) With(hints ...Hint) *SyntaxError {
	e.Hints = append(e.Hints, hints...)
	return e
}

// Error implements [error].
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.At.Line, e.At.Column, e.Message)
}

// Is reports whether target is this error's [ErrorKind].
func (e *SyntaxError) Is(target error) bool {
	kind, ok := target.(ErrorKind)
	return ok && kind == e.Kind
}
