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
	"errors"
	"fmt"

	"github.com/bufbuild/arith/token"
)

const (
	HintAdd    HintKind = 1 + iota // Insert text after the first target.
	HintRemove                     // Delete every target.
)

// ErrNoTargets is returned by [NewHint] when given no tokens to annotate.
var ErrNoTargets = errors.New("arith/report: hint must have at least one target token")

// HintKind is the kind of edit a [Hint] suggests.
type HintKind int8

// String implements [fmt.Stringer].
func (k HintKind) String() string {
	switch k {
	case HintAdd:
		return "add"
	case HintRemove:
		return "remove"
	default:
		return fmt.Sprintf("report.HintKind(%d)", int(k))
	}
}

// Role returns the [Role] used to style hints of this kind.
func (k HintKind) Role() Role {
	if k == HintRemove {
		return RoleSuggestRemove
	}
	return RoleSuggestAdd
}

// Hint is a suggested edit attached to a [SyntaxError].
type Hint struct {
	Kind HintKind

	// The tokens this hint annotates, in source order. Never empty for a
	// hint constructed with [NewHint].
	Targets []token.Token

	// The column the hint's marker starts at; the first target's column.
	Column int

	// Prose describing the edit.
	Help string

	// For HintAdd, the text to insert immediately after the first target.
	Insert string
}

// NewHint constructs a hint over the given targets.
//
// Returns [ErrNoTargets] if targets is empty.
func NewHint(kind HintKind, help string, targets ...token.Token) (Hint, error) {
	if len(targets) == 0 {
		return Hint{}, ErrNoTargets
	}
	return Hint{
		Kind:    kind,
		Targets: targets,
		Column:  targets[0].Column,
		Help:    help,
	}, nil
}

// SuggestInsert returns a [HintAdd] hint that inserts text right after the
// given token. Like [SuggestRemove], this cannot fail.
func SuggestInsert(after token.Token, text, help string) Hint {
	h, _ := NewHint(HintAdd, help, after)
	h.Insert = text
	return h
}

// SuggestRemove returns a [HintRemove] hint that deletes the given token,
// along with any further tokens in more.
//
// Unlike [NewHint], this cannot fail: target is always present.
func SuggestRemove(target token.Token, help string, more ...token.Token) Hint {
	h, _ := NewHint(HintRemove, help, append([]token.Token{target}, more...)...)
	return h
}

// Primary returns the first target of this hint.
func (h Hint) Primary() token.Token {
	if len(h.Targets) == 0 {
		return token.Token{}
	}
	return h.Targets[0]
}

// Apply returns text with this hint's edit applied.
//
// text must be the source the targets were scanned from.
func (h Hint) Apply(text string) string {
	if len(h.Targets) == 0 {
		return text
	}

	switch h.Kind {
	case HintAdd:
		at := h.Targets[0].End
		return text[:at] + h.Insert + text[at:]
	case HintRemove:
		// Targets are in source order; delete back to front so earlier
		// offsets stay valid.
		for i := len(h.Targets) - 1; i >= 0; i-- {
			t := h.Targets[i]
			text = text[:t.Start] + text[t.End:]
		}
		return text
	default:
		return text
	}
}
