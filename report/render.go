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
	"strings"

	"github.com/bufbuild/arith/internal/interval"
	"github.com/bufbuild/arith/token"
)

// Source is the text a [SyntaxError] or [Hint] was produced from.
// [*token.Tokenizer] implements it.
type Source interface {
	// Line returns the full source line containing tok, without its
	// trailing newline.
	Line(tok token.Token) string
}

var _ Source = (*token.Tokenizer)(nil)

// Renderer renders diagnostics as text.
//
// The zero value renders plain, multi-line diagnostics.
type Renderer struct {
	// If set, [Renderer.RenderError] produces only the one-line header.
	Compact bool

	// Styles to apply to the output. If nil, output is not styled.
	Styles Stylesheet
}

// RenderHint renders a single hint as three lines: the source line
// containing the hint's first target, a marker line with a caret under the
// hint's column and a continuation mark under each further byte of that
// target, and the help text.
func (r Renderer) RenderHint(src Source, h Hint) string {
	primary := h.Primary()
	text := src.Line(primary)
	return strings.Join([]string{
		text,
		r.underline(text, primary.Line, []layer{{h.Kind.Role(), h.Column, h.Targets[:min(1, len(h.Targets))]}}),
		strings.Join(wordWrap(h.Help, MaxMessageWidth), "\n"),
	}, "\n")
}

// RenderHintSpan is like [Renderer.RenderHint], but prefixes a
// line:column: locator and marks every target on the first target's line,
// not just the first one.
func (r Renderer) RenderHintSpan(src Source, h Hint) string {
	primary := h.Primary()
	text := src.Line(primary)
	return strings.Join([]string{
		r.style(RoleLocation, fmt.Sprintf("%d:%d:", primary.Line, primary.Column)),
		text,
		r.underline(text, primary.Line, []layer{{h.Kind.Role(), h.Column, h.Targets}}),
		strings.Join(wordWrap(h.Help, MaxMessageWidth), "\n"),
	}, "\n")
}

// RenderError renders a syntax error.
//
// The output is a "line:column: error[kind]: message" header, then the source
// line containing the error, then a single marker line on which every
// hint's targets are marked in turn, then one "help:" line per hint.
//
// When two hints mark the same bytes, the earlier hint wins.
func (r Renderer) RenderError(src Source, err *SyntaxError) string {
	header := fmt.Sprintf("%s %s %s",
		r.style(RoleLocation, fmt.Sprintf("%d:%d:", err.At.Line, err.At.Column)),
		r.style(RoleError, fmt.Sprintf("error[%s]:", err.Kind)),
		err.Message,
	)
	if r.Compact {
		return header
	}

	layers := make([]layer, 0, len(err.Hints))
	for _, h := range err.Hints {
		layers = append(layers, layer{h.Kind.Role(), h.Column, h.Targets})
	}
	if len(layers) == 0 {
		layers = append(layers, layer{RoleError, err.At.Column, []token.Token{err.At}})
	}

	text := src.Line(err.At)
	lines := []string{header, text, r.underline(text, err.At.Line, layers)}

	const label = "help: "
	indent := strings.Repeat(" ", len(label))
	for _, h := range err.Hints {
		for i, help := range wordWrap(h.Help, MaxMessageWidth-len(label)) {
			if i == 0 {
				lines = append(lines, r.style(RoleHelp, "help:")+" "+help)
			} else {
				lines = append(lines, indent+help)
			}
		}
	}

	return strings.Join(lines, "\n")
}

// layer is one hint's worth of marks on a marker line.
type layer struct {
	role    Role
	caret   int // Column that gets the ^.
	targets []token.Token
}

// underline builds the marker line for text, which is the source line with
// the given line number.
//
// Targets on other lines are skipped. Tabs in the source are copied into
// unmarked columns, so that markers line up with the text above them.
func (r Renderer) underline(text string, line int, layers []layer) string {
	var cols interval.Map[int, *layer]
	for i := range layers {
		l := &layers[i]
		for _, t := range l.targets {
			if t.Line != line {
				continue
			}
			// Zero-width targets, like EOF, still get one column. Targets that
			// continue onto the next line are cut off at the end of this one.
			end := max(t.Column, min(t.Column+t.Len()-1, len(text)))
			cols.Insert(t.Column, end, l)
		}
	}

	var last int
	for in := range cols.Intervals() {
		last = in.End
	}

	var out, run strings.Builder
	var runRole Role
	flush := func() {
		if runRole == 0 {
			out.WriteString(run.String())
		} else {
			out.WriteString(r.style(runRole, run.String()))
		}
		run.Reset()
	}

	for col := 1; col <= last; col++ {
		var role Role
		c := byte(' ')
		if in := cols.Get(col); in.Value != nil {
			l := *in.Value
			role = l.role
			c = '~'
			if col == l.caret {
				c = '^'
			}
		} else if col <= len(text) && text[col-1] == '\t' {
			c = '\t'
		}

		if role != runRole {
			flush()
			runRole = role
		}
		run.WriteByte(c)
	}
	flush()

	return out.String()
}

func (r Renderer) style(role Role, text string) string {
	if r.Styles == nil {
		return text
	}
	return r.Styles.Style(role, text)
}
