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

package report_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protojson"

	"github.com/bufbuild/arith/report"
	"github.com/bufbuild/arith/token"
)

// scan tokenizes text, returning the tokenizer (for use as a report.Source)
// and every token up to and including EOF.
func scan(text string) (*token.Tokenizer, []token.Token) {
	tokens := token.NewTokenizerString(text)
	var out []token.Token
	for {
		tok := tokens.Next()
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return tokens, out
		}
	}
}

func TestNewHint(t *testing.T) {
	t.Parallel()

	_, err := report.NewHint(report.HintRemove, "remove nothing")
	require.ErrorIs(t, err, report.ErrNoTargets)

	_, toks := scan("a + b")
	h, err := report.NewHint(report.HintRemove, "remove these", toks[1], toks[2])
	require.NoError(t, err)
	assert.Equal(t, 3, h.Column)
	assert.Equal(t, toks[1], h.Primary())
	assert.Len(t, h.Targets, 2)

	h = report.SuggestInsert(toks[2], ")", "insert `)`")
	assert.Equal(t, report.HintAdd, h.Kind)
	assert.Equal(t, 5, h.Column)
	assert.Equal(t, ")", h.Insert)

	assert.Equal(t, "add", report.HintAdd.String())
	assert.Equal(t, "remove", report.HintRemove.String())
	assert.Equal(t, report.RoleSuggestAdd, report.HintAdd.Role())
	assert.Equal(t, report.RoleSuggestRemove, report.HintRemove.Role())
}

func TestApply(t *testing.T) {
	t.Parallel()

	text, toks := "(2 + 3", scanTokens("(2 + 3")
	assert.Equal(t, "(2 + 3)", report.SuggestInsert(toks[3], ")", "").Apply(text))

	text, toks = "++x++", scanTokens("++x++")
	assert.Equal(t, "++x", report.SuggestRemove(toks[2], "").Apply(text))

	text, toks = "2 3 4", scanTokens("2 3 4")
	h, err := report.NewHint(report.HintRemove, "", toks[1], toks[2])
	require.NoError(t, err)
	assert.Equal(t, "2  ", h.Apply(text))

	h = report.SuggestRemove(toks[1], "", toks[2])
	assert.Len(t, h.Targets, 2)
	assert.Equal(t, "2  ", h.Apply(text))
}

func scanTokens(text string) []token.Token {
	_, toks := scan(text)
	return toks
}

func TestSyntaxError(t *testing.T) {
	t.Parallel()

	_, toks := scan("(2 + 3")
	err := report.Errorf(report.ErrUnclosedGroup, toks[3], "missing `%s` to close group", ")").
		With(report.SuggestInsert(toks[3], ")", "insert `)` after `3`"))

	assert.Equal(t, "1:6: missing `)` to close group", err.Error())
	assert.Len(t, err.Hints, 1)

	var wrapped error = fmt.Errorf("parsing: %w", err)
	assert.ErrorIs(t, wrapped, report.ErrUnclosedGroup)
	assert.NotErrorIs(t, wrapped, report.ErrTrailingTokens)
	assert.Equal(t, "unclosed-group", report.ErrUnclosedGroup.Error())

	var target *report.SyntaxError
	require.ErrorAs(t, wrapped, &target)
	assert.Equal(t, report.ErrUnclosedGroup, target.Kind)
	assert.False(t, errors.Is(report.ErrUnclosedGroup, report.ErrUnexpectedEOF))
}

func TestToProto(t *testing.T) {
	t.Parallel()

	_, toks := scan("(2 + 3")
	err := report.Errorf(report.ErrUnclosedGroup, toks[3], "missing `)` to close group").
		With(report.SuggestInsert(toks[3], ")", "insert `)` after `3`"))

	s, protoErr := report.ToProto(err)
	require.NoError(t, protoErr)

	assert.Equal(t, "unclosed-group", s.Fields["kind"].GetStringValue())
	assert.Equal(t, "missing `)` to close group", s.Fields["message"].GetStringValue())

	at := s.Fields["at"].GetStructValue()
	assert.InDelta(t, 6, at.Fields["column"].GetNumberValue(), 0)
	assert.InDelta(t, 5, at.Fields["start"].GetNumberValue(), 0)

	hints := s.Fields["hints"].GetListValue().GetValues()
	require.Len(t, hints, 1)
	hint := hints[0].GetStructValue()
	assert.Equal(t, "add", hint.Fields["kind"].GetStringValue())
	assert.Equal(t, ")", hint.Fields["insert"].GetStringValue())
	assert.Len(t, hint.Fields["targets"].GetListValue().GetValues(), 1)
}

func TestToProtoNonASCII(t *testing.T) {
	t.Parallel()

	_, toks := scan("x + é\xff")
	require.Len(t, toks, 5)
	err := report.Errorf(report.ErrUnrecognized, toks[2], "unrecognized character `%s`", toks[2].Text).
		With(report.SuggestRemove(toks[2], "remove `é`"))

	s, protoErr := report.ToProto(err)
	require.NoError(t, protoErr)
	assert.Equal(t, "unrecognized character `é`", s.Fields["message"].GetStringValue())
	assert.Equal(t, "é", s.Fields["at"].GetStructValue().Fields["text"].GetStringValue())
	_, protoErr = protojson.Marshal(s)
	require.NoError(t, protoErr)

	err = report.Errorf(report.ErrUnrecognized, toks[3], "bad `%s`", toks[3].Text)
	s, protoErr = report.ToProto(err)
	require.NoError(t, protoErr)
	assert.Equal(t, "bad `\uFFFD`", s.Fields["message"].GetStringValue())
	assert.Equal(t, "\uFFFD", s.Fields["at"].GetStructValue().Fields["text"].GetStringValue())
}
