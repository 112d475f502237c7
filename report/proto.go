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
	"strings"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/bufbuild/arith/token"
)

// ToProto converts a syntax error into a [structpb.Struct], for tools that
// want machine-readable diagnostics. Invalid UTF-8 in the source is replaced
// with U+FFFD, since protobuf strings must be valid UTF-8. The result looks
// like this, in JSON:
//
//	{
//	  "kind": "unclosed-group",
//	  "message": "missing `)` to close group",
//	  "at": {"text": "3", "line": 1, "column": 6, "start": 5, "end": 6},
//	  "hints": [{
//	    "kind": "add",
//	    "column": 6,
//	    "help": "insert `)` after `3`",
//	    "insert": ")",
//	    "targets": [{"text": "3", "line": 1, "column": 6, "start": 5, "end": 6}]
//	  }]
//	}
func ToProto(err *SyntaxError) (*structpb.Struct, error) {
	hints := make([]any, 0, len(err.Hints))
	for _, h := range err.Hints {
		targets := make([]any, 0, len(h.Targets))
		for _, t := range h.Targets {
			targets = append(targets, tokenToMap(t))
		}

		hint := map[string]any{
			"kind":    h.Kind.String(),
			"column":  h.Column,
			"help":    validUTF8(h.Help),
			"targets": targets,
		}
		if h.Kind == HintAdd {
			hint["insert"] = validUTF8(h.Insert)
		}
		hints = append(hints, hint)
	}

	return structpb.NewStruct(map[string]any{
		"kind":    string(err.Kind),
		"message": validUTF8(err.Message),
		"at":      tokenToMap(err.At),
		"hints":   hints,
	})
}

func tokenToMap(t token.Token) map[string]any {
	return map[string]any{
		"text":   validUTF8(t.Text),
		"line":   t.Line,
		"column": t.Column,
		"start":  t.Start,
		"end":    t.End,
	}
}

func validUTF8(s string) string {
	return strings.ToValidUTF8(s, "\uFFFD")
}
