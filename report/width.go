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

	"github.com/rivo/uniseg"
)

// MaxMessageWidth is the display width at which help text is word-wrapped,
// to try to keep everything within the bounds of a terminal.
const MaxMessageWidth int = 80

// wordWrap breaks text into lines no wider than width, measured in terminal
// cells. Words wider than width get a line of their own.
//
// Text that already fits is returned as-is.
func wordWrap(text string, width int) []string {
	if uniseg.StringWidth(text) <= width {
		return []string{text}
	}

	var lines []string
	var line strings.Builder
	var column int
	for _, word := range strings.Fields(text) {
		w := uniseg.StringWidth(word)
		if column > 0 && column+1+w > width {
			lines = append(lines, line.String())
			line.Reset()
			column = 0
		}
		if column > 0 {
			line.WriteByte(' ')
			column++
		}
		line.WriteString(word)
		column += w
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
