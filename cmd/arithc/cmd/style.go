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

package cmd

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/bufbuild/arith/report"
)

// stylesheet is a [report.Stylesheet] backed by lipgloss.
type stylesheet map[report.Role]lipgloss.Style

// newStylesheet returns the stylesheet to use for output written to w, or
// nil if output should not be styled.
//
// color is one of "auto", "always" or "never". With "auto", styling is used
// only if w is a terminal that supports color.
func newStylesheet(w io.Writer, color string) report.Stylesheet {
	if color == "never" {
		return nil
	}

	r := lipgloss.NewRenderer(w)
	if color == "always" {
		r.SetColorProfile(termenv.ANSI)
	}
	if r.ColorProfile() == termenv.Ascii {
		return nil
	}

	style := func(color string) lipgloss.Style {
		return r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(color)).
			TabWidth(lipgloss.NoTabConversion)
	}
	return stylesheet{
		report.RoleError:         style("1"), // Red.
		report.RoleSuggestRemove: style("1"),
		report.RoleSuggestAdd:    style("2"), // Green.
		report.RoleLocation:      style("4"), // Blue.
		report.RoleHelp:          style("6"), // Cyan.
	}
}

// Style implements [report.Stylesheet].
func (s stylesheet) Style(role report.Role, text string) string {
	style, ok := s[role]
	if !ok || text == "" {
		return text
	}
	return style.Render(text)
}
