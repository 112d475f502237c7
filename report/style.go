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

import "fmt"

const (
	RoleError         Role = 1 + iota // The "error[kind]:" header.
	RoleLocation                      // line:column locators.
	RoleSuggestAdd                    // Markers for insertions.
	RoleSuggestRemove                 // Markers for deletions.
	RoleHelp                          // The "help:" label.
)

// Role is the semantic purpose of a piece of rendered output. A [Stylesheet]
// maps roles to concrete styling.
type Role int8

// String implements [fmt.Stringer].
func (r Role) String() string {
	switch r {
	case RoleError:
		return "error"
	case RoleLocation:
		return "location"
	case RoleSuggestAdd:
		return "suggest-add"
	case RoleSuggestRemove:
		return "suggest-remove"
	case RoleHelp:
		return "help"
	default:
		return fmt.Sprintf("report.Role(%d)", int(r))
	}
}

// Stylesheet styles text according to its role.
//
// Implementations must not change the visible width of text.
type Stylesheet interface {
	Style(role Role, text string) string
}

// StylesheetFunc adapts a function into a [Stylesheet].
type StylesheetFunc func(role Role, text string) string

// Style implements [Stylesheet].
func (f StylesheetFunc) Style(role Role, text string) string {
	return f(role, text)
}

// ANSI is a [Stylesheet] that uses ANSI escape sequences.
var ANSI Stylesheet = ansi{}

type ansi struct{}

const ansiReset = "\033[0m"

func (ansi) Style(role Role, text string) string {
	if text == "" {
		return ""
	}

	var code string
	switch role {
	case RoleError, RoleSuggestRemove:
		code = "\033[1;31m" // Bold red.
	case RoleLocation:
		code = "\033[1;34m" // Bold blue.
	case RoleSuggestAdd:
		code = "\033[1;32m" // Bold green.
	case RoleHelp:
		code = "\033[1;36m" // Bold cyan.
	default:
		return text
	}
	return code + text + ansiReset
}
