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

package ast

import "fmt"

const (
	KindLiteral Kind = 1 + iota
	KindNegate
	KindGroup
	KindAdd
	KindPreIncrement
	KindPostIncrement
	KindPreDecrement
	KindPostDecrement
)

// Kind is the tag of an [Expr] variant.
type Kind int8

// String implements [fmt.Stringer].
//
// The names returned here are the ones used by [Format].
func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindNegate:
		return "negate"
	case KindGroup:
		return "group"
	case KindAdd:
		return "add"
	case KindPreIncrement:
		return "pre-increment"
	case KindPostIncrement:
		return "post-increment"
	case KindPreDecrement:
		return "pre-decrement"
	case KindPostDecrement:
		return "post-decrement"
	default:
		return fmt.Sprintf("ast.Kind(%d)", int(k))
	}
}
