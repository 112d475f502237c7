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

import (
	"fmt"

	"github.com/bufbuild/arith/token"
)

// Expr is any expression node.
type Expr interface {
	// Kind returns which variant this node is.
	Kind() Kind

	isExpr()
}

// Literal is a number, string or identifier.
type Literal struct {
	Token token.Token
}

// Negate is a unary minus: -x.
type Negate struct {
	Expr Expr
}

// Group is a parenthesized expression: (x).
type Group struct {
	Expr Expr
}

// Add is a binary addition: a + b.
//
// Chains of additions associate to the left, so a + b + c is
// Add{Add{a, b}, c}.
type Add struct {
	Left, Right Expr
}

// PreIncrement is ++x.
type PreIncrement struct {
	Expr Expr
}

// PostIncrement is x++.
type PostIncrement struct {
	Expr Expr
}

// PreDecrement is --x.
type PreDecrement struct {
	Expr Expr
}

// PostDecrement is x--.
type PostDecrement struct {
	Expr Expr
}

func (*Literal) Kind() Kind       { return KindLiteral }
func (*Negate) Kind() Kind        { return KindNegate }
func (*Group) Kind() Kind         { return KindGroup }
func (*Add) Kind() Kind           { return KindAdd }
func (*PreIncrement) Kind() Kind  { return KindPreIncrement }
func (*PostIncrement) Kind() Kind { return KindPostIncrement }
func (*PreDecrement) Kind() Kind  { return KindPreDecrement }
func (*PostDecrement) Kind() Kind { return KindPostDecrement }

func (*Literal) isExpr()       {}
func (*Negate) isExpr()        {}
func (*Group) isExpr()         {}
func (*Add) isExpr()           {}
func (*PreIncrement) isExpr()  {}
func (*PostIncrement) isExpr() {}
func (*PreDecrement) isExpr()  {}
func (*PostDecrement) isExpr() {}

// Children returns the direct children of e, in source order.
func Children(e Expr) []Expr {
	switch e := e.(type) {
	case *Literal:
		return nil
	case *Add:
		return []Expr{e.Left, e.Right}
	case *Negate:
		return []Expr{e.Expr}
	case *Group:
		return []Expr{e.Expr}
	case *PreIncrement:
		return []Expr{e.Expr}
	case *PostIncrement:
		return []Expr{e.Expr}
	case *PreDecrement:
		return []Expr{e.Expr}
	case *PostDecrement:
		return []Expr{e.Expr}
	default:
		panic(fmt.Sprintf("arith/ast: unexpected node type %T", e))
	}
}

// LastToken returns the last token stored in e's subtree.
//
// For an addition this is the last token of its right operand; for any other
// non-literal node it is the last token of its only child. Group does not
// record its closing parenthesis, so the last token of (x) is x's.
//
// Every new node type must be added here; an unknown type panics rather than
// returning the wrong token.
func LastToken(e Expr) token.Token {
	for {
		switch node := e.(type) {
		case *Literal:
			return node.Token
		case *Add:
			e = node.Right
		case *Negate:
			e = node.Expr
		case *Group:
			e = node.Expr
		case *PreIncrement:
			e = node.Expr
		case *PostIncrement:
			e = node.Expr
		case *PreDecrement:
			e = node.Expr
		case *PostDecrement:
			e = node.Expr
		default:
			panic(fmt.Sprintf("arith/ast: unexpected node type %T", e))
		}
	}
}
