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

package parser

import (
	"github.com/bufbuild/arith/ast"
	"github.com/bufbuild/arith/report"
	"github.com/bufbuild/arith/token"
)

// Parser parses expressions out of a token stream.
//
// A Parser is not safe for concurrent use.
type Parser struct {
	tokens *token.Tokenizer
}

// New returns a parser that reads from tokens.
func New(tokens *token.Tokenizer) *Parser {
	return &Parser{tokens: tokens}
}

// Parse parses text as a single expression.
//
// On failure, the returned error is a [*report.SyntaxError].
func Parse(text string) (ast.Expr, error) {
	return New(token.NewTokenizerString(text)).Parse()
}

// Tokens returns the tokenizer this parser reads from. It is also the
// [report.Source] for rendering errors this parser returns.
func (p *Parser) Tokens() *token.Tokenizer {
	return p.tokens
}

// Parse parses the rest of the input as a single expression.
//
// It is an error for anything other than the end of input to follow the
// expression.
func (p *Parser) Parse() (ast.Expr, error) {
	expr, err := p.expr()
	if err != nil {
		return nil, err
	}
	if next := p.tokens.Next(); next.Kind != token.EOF {
		return nil, errTrailing(next, p.tokens)
	}
	return expr, nil
}

// ParseExpr parses one expression and leaves the tokenizer positioned just
// after it.
func (p *Parser) ParseExpr() (ast.Expr, error) {
	expr, err := p.expr()
	if err != nil {
		return nil, err
	}
	return expr, nil
}

// tier is one level of binary operator precedence. Operators in the same
// tier associate to the left.
type tier map[token.Kind]func(left, right ast.Expr) ast.Expr

// tiers lists binary operators from loosest to tightest binding.
var tiers = []tier{
	{
		token.Plus: func(left, right ast.Expr) ast.Expr {
			return &ast.Add{Left: left, Right: right}
		},
	},
}

func (p *Parser) expr() (ast.Expr, *report.SyntaxError) {
	return p.infix(0)
}

// infix parses a run of operands joined by the operators in tiers[prec],
// folding them into a left-leaning tree. Operands are parsed at the next
// tier up.
func (p *Parser) infix(prec int) (ast.Expr, *report.SyntaxError) {
	if prec == len(tiers) {
		return p.unary()
	}

	left, err := p.infix(prec + 1)
	if err != nil {
		return nil, err
	}
	for {
		build, ok := tiers[prec][p.tokens.Peek().Kind]
		if !ok {
			return left, nil
		}
		p.tokens.Next()

		right, err := p.infix(prec + 1)
		if err != nil {
			return nil, err
		}
		left = build(left, right)
	}
}

func (p *Parser) unary() (ast.Expr, *report.SyntaxError) {
	if p.tokens.Peek().Kind != token.Minus {
		return p.prefix()
	}
	p.tokens.Next()

	operand, err := p.literal()
	if err != nil {
		return nil, err
	}
	return &ast.Negate{Expr: operand}, nil
}

func (p *Parser) prefix() (ast.Expr, *report.SyntaxError) {
	op := p.tokens.Peek()
	if op.Kind != token.Increment && op.Kind != token.Decrement {
		return p.postfix()
	}
	p.tokens.Next()

	operand, err := p.literal()
	if err != nil {
		return nil, err
	}

	// ++x++ is rejected. The trailing operator is consumed so that a caller
	// that keeps going still makes progress.
	if next := p.tokens.Peek(); next.Kind == token.Increment || next.Kind == token.Decrement {
		p.tokens.Next()
		return nil, errPrefixAndPostfix(op, next)
	}

	if op.Kind == token.Increment {
		return &ast.PreIncrement{Expr: operand}, nil
	}
	return &ast.PreDecrement{Expr: operand}, nil
}

func (p *Parser) postfix() (ast.Expr, *report.SyntaxError) {
	operand, err := p.literal()
	if err != nil {
		return nil, err
	}

	switch p.tokens.Peek().Kind {
	case token.Increment:
		p.tokens.Next()
		return &ast.PostIncrement{Expr: operand}, nil
	case token.Decrement:
		p.tokens.Next()
		return &ast.PostDecrement{Expr: operand}, nil
	default:
		return operand, nil
	}
}

func (p *Parser) literal() (ast.Expr, *report.SyntaxError) {
	next := p.tokens.Next()
	if next.Kind.IsLiteral() {
		return &ast.Literal{Token: next}, nil
	}

	switch next.Kind {
	case token.LParen:
		inner, err := p.expr()
		if err != nil {
			return nil, err
		}
		if p.tokens.Peek().Kind != token.RParen {
			return nil, errUnclosedGroup(inner)
		}
		p.tokens.Next()
		return &ast.Group{Expr: inner}, nil

	case token.EOF:
		return nil, errUnexpectedEOF(next)
	case token.UnterminatedString:
		return nil, errUnterminatedString(next)
	case token.Unrecognized:
		return nil, errUnrecognized(next)
	default:
		return nil, errExpectedExpression(next)
	}
}
