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

// Package ast defines the expression tree produced by package parser.
//
// [Expr] is a closed sum type: the only implementations are the node types
// defined in this package, and every node type carries exactly the payload it
// needs. A [Literal] owns one token, the unary nodes own one child, and [Add]
// owns its two operands. The tree has no sharing and no cycles.
//
// User code should not attempt to implement Expr. Functions such as
// [LastToken] panic if they encounter a node type they do not know about.
package ast
