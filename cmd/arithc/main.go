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

// Command arithc scans, parses and checks arithmetic expressions.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/bufbuild/arith/cmd/arithc/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cmd.NewRootCommand(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		// Diagnostics have already been printed.
		if !errors.Is(err, cmd.ErrFailed) {
			fmt.Fprintln(os.Stderr, "arithc:", err)
		}
		stop()
		os.Exit(1)
	}
}
