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

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/arith/internal/config"
)

func write(t *testing.T, name, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(text), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	want := config.Config{Color: "never", Compact: true, Format: "json", Jobs: 4}

	cfg, err := config.Load(write(t, "arith.yaml", "color: never\ncompact: true\nformat: json\njobs: 4\n"))
	require.NoError(t, err)
	assert.Equal(t, want, cfg)

	cfg, err = config.Load(write(t, "arith.toml", "color = \"never\"\ncompact = true\nformat = \"json\"\njobs = 4\n"))
	require.NoError(t, err)
	assert.Equal(t, want, cfg)

	cfg, err = config.Load(write(t, "partial.yml", "jobs: 2\n"))
	require.NoError(t, err)
	assert.Equal(t, config.Config{Color: "auto", Format: "text", Jobs: 2}, cfg)

	cfg, err = config.Load(write(t, "empty.yaml", ""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, text, err string
	}{
		{"arith.json", "{}", "unsupported extension"},
		{"bad.yaml", "color: [", "parsing yaml config"},
		{"unknown.yaml", "colour: never\n", "parsing yaml config"},
		{"unknown.toml", "colour = \"never\"\n", "unknown key \"colour\""},
		{"color.toml", "color = \"sometimes\"\n", "invalid color"},
		{"format.yaml", "format: xml\n", "invalid format"},
		{"jobs.yaml", "jobs: -1\n", "invalid jobs"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			_, err := config.Load(write(t, test.name, test.text))
			assert.ErrorContains(t, err, test.err)
		})
	}

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFormatString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "yaml", config.YAML.String())
	assert.Equal(t, "toml", config.TOML.String())
	assert.Equal(t, "config.Format(7)", config.Format(7).String())
}
