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

// Package config loads settings for the arithc command line tool.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a configuration file format.
type Format int

const (
	YAML Format = iota + 1
	TOML
)

// String implements [fmt.Stringer].
func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	default:
		return fmt.Sprintf("config.Format(%d)", int(f))
	}
}

// Config holds the settings for arithc. Command line flags take precedence
// over values loaded from a file.
type Config struct {
	// When to color diagnostics: "auto", "always" or "never".
	Color string `yaml:"color" toml:"color"`

	// Print diagnostics as a single line each.
	Compact bool `yaml:"compact" toml:"compact"`

	// Output format for diagnostics: "text" or "json".
	Format string `yaml:"format" toml:"format"`

	// Maximum number of files checked at once. Zero means one per CPU.
	Jobs int `yaml:"jobs" toml:"jobs"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Color:  "auto",
		Format: "text",
	}
}

// Load reads a configuration file, choosing its format by extension:
// .yaml and .yml for YAML, .toml for TOML.
//
// Fields missing from the file keep their [Default] values.
func Load(path string) (Config, error) {
	format, err := detectFormat(path)
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := Parse(data, format)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes configuration text in the given format and validates it.
func Parse(data []byte, format Format) (Config, error) {
	cfg := Default()
	switch format {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty document is not an error; it just sets nothing.
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("parsing yaml config: %w", err)
		}
	case TOML:
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("parsing toml config: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("parsing toml config: unknown key %q", undecoded[0].String())
		}
	default:
		return Config{}, fmt.Errorf("unknown config format %v", format)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every field holds an allowed value.
func (c Config) Validate() error {
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color %q: want auto, always or never", c.Color)
	}
	switch c.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid format %q: want text or json", c.Format)
	}
	if c.Jobs < 0 {
		return fmt.Errorf("invalid jobs %d: must not be negative", c.Jobs)
	}
	return nil
}

func detectFormat(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	default:
		return 0, fmt.Errorf("config file %q: unsupported extension %q", path, ext)
	}
}
