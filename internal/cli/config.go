// Copyright 2026 Trevor Strong
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

package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Trevor-Strong/bracefmt/internal/logging"
	"github.com/Trevor-Strong/bracefmt/utf8codec"
)

// LocalConfigFileNames are the config files looked for in the working
// directory when --config is not given, in order.
var LocalConfigFileNames = []string{".bracefmt.yaml", ".bracefmt.yml"}

// Config is the contents of a config file.
type Config struct {
	// Globs checked when `check` is given no arguments.
	Include []string `yaml:"include"`
	// Globs removed from what `check` would otherwise check.
	Exclude []string `yaml:"exclude"`
	// Files checked at once. Zero picks a default.
	Jobs int `yaml:"jobs"`

	AllowSurrogates bool `yaml:"allow_surrogates"`
	AllowOverlong   bool `yaml:"allow_overlong"`
	// Pad rendered values by terminal cells instead of grapheme clusters.
	TerminalCells bool `yaml:"terminal_cells"`

	Log LogConfig `yaml:"log"`
}

// LogConfig is the `log` section of a config file.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultInclude is checked when neither arguments nor a config say what to
// check.
const DefaultInclude = "**/*.tmpl"

// UTF8 returns the decoding options the config asks for.
func (c *Config) UTF8() utf8codec.Options {
	return utf8codec.Options{
		AllowSurrogates: c.AllowSurrogates,
		AllowOverlong:   c.AllowOverlong,
	}
}

// Logging returns the logging configuration the config asks for, writing to
// out.
func (c *Config) Logging(out io.Writer) (logging.Config, error) {
	cfg := logging.DefaultConfig()
	cfg.Output = out

	var err error
	if cfg.Level, err = logging.ParseLevel(c.Log.Level); err != nil {
		return cfg, err
	}
	if cfg.Format, err = logging.ParseFormat(c.Log.Format); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ConfigError is a problem with a config file.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// LoadConfig reads a config file. Unknown keys are an error. An empty file
// is the zero Config.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, &ConfigError{Path: path, Err: err}
	}
	if cfg.Jobs < 0 {
		return nil, &ConfigError{Path: path, Err: fmt.Errorf("jobs must not be negative, got %d", cfg.Jobs)}
	}
	return &cfg, nil
}

// FindLocalConfig returns the first of [LocalConfigFileNames] that exists in
// dir, or "" if there is none.
func FindLocalConfig(dir string) string {
	for _, name := range LocalConfigFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
