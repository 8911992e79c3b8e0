// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/lightdm-conf/lib/atomicfile"
	"github.com/bureau-foundation/lightdm-conf/lib/lineedit"
)

// DefaultTarget is the LightDM configuration file.
const DefaultTarget = "/etc/lightdm/lightdm.conf"

// Config describes one edit of one configuration file.
type Config struct {
	// Target is the absolute path of the file to rewrite.
	// Default: /etc/lightdm/lightdm.conf
	Target string `yaml:"target"`

	// Prefix selects the line to replace by its leading characters.
	// Default: greeter-session=lightdm-bbqlinux-greeter
	Prefix string `yaml:"prefix"`

	// Replacement is the full line written in place of a matching line.
	// Default: greeter-session=lightdm-gtk-greeter
	Replacement string `yaml:"replacement"`

	// Suffix names the sibling file the new content is written to
	// before it is renamed over Target.
	// Default: .new
	Suffix string `yaml:"suffix"`

	// Force rewrites Target even when no line changes, which also
	// normalizes CRLF line endings to LF.
	// Default: false
	Force bool `yaml:"force"`
}

// Default returns the built-in configuration: switch LightDM from the
// bbqlinux greeter to the GTK greeter.
func Default() *Config {
	rule := lineedit.DefaultRule()
	return &Config{
		Target:      DefaultTarget,
		Prefix:      rule.Prefix,
		Replacement: rule.Replacement,
		Suffix:      atomicfile.DefaultSuffix,
	}
}

// LoadFile loads configuration from a specific file path, merged over
// [Default]. Fields absent from the file keep their default values.
// The result is not validated; call [Config.Validate].
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile decodes a single configuration file into c.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	// JSON is a subset of YAML, so stripping comments is enough for
	// the YAML decoder to read JSONC.
	if strings.EqualFold(filepath.Ext(path), ".jsonc") {
		data = jsonc.ToJSON(data)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

// Rule returns the line rule described by the configuration.
func (c *Config) Rule() lineedit.Rule {
	return lineedit.Rule{Prefix: c.Prefix, Replacement: c.Replacement}
}

// Validate checks the configuration for errors. All problems are
// reported together.
func (c *Config) Validate() error {
	var errs []error

	if c.Target == "" {
		errs = append(errs, fmt.Errorf("target is required"))
	} else if !filepath.IsAbs(c.Target) {
		errs = append(errs, fmt.Errorf("target must be an absolute path, got %q", c.Target))
	}

	if err := c.Rule().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("invalid rule: %w", err))
	}

	if c.Suffix == "" {
		errs = append(errs, fmt.Errorf("suffix is required"))
	} else if strings.ContainsRune(c.Suffix, filepath.Separator) {
		errs = append(errs, fmt.Errorf("suffix %q must not contain %q", c.Suffix, filepath.Separator))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
