// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for update-lightdm-conf.
//
// With no configuration file the tool edits /etc/lightdm/lightdm.conf
// with the built-in greeter rule (see [Default]). An explicit file can
// be passed with --config; it is merged over the defaults by
// [LoadFile]. There is no environment variable override and no
// automatic discovery of configuration files, so a run is fully
// determined by its flags and the one file named on the command line.
//
// Files ending in .jsonc are accepted as JSON with comments; all other
// files are decoded as YAML.
//
// Key exports:
//
//   - [Config] -- target path, line rule, and replacement options
//   - [Default] -- the built-in greeter rule for LightDM
//   - [LoadFile] -- merge a configuration file over the defaults
//   - [Config.Validate] -- report every problem at once
package config
