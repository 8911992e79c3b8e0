// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/lightdm-conf/lib/config"
	"github.com/bureau-foundation/lightdm-conf/lib/greeterconf"
	"github.com/bureau-foundation/lightdm-conf/lib/process"
	"github.com/bureau-foundation/lightdm-conf/lib/version"
)

const binaryName = "update-lightdm-conf"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		process.Fatal(err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var (
		configPath string
		filePath   string
		dryRun     bool
		force      bool
		verbose    bool
		noColor    bool
		showHelp   bool
	)

	flagSet := pflag.NewFlagSet(binaryName, pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVar(&configPath, "config", "", "path to a YAML or JSONC config file (default: built-in greeter rule)")
	flagSet.StringVar(&filePath, "file", "", "configuration file to edit (default: "+config.DefaultTarget+")")
	flagSet.BoolVar(&dryRun, "dry-run", false, "print the lines that would change without writing anything")
	flagSet.BoolVar(&force, "force", false, "replace the file even when no line changes")
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "log debug detail")
	flagSet.BoolVar(&noColor, "no-color", false, "disable colored --dry-run output")
	flagSet.BoolVarP(&showHelp, "help", "h", false, "show help")

	// Handle --version before flag parsing to match other Bureau binaries.
	if len(args) > 0 && args[0] == "--version" {
		version.Print(stdout, binaryName)
		return nil
	}

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			printHelp(stderr, flagSet)
			return nil
		}
		return usage("%w", err)
	}
	if showHelp {
		printHelp(stderr, flagSet)
		return nil
	}
	if flagSet.NArg() > 0 {
		return usage("unexpected argument: %s", flagSet.Arg(0))
	}

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.LoadFile(configPath)
		if err != nil {
			return usage("loading config: %w", err)
		}
		cfg = loaded
	}
	if filePath != "" {
		absolute, err := filepath.Abs(filePath)
		if err != nil {
			return usage("resolving --file %s: %w", filePath, err)
		}
		cfg.Target = absolute
	}
	if force {
		cfg.Force = true
	}
	if err := cfg.Validate(); err != nil {
		return usage("invalid configuration: %w", err)
	}

	logger := newLogger(stderr, verbose).With("command", binaryName)

	result, err := greeterconf.Update(greeterconf.Options{
		Path:   cfg.Target,
		Rule:   cfg.Rule(),
		Suffix: cfg.Suffix,
		DryRun: dryRun,
		Force:  cfg.Force,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	if dryRun {
		renderDryRun(stdout, result, noColor)
	}
	return nil
}

func printHelp(output io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(output, `%[1]s switches the LightDM greeter session.

Every line of the configuration file that starts with
  greeter-session=lightdm-bbqlinux-greeter
is replaced with
  greeter-session=lightdm-gtk-greeter
and all other lines are kept. The new content is written to a sibling
file (lightdm.conf.new) and renamed over the original in one step.
If nothing would change, the original file is not touched.

Usage:
  %[1]s [flags]

Examples:
  # Edit /etc/lightdm/lightdm.conf
  %[1]s

  # Preview the change
  %[1]s --dry-run

  # Edit a configuration inside a mounted image
  %[1]s --file /mnt/image/etc/lightdm/lightdm.conf

Exit codes:
  0  success (including nothing to change)
  1  the file could not be read, written, or replaced
  2  invalid flags or configuration

Flags:
`, binaryName)
	flagSet.SetOutput(output)
	flagSet.PrintDefaults()
}
