// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package greeterconf

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/bureau-foundation/lightdm-conf/lib/atomicfile"
	"github.com/bureau-foundation/lightdm-conf/lib/contenthash"
	"github.com/bureau-foundation/lightdm-conf/lib/lineedit"
)

// Options configures one update.
type Options struct {
	// Path is the configuration file to rewrite.
	Path string

	// Rule selects and replaces the greeter line.
	Rule lineedit.Rule

	// Suffix names the replacement sibling. Empty means
	// atomicfile.DefaultSuffix.
	Suffix string

	// DryRun computes the result without creating or renaming any
	// file.
	DryRun bool

	// Force renames the replacement into place even when it is
	// byte-identical to the original.
	Force bool

	// Logger receives progress records. Nil discards them.
	Logger *slog.Logger
}

// Result describes a completed update.
type Result struct {
	lineedit.Result

	// Path is the configuration file that was processed.
	Path string

	// Before is the digest of the original content.
	Before contenthash.Digest

	// After is the digest of the rewritten content. Equal to Before
	// when Unchanged is set.
	After contenthash.Digest

	// Unchanged is set when the rewrite produced the original bytes
	// and the original file was left in place.
	Unchanged bool

	// DryRun is set when no file was written.
	DryRun bool
}

// Update rewrites the file at options.Path in place. The steps run in
// order and stop at the first failure: open the source, create the
// replacement sibling, rewrite, close the source, then rename the
// replacement over the source. The source is closed before the rename.
func Update(options Options) (Result, error) {
	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With("path", options.Path)

	result := Result{Path: options.Path, DryRun: options.DryRun}

	if err := options.Rule.Validate(); err != nil {
		return result, fmt.Errorf("invalid rule: %w", err)
	}

	source, err := os.Open(options.Path)
	if err != nil {
		return result, &Error{Stage: StageOpenSource, Path: options.Path, Err: err}
	}
	defer source.Close()

	info, err := source.Stat()
	if err != nil {
		return result, &Error{Stage: StageOpenSource, Path: options.Path, Err: err}
	}
	if !info.Mode().IsRegular() {
		return result, &Error{Stage: StageOpenSource, Path: options.Path,
			Err: fmt.Errorf("not a regular file (mode %s)", info.Mode())}
	}

	var destination io.Writer = io.Discard
	var pending *atomicfile.PendingFile
	if !options.DryRun {
		owner, err := atomicfile.OwnerOf(options.Path)
		if err != nil {
			return result, &Error{Stage: StageOpenSource, Path: options.Path, Err: err}
		}
		pending, err = atomicfile.Create(options.Path, atomicfile.Options{
			Suffix: options.Suffix,
			Mode:   info.Mode().Perm(),
			Owner:  &owner,
		})
		if err != nil {
			return result, &Error{Stage: StageCreateDestination, Path: options.Path + suffixOrDefault(options.Suffix), Err: err}
		}
		defer pending.Abort()
		destination = pending
	}

	inputHash := contenthash.New()
	outputHash := contenthash.New()
	rewritten, err := lineedit.Rewrite(
		io.TeeReader(source, inputHash),
		io.MultiWriter(destination, outputHash),
		options.Rule,
	)
	result.Result = rewritten
	if err != nil {
		return result, &Error{Stage: StageRewrite, Path: options.Path, Err: err}
	}
	result.Before = inputHash.Sum()
	result.After = outputHash.Sum()

	// Release the source before its path is replaced.
	if err := source.Close(); err != nil {
		return result, &Error{Stage: StageRewrite, Path: options.Path, Err: err}
	}

	logger.Debug("rewrote configuration",
		"lines", result.Lines,
		"replaced", result.Replaced,
		"before", result.Before.String(),
		"after", result.After.String(),
	)

	if result.Before == result.After && !options.Force {
		result.Unchanged = true
		if pending != nil {
			if err := pending.Abort(); err != nil {
				return result, &Error{Stage: StageReplace, Path: pending.TemporaryPath(), Err: err}
			}
		}
		logger.Info("configuration already up to date", "lines", result.Lines)
		return result, nil
	}

	if options.DryRun {
		logger.Info("dry run, configuration not written",
			"lines", result.Lines,
			"replaced", result.Replaced,
		)
		return result, nil
	}

	if err := pending.Commit(); err != nil {
		return result, &Error{Stage: StageReplace, Path: options.Path, Err: err}
	}

	logger.Info("configuration updated",
		"lines", result.Lines,
		"replaced", result.Replaced,
		"after", result.After.String(),
	)
	return result, nil
}

func suffixOrDefault(suffix string) string {
	if suffix == "" {
		return atomicfile.DefaultSuffix
	}
	return suffix
}
