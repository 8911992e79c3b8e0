// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package greeterconf

import "fmt"

// Stage names the step of an update that failed.
type Stage string

const (
	// StageOpenSource: the configuration file is missing or unreadable.
	StageOpenSource Stage = "open source"

	// StageCreateDestination: the replacement sibling could not be
	// created, usually because the directory is not writable.
	StageCreateDestination Stage = "create destination"

	// StageRewrite: reading the source or writing the replacement
	// failed part way through.
	StageRewrite Stage = "rewrite"

	// StageReplace: the replacement could not be made durable or
	// renamed over the original.
	StageReplace Stage = "replace"
)

// Error is a failed update. The message has the form
// "<stage> <path>: <cause>", so it names both the operation and the
// file without the caller adding context.
type Error struct {
	// Stage is the step that failed.
	Stage Stage

	// Path is the file the failing step operated on.
	Path string

	// Err is the underlying error.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Stage, e.Path, e.Err)
}

// Unwrap returns the underlying error, so errors.Is(err, fs.ErrNotExist)
// and similar checks see through the stage wrapper.
func (e *Error) Unwrap() error { return e.Err }
