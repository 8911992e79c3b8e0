// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package process

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// exitCoder is implemented by errors that carry their own exit status.
type exitCoder interface {
	ExitCode() int
}

// ExitCode returns the process exit status for err: 0 for nil, the
// error's own ExitCode() when any error in its chain provides one,
// and 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var coder exitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return 1
}

// Report writes "error: err" to output when err is non-nil and
// returns the exit status for it.
func Report(output io.Writer, err error) int {
	if err != nil {
		fmt.Fprintf(output, "error: %v\n", err)
	}
	return ExitCode(err)
}

// Fatal writes "error: err" to stderr and exits with the status from
// ExitCode. Use it in main() for errors from run().
func Fatal(err error) {
	os.Exit(Report(os.Stderr, err))
}
