// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import "fmt"

// usageError reports bad flags or configuration. It exits with status
// 2 so callers can tell a misconfigured invocation apart from an I/O
// failure on the configuration file, which exits 1.
type usageError struct {
	err error
}

func usage(format string, args ...any) *usageError {
	return &usageError{err: fmt.Errorf(format, args...)}
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

// ExitCode returns 2. process.Fatal checks for this method.
func (e *usageError) ExitCode() int { return 2 }
