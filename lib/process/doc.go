// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package process provides binary entrypoint helpers. It centralizes
// the raw stderr writes that happen after run() returns, when the
// structured logger may not be usable:
//
//   - Mapping a returned error to a process exit status.
//   - Fatal error reporting to stderr.
//
// An error that implements ExitCode() int chooses its own status;
// every other error exits 1.
package process
