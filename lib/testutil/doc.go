// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for file-editing
// packages.
//
// [WriteFile] and [ReadFile] create and read fixture files inside a
// test's temporary directory. [RequireNotExist] and [RequireEntries]
// check what a directory holds after an edit, which is how tests
// confirm that no half-written replacement file was left behind.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no Bureau-internal dependencies.
package testutil
