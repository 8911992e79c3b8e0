// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package lineedit rewrites text streams one line at a time.
//
// A [Rule] names a literal line prefix and the full line that replaces
// any line starting with it. [Rewrite] copies a source stream to a
// destination, normalizing every line ending to "\n" and substituting
// matching lines. Lines are matched by their leading bytes only; the
// package does not parse key=value structure.
//
// This package depends on no other Bureau packages.
package lineedit
