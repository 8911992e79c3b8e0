// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package greeterconf switches the greeter session in a LightDM
// configuration file.
//
// [Update] runs one strictly sequential edit: open the configuration
// file, stream it through a [lineedit.Rule] into a sibling replacement
// file, close the source, and rename the replacement over the original
// with [atomicfile]. Both input and output are hashed on the way
// through; when the digests match nothing changed, the replacement is
// discarded, and the original file is left byte-for-byte untouched.
//
// Failures are reported as [*Error], which names the stage that failed
// (opening the source, creating the replacement, rewriting, or the
// final rename) and the path involved. A failure before the rename
// leaves the original file and no replacement sibling behind.
package greeterconf
