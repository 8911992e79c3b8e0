// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package contenthash computes BLAKE3 digests of file contents.
//
// The editor hashes a configuration file as it reads it and hashes the
// rewritten stream as it writes it. Equal digests mean the rewrite
// changed nothing, so the original file can be left in place. Digests
// are also logged so operators can correlate a run with the bytes on
// disk before and after.
//
// This package depends on no other Bureau packages.
package contenthash
