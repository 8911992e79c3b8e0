// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package atomicfile replaces files so that readers only ever see the
// complete old content or the complete new content.
//
// [Create] opens a sibling of the target (by default "<path>.new") and
// returns a [PendingFile]. The caller writes the new content, then calls
// [PendingFile.Commit], which sets permissions and ownership, fsyncs the
// data, renames the sibling over the target in a single rename(2), and
// fsyncs the parent directory so the rename survives power loss.
// [PendingFile.Abort] discards the sibling instead.
//
// The sibling lives in the same directory as the target, so the rename
// never crosses a filesystem boundary. There is no window in which the
// target path is missing: a crash before the rename leaves the old file,
// a crash after it leaves the new one. At worst a stale sibling is left
// behind, and the next Create truncates it.
//
// Typical usage:
//
//	pending, err := atomicfile.Create(path, atomicfile.Options{Mode: 0644})
//	if err != nil {
//	    return err
//	}
//	defer pending.Abort()
//	if _, err := pending.Write(content); err != nil {
//	    return err
//	}
//	return pending.Commit()
//
// This package depends on no other Bureau packages.
package atomicfile
