// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package atomicfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// DefaultSuffix is appended to the target path to name the sibling
// that receives the new content.
const DefaultSuffix = ".new"

// Owner is a numeric file owner.
type Owner struct {
	UID int
	GID int
}

// OwnerOf returns the owner of the file at path. Symlinks are
// followed, as with os.Stat.
func OwnerOf(path string) (Owner, error) {
	var stat unix.Stat_t
	if err := unix.Stat(path, &stat); err != nil {
		return Owner{}, &os.PathError{Op: "stat", Path: path, Err: err}
	}
	return Owner{UID: int(stat.Uid), GID: int(stat.Gid)}, nil
}

// Options controls how the replacement file is created.
type Options struct {
	// Suffix names the sibling file. Empty means DefaultSuffix.
	Suffix string

	// Mode is the permission set applied to the replacement before it
	// is renamed into place. Zero means 0644.
	Mode os.FileMode

	// Owner, when non-nil, is applied to the replacement before it is
	// renamed into place. Changing ownership to anything other than
	// the caller's own uid requires privilege.
	Owner *Owner
}

// PendingFile is a replacement that has not yet been renamed over its
// target. Write the new content through it, then Commit or Abort.
type PendingFile struct {
	file          *os.File
	path          string
	temporaryPath string
	options       Options
	done          bool
}

// Create opens the sibling file that will replace path, truncating any
// stale sibling left by an earlier interrupted run. The target itself
// is not touched until Commit.
func Create(path string, options Options) (*PendingFile, error) {
	if options.Suffix == "" {
		options.Suffix = DefaultSuffix
	}
	if options.Mode == 0 {
		options.Mode = 0644
	}

	temporaryPath := path + options.Suffix
	file, err := os.OpenFile(temporaryPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, options.Mode.Perm())
	if err != nil {
		return nil, fmt.Errorf("creating replacement file: %w", err)
	}

	return &PendingFile{
		file:          file,
		path:          path,
		temporaryPath: temporaryPath,
		options:       options,
	}, nil
}

// Write appends data to the replacement file.
func (pending *PendingFile) Write(data []byte) (int, error) {
	if pending.done {
		return 0, errors.New("write to finished replacement file")
	}
	return pending.file.Write(data)
}

// Path returns the target path the replacement will be renamed to.
func (pending *PendingFile) Path() string {
	return pending.path
}

// TemporaryPath returns the sibling path currently holding the new
// content.
func (pending *PendingFile) TemporaryPath() string {
	return pending.temporaryPath
}

// Commit makes the replacement durable and renames it over the target.
// Mode and ownership are applied, the data is fsynced, the file is
// closed, and then a single rename moves it into place. If any step
// fails the sibling is removed and the target is left as it was.
func (pending *PendingFile) Commit() error {
	if pending.done {
		return errors.New("replacement file already committed or aborted")
	}
	pending.done = true

	// Chmod, chown, sync, close, rename, in that order. Any failure
	// removes the sibling and reports the first error.
	if err := pending.file.Chmod(pending.options.Mode.Perm()); err != nil {
		pending.discard()
		return fmt.Errorf("setting mode on replacement file: %w", err)
	}
	if owner := pending.options.Owner; owner != nil {
		if err := unix.Fchown(int(pending.file.Fd()), owner.UID, owner.GID); err != nil {
			pending.discard()
			return fmt.Errorf("setting owner on replacement file: %w",
				&os.PathError{Op: "fchown", Path: pending.temporaryPath, Err: err})
		}
	}
	if err := pending.file.Sync(); err != nil {
		pending.discard()
		return fmt.Errorf("syncing replacement file: %w", err)
	}
	if err := pending.file.Close(); err != nil {
		os.Remove(pending.temporaryPath)
		return fmt.Errorf("closing replacement file: %w", err)
	}

	if err := os.Rename(pending.temporaryPath, pending.path); err != nil {
		os.Remove(pending.temporaryPath)
		return fmt.Errorf("renaming replacement file into place: %w", err)
	}

	// Sync the parent directory so the rename is durable if the machine
	// loses power before the directory metadata is flushed.
	if directory, err := os.Open(filepath.Dir(pending.path)); err == nil {
		directory.Sync()
		directory.Close()
	}

	return nil
}

// Abort discards the replacement and leaves the target untouched. It
// is safe to call more than once and after Commit, which makes it
// suitable for defer.
func (pending *PendingFile) Abort() error {
	if pending.done {
		return nil
	}
	pending.done = true
	pending.file.Close()
	if err := os.Remove(pending.temporaryPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing replacement file: %w", err)
	}
	return nil
}

func (pending *PendingFile) discard() {
	pending.file.Close()
	os.Remove(pending.temporaryPath)
}
