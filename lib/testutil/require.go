// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"errors"
	"os"
	"slices"
	"strings"
)

// RequireNotExist fails the test if anything exists at path. Symlinks
// are not followed.
//
//	testutil.RequireNotExist(t, path+".new")
func RequireNotExist(t interface {
	Helper()
	Fatalf(format string, args ...any)
}, path string) {
	t.Helper()
	_, err := os.Lstat(path)
	if err == nil {
		t.Fatalf("%s exists, want it absent", path)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("checking %s: %v", path, err)
	}
}

// RequireEntries fails the test unless directory contains exactly the
// named entries, in any order.
//
//	testutil.RequireEntries(t, directory, "lightdm.conf")
func RequireEntries(t interface {
	Helper()
	Fatalf(format string, args ...any)
}, directory string, names ...string) {
	t.Helper()
	entries, err := os.ReadDir(directory)
	if err != nil {
		t.Fatalf("reading directory %s: %v", directory, err)
	}

	got := make([]string, 0, len(entries))
	for _, entry := range entries {
		got = append(got, entry.Name())
	}
	want := slices.Clone(names)
	slices.Sort(got)
	slices.Sort(want)

	if !slices.Equal(got, want) {
		t.Fatalf("directory %s holds [%s], want [%s]",
			directory, strings.Join(got, ", "), strings.Join(want, ", "))
	}
}
