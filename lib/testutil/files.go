// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"os"
	"path/filepath"
)

// WriteFile creates directory/name with content and mode 0644 and
// returns its path.
//
//	path := testutil.WriteFile(t, t.TempDir(), "lightdm.conf", "[Seat:*]\n")
func WriteFile(t interface {
	Helper()
	Fatalf(format string, args ...any)
}, directory, name, content string) string {
	t.Helper()
	path := filepath.Join(directory, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture %s: %v", path, err)
	}
	return path
}

// ReadFile returns the content of path as a string.
func ReadFile(t interface {
	Helper()
	Fatalf(format string, args ...any)
}, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}
