// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bureau-foundation/lightdm-conf/lib/process"
	"github.com/bureau-foundation/lightdm-conf/lib/testutil"
	"github.com/bureau-foundation/lightdm-conf/lib/version"
)

const lightdmConf = `[LightDM]
run-directory=/run/lightdm

[Seat:*]
greeter-session=lightdm-bbqlinux-greeter
session-wrapper=/etc/lightdm/Xsession
`

func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

// logMessages decodes the JSON log records written to stderr and
// returns their msg fields in order.
func logMessages(t *testing.T, stderr string) []string {
	t.Helper()
	var messages []string
	scanner := bufio.NewScanner(strings.NewReader(stderr))
	for scanner.Scan() {
		var record map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &record); err != nil {
			t.Fatalf("log line is not JSON: %q: %v", scanner.Text(), err)
		}
		message, _ := record["msg"].(string)
		messages = append(messages, message)
	}
	return messages
}

func TestRunRewritesGreeter(t *testing.T) {
	directory := t.TempDir()
	path := testutil.WriteFile(t, directory, "lightdm.conf", lightdmConf)

	stdout, stderr, err := runCommand(t, "--file", path)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	want := strings.Replace(lightdmConf, "lightdm-bbqlinux-greeter", "lightdm-gtk-greeter", 1)
	if got := testutil.ReadFile(t, path); got != want {
		t.Errorf("content = %q, want %q", got, want)
	}
	testutil.RequireEntries(t, directory, "lightdm.conf")

	if stdout != "" {
		t.Errorf("stdout = %q, want empty", stdout)
	}
	messages := logMessages(t, stderr)
	if len(messages) != 1 || messages[0] != "configuration updated" {
		t.Errorf("log messages = %q, want [configuration updated]", messages)
	}
}

func TestRunTwiceIsIdempotent(t *testing.T) {
	directory := t.TempDir()
	path := testutil.WriteFile(t, directory, "lightdm.conf", lightdmConf)

	if _, _, err := runCommand(t, "--file", path); err != nil {
		t.Fatalf("first run: %v", err)
	}
	once := testutil.ReadFile(t, path)

	_, stderr, err := runCommand(t, "--file", path)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if got := testutil.ReadFile(t, path); got != once {
		t.Errorf("second run changed content to %q", got)
	}
	messages := logMessages(t, stderr)
	if len(messages) != 1 || messages[0] != "configuration already up to date" {
		t.Errorf("log messages = %q, want [configuration already up to date]", messages)
	}
}

func TestRunMissingFile(t *testing.T) {
	directory := t.TempDir()
	path := filepath.Join(directory, "lightdm.conf")

	_, _, err := runCommand(t, "--file", path)
	if err == nil {
		t.Fatal("run should fail for a missing file")
	}
	if code := process.ExitCode(err); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(err.Error(), "open source "+path) {
		t.Errorf("error %q should name the operation and path", err)
	}
	testutil.RequireEntries(t, directory)
}

func TestRunDryRun(t *testing.T) {
	directory := t.TempDir()
	path := testutil.WriteFile(t, directory, "lightdm.conf", lightdmConf)

	stdout, _, err := runCommand(t, "--file", path, "--dry-run", "--no-color")
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	want := path + ": 1 of 6 lines would change\n" +
		"-5: greeter-session=lightdm-bbqlinux-greeter\n" +
		"+5: greeter-session=lightdm-gtk-greeter\n"
	if stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
	if got := testutil.ReadFile(t, path); got != lightdmConf {
		t.Error("dry run modified the file")
	}
	testutil.RequireEntries(t, directory, "lightdm.conf")
}

func TestRunDryRunNoChanges(t *testing.T) {
	directory := t.TempDir()
	path := testutil.WriteFile(t, directory, "lightdm.conf", "[Seat:*]\n")

	stdout, _, err := runCommand(t, "--file", path, "--dry-run", "--no-color")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if want := path + ": no changes\n"; stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}

func TestRunRelativeFile(t *testing.T) {
	directory := t.TempDir()
	path := testutil.WriteFile(t, directory, "lightdm.conf", lightdmConf)
	t.Chdir(directory)

	if _, _, err := runCommand(t, "--file", "lightdm.conf"); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := testutil.ReadFile(t, path); !strings.Contains(got, "greeter-session=lightdm-gtk-greeter\n") {
		t.Errorf("content = %q, want gtk greeter", got)
	}
}

func TestRunConfigFile(t *testing.T) {
	directory := t.TempDir()
	path := testutil.WriteFile(t, directory, "lightdm.conf", lightdmConf)
	configPath := testutil.WriteFile(t, t.TempDir(), "update-lightdm-conf.yaml",
		"target: "+path+"\nreplacement: greeter-session=lightdm-slick-greeter\nsuffix: .tmp\n")

	if _, _, err := runCommand(t, "--config", configPath); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := testutil.ReadFile(t, path); !strings.Contains(got, "greeter-session=lightdm-slick-greeter\n") {
		t.Errorf("content = %q, want slick greeter", got)
	}
	testutil.RequireEntries(t, directory, "lightdm.conf")
}

func TestRunFileOverridesConfigTarget(t *testing.T) {
	directory := t.TempDir()
	path := testutil.WriteFile(t, directory, "lightdm.conf", lightdmConf)
	configPath := testutil.WriteFile(t, t.TempDir(), "update-lightdm-conf.yaml",
		"target: /nonexistent/lightdm.conf\n")

	if _, _, err := runCommand(t, "--config", configPath, "--file", path); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := testutil.ReadFile(t, path); !strings.Contains(got, "lightdm-gtk-greeter") {
		t.Errorf("content = %q, want gtk greeter", got)
	}
}

func TestRunUsageErrors(t *testing.T) {
	invalidConfig := testutil.WriteFile(t, t.TempDir(), "invalid.yaml", "target: relative/lightdm.conf\n")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "unknown flag", args: []string{"--bogus"}, want: "unknown flag"},
		{name: "positional argument", args: []string{"lightdm.conf"}, want: "unexpected argument"},
		{name: "missing config", args: []string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}, want: "loading config"},
		{name: "invalid config", args: []string{"--config", invalidConfig}, want: "absolute path"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, _, err := runCommand(t, test.args...)
			if err == nil {
				t.Fatal("run should fail")
			}
			if code := process.ExitCode(err); code != 2 {
				t.Errorf("exit code = %d, want 2", code)
			}
			if !strings.Contains(err.Error(), test.want) {
				t.Errorf("error %q should contain %q", err, test.want)
			}
		})
	}
}

func TestRunVersion(t *testing.T) {
	stdout, _, err := runCommand(t, "--version")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if want := "update-lightdm-conf " + version.Info() + "\n"; stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}

func TestRunHelp(t *testing.T) {
	for _, flag := range []string{"--help", "-h"} {
		t.Run(flag, func(t *testing.T) {
			_, stderr, err := runCommand(t, flag)
			if err != nil {
				t.Fatalf("run: %v", err)
			}
			for _, want := range []string{"Usage:", "--dry-run", "Exit codes:"} {
				if !strings.Contains(stderr, want) {
					t.Errorf("help output missing %q", want)
				}
			}
		})
	}
}
