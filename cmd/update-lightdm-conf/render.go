// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/bureau-foundation/lightdm-conf/lib/greeterconf"
)

// renderDryRun prints the lines a run would change, one removed and
// one added line per change:
//
//	/etc/lightdm/lightdm.conf: 1 of 6 lines would change
//	-5: greeter-session=lightdm-bbqlinux-greeter
//	+5: greeter-session=lightdm-gtk-greeter
//
// Colors follow the terminal's capabilities and are dropped entirely
// when output is not a terminal or noColor is set.
func renderDryRun(output io.Writer, result greeterconf.Result, noColor bool) {
	renderer := lipgloss.NewRenderer(output)
	if noColor {
		renderer.SetColorProfile(termenv.Ascii)
	}
	header := renderer.NewStyle().Bold(true)
	removed := renderer.NewStyle().Foreground(lipgloss.Color("1"))
	added := renderer.NewStyle().Foreground(lipgloss.Color("2"))

	if len(result.Changes) == 0 {
		if result.Before == result.After {
			fmt.Fprintln(output, header.Render(fmt.Sprintf("%s: no changes", result.Path)))
		} else {
			// No line matched, but line endings would be normalized.
			fmt.Fprintln(output, header.Render(fmt.Sprintf("%s: line endings would be normalized", result.Path)))
		}
		return
	}

	fmt.Fprintln(output, header.Render(fmt.Sprintf("%s: %d of %d lines would change",
		result.Path, len(result.Changes), result.Lines)))
	for _, change := range result.Changes {
		fmt.Fprintln(output, removed.Render(fmt.Sprintf("-%d: %s", change.Line, change.Old)))
		fmt.Fprintln(output, added.Render(fmt.Sprintf("+%d: %s", change.Line, change.New)))
	}
}
