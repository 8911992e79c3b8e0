// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package lineedit

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	// DefaultPrefix selects the greeter-session line written by the
	// bbqlinux greeter package.
	DefaultPrefix = "greeter-session=lightdm-bbqlinux-greeter"

	// DefaultReplacement is the line written in its place.
	DefaultReplacement = "greeter-session=lightdm-gtk-greeter"
)

// Rule replaces every line that starts with Prefix with Replacement.
type Rule struct {
	// Prefix is compared against the start of each line after its line
	// ending has been stripped.
	Prefix string

	// Replacement is the complete line (without line ending) written
	// in place of a matching line.
	Replacement string
}

// DefaultRule returns the rule that switches LightDM from the bbqlinux
// greeter to the GTK greeter.
func DefaultRule() Rule {
	return Rule{Prefix: DefaultPrefix, Replacement: DefaultReplacement}
}

// Validate reports whether the rule can be applied line by line. Both
// fields must be single lines, and the prefix must be non-empty (an
// empty prefix would match every line).
func (rule Rule) Validate() error {
	var errs []error
	if rule.Prefix == "" {
		errs = append(errs, errors.New("prefix is empty"))
	}
	if strings.ContainsAny(rule.Prefix, "\r\n") {
		errs = append(errs, fmt.Errorf("prefix %q contains a line break", rule.Prefix))
	}
	if strings.ContainsAny(rule.Replacement, "\r\n") {
		errs = append(errs, fmt.Errorf("replacement %q contains a line break", rule.Replacement))
	}
	return errors.Join(errs...)
}

// Apply returns the output for a single stripped line and whether the
// rule matched it.
func (rule Rule) Apply(line string) (string, bool) {
	if strings.HasPrefix(line, rule.Prefix) {
		return rule.Replacement, true
	}
	return line, false
}

// Change records one substituted line.
type Change struct {
	// Line is the 1-based line number in the source.
	Line int

	// Old is the source line with its line ending stripped.
	Old string

	// New is the line written in its place.
	New string
}

// Result summarizes a rewrite.
type Result struct {
	// Lines is the number of lines read (and written).
	Lines int

	// Replaced is the number of lines the rule matched.
	Replaced int

	// Changes lists the matched lines in source order.
	Changes []Change
}

// Rewrite copies source to destination line by line. Trailing "\r" and
// "\n" characters are stripped from each line; lines starting with
// rule.Prefix are written as rule.Replacement, all others unchanged.
// Every written line ends in a single "\n", including a final source
// line that had no line ending. An empty source produces no output.
//
// The caller validates the rule. Rewrite does not close either stream.
func Rewrite(source io.Reader, destination io.Writer, rule Rule) (Result, error) {
	reader := bufio.NewReader(source)
	writer := bufio.NewWriter(destination)

	var result Result
	for {
		raw, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return result, fmt.Errorf("reading line %d: %w", result.Lines+1, readErr)
		}
		if raw == "" {
			break
		}

		result.Lines++
		line := strings.TrimRight(raw, "\r\n")
		output, matched := rule.Apply(line)
		if matched {
			result.Replaced++
			result.Changes = append(result.Changes, Change{
				Line: result.Lines,
				Old:  line,
				New:  output,
			})
		}

		if _, err := writer.WriteString(output); err != nil {
			return result, fmt.Errorf("writing line %d: %w", result.Lines, err)
		}
		if err := writer.WriteByte('\n'); err != nil {
			return result, fmt.Errorf("writing line %d: %w", result.Lines, err)
		}

		if readErr == io.EOF {
			break
		}
	}

	if err := writer.Flush(); err != nil {
		return result, fmt.Errorf("flushing output: %w", err)
	}
	return result, nil
}
