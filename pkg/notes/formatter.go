// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package notes

import (
	"strings"
)

// DefaultFooter is appended to the release notes if no footer is configured.
const DefaultFooter = "\n\n🙏 Thank you for using this project! Please report any issues or feedback on the GitHub repository."

// Formatter renders release notes and tag messages.
//
//counterfeiter:generate -o ../../mocks/notes-formatter.go --fake-name NotesFormatter . Formatter
type Formatter interface {
	// Notes returns the release notes for version listing the given commit subjects.
	Notes(version string, changes []string) string
	// TagMessage returns the annotated tag message for version.
	TagMessage(version string, notes string) string
}

// formatter implements Formatter.
type formatter struct {
	footer string
}

// NewFormatter creates a Formatter appending footer verbatim, DefaultFooter if footer is empty.
func NewFormatter(footer string) Formatter {
	if footer == "" {
		footer = DefaultFooter
	}
	return &formatter{
		footer: footer,
	}
}

// Notes returns the release notes for version.
func (f *formatter) Notes(version string, changes []string) string {
	var b strings.Builder
	b.WriteString("🚀 Release ")
	b.WriteString(version)
	b.WriteString("\n\n")
	b.WriteString("📝 This release includes the following changes:\n\n")
	// an empty history still renders one empty list item
	if len(changes) == 0 {
		changes = []string{""}
	}
	for i, change := range changes {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("- ")
		b.WriteString(change)
	}
	b.WriteString(f.footer)
	return b.String()
}

// TagMessage returns "Release <version>" followed by the notes.
func (f *formatter) TagMessage(version string, notes string) string {
	return "Release " + version + "\n\n" + notes
}
