// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package status

import (
	"fmt"
	"strings"
)

// Formatter formats status for display.
//
//counterfeiter:generate -o ../../mocks/status-formatter.go --fake-name Formatter . Formatter
type Formatter interface {
	Format(st *Status) string
}

// formatter implements Formatter.
type formatter struct{}

// NewFormatter creates a new Formatter.
func NewFormatter() Formatter {
	return &formatter{}
}

// Format formats status in human-readable format.
func (f *formatter) Format(st *Status) string {
	var b strings.Builder

	b.WriteString("CalVer Release Status\n")
	b.WriteString(fmt.Sprintf("  Date:       %s\n", st.Date))

	if st.LatestVersion == "" {
		b.WriteString("  Latest:     none\n")
	} else {
		b.WriteString(fmt.Sprintf("  Latest:     %s\n", st.LatestVersion))
	}
	b.WriteString(fmt.Sprintf("  Tags:       %d\n", len(st.Tags)))
	b.WriteString(fmt.Sprintf("  HEAD:       %s\n", st.HeadSubject))

	switch st.Decision {
	case DecisionRelease:
		b.WriteString(fmt.Sprintf("  Next:       %s\n", st.NextVersion))
		f.formatChanges(&b, st.Changes)
	default:
		b.WriteString(fmt.Sprintf("  Next:       %s (%s)\n", st.Decision, st.Reason))
	}

	return b.String()
}

// formatChanges formats the commit subjects of the next release.
func (f *formatter) formatChanges(b *strings.Builder, changes []string) {
	if len(changes) == 0 {
		b.WriteString("  Changes:    0 commits\n")
		return
	}
	b.WriteString(fmt.Sprintf("  Changes:    %d commits\n", len(changes)))
	for _, change := range changes {
		b.WriteString(fmt.Sprintf("    - %s\n", change))
	}
}
