// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calver

import "fmt"

// Action is what a Decision asks the caller to do.
type Action string

const (
	ActionRelease Action = "release"
	ActionSkip    Action = "skip"
)

func (a Action) String() string {
	return string(a)
}

// Decision is either a release of Version or a skip with Reason.
type Decision struct {
	Action  Action
	Version Version
	Reason  string
}

// Release returns a Decision to release version.
func Release(version Version) Decision {
	return Decision{
		Action:  ActionRelease,
		Version: version,
	}
}

// Skip returns a Decision to not release.
func Skip(reason string) Decision {
	return Decision{
		Action: ActionSkip,
		Reason: reason,
	}
}

// IsRelease reports whether the decision is a release.
func (d Decision) IsRelease() bool {
	return d.Action == ActionRelease
}

func (d Decision) String() string {
	if d.IsRelease() {
		return fmt.Sprintf("release %s", d.Version)
	}
	return fmt.Sprintf("skip (%s)", d.Reason)
}
