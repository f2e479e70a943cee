// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calver

// Decider decides whether a commit is released and under which version.
//
//counterfeiter:generate -o ../../mocks/calver-decider.go --fake-name Decider . Decider
type Decider interface {
	Decide(date Date, message string, latest *Version) Decision
}

// decider implements Decider.
type decider struct {
	skipPatterns SkipPatterns
}

// NewDecider creates a Decider that skips messages containing any of skipPatterns.
func NewDecider(skipPatterns SkipPatterns) Decider {
	return &decider{
		skipPatterns: skipPatterns,
	}
}

// Decide checks skip patterns first, then computes the next version.
// A different year or month than date resets the patch to 0, including a latest
// version that lies in the future of date.
func (d *decider) Decide(date Date, message string, latest *Version) Decision {
	if pattern, ok := d.skipPatterns.Match(message); ok {
		return Skip("matched pattern: " + pattern)
	}
	if latest == nil || !latest.InMonth(date) {
		return Release(date.FirstVersion())
	}
	return Release(Version{
		Year:  latest.Year,
		Month: latest.Month,
		Patch: latest.Patch + 1,
	})
}
