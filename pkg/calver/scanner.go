// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calver

// Scanner reduces tag names to the highest calendar version.
//
//counterfeiter:generate -o ../../mocks/calver-scanner.go --fake-name Scanner . Scanner
type Scanner interface {
	// Scan returns the highest version among tags.
	// Tags that are not a version are ignored. ok is false if no tag is a version.
	Scan(tags []string) (latest Version, ok bool)
}

// scanner implements Scanner.
type scanner struct{}

// NewScanner creates a new Scanner.
func NewScanner() Scanner {
	return &scanner{}
}

func (s *scanner) Scan(tags []string) (Version, bool) {
	var latest Version
	found := false
	for _, tag := range tags {
		version, err := ParseVersion(tag)
		if err != nil {
			continue
		}
		if !found || latest.Less(version) {
			latest = version
			found = true
		}
	}
	return latest, found
}
