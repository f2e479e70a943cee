// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calver

import (
	stderrors "errors"
	"fmt"
	"math"
	"regexp"
	"strconv"

	"golang.org/x/mod/semver"
)

// ErrMalformedVersionTag is returned by ParseVersion for tags that are not a canonical CalVer version.
var ErrMalformedVersionTag = stderrors.New("malformed version tag")

var versionRegexp = regexp.MustCompile(`^(0|[1-9][0-9]*)\.(0|[1-9][0-9]*)\.(0|[1-9][0-9]*)$`)

// Version is a calendar version YEAR.MONTH.PATCH.
type Version struct {
	Year  int
	Month int
	Patch int
}

// ParseVersion parses "2025.1.3" into a Version.
// Leading zeros, prefixes, suffixes and months outside 1-12 are rejected.
// Components beyond int range and a patch without a successor are rejected too.
func ParseVersion(tag string) (Version, error) {
	matches := versionRegexp.FindStringSubmatch(tag)
	if matches == nil {
		return Version{}, fmt.Errorf("%w: %q", ErrMalformedVersionTag, tag)
	}

	year, err := strconv.Atoi(matches[1])
	if err != nil {
		return Version{}, fmt.Errorf("%w: %q", ErrMalformedVersionTag, tag)
	}
	month, err := strconv.Atoi(matches[2])
	if err != nil || month < 1 || month > 12 {
		return Version{}, fmt.Errorf("%w: %q", ErrMalformedVersionTag, tag)
	}
	// math.MaxInt has no next patch
	patch, err := strconv.Atoi(matches[3])
	if err != nil || patch == math.MaxInt {
		return Version{}, fmt.Errorf("%w: %q", ErrMalformedVersionTag, tag)
	}

	return Version{
		Year:  year,
		Month: month,
		Patch: patch,
	}, nil
}

// String returns the canonical "YEAR.MONTH.PATCH" form.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Year, v.Month, v.Patch)
}

// Compare returns -1, 0 or +1 as v is lower, equal or greater than other.
func (v Version) Compare(other Version) int {
	return semver.Compare("v"+v.String(), "v"+other.String())
}

// Less returns true if v is lower than other.
func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}

// InMonth reports whether v was released in the year and month of date.
func (v Version) InMonth(date Date) bool {
	return v.Year == date.Year && v.Month == int(date.Month)
}

// Ptr returns a pointer to a copy of v.
func (v Version) Ptr() *Version {
	return &v
}
