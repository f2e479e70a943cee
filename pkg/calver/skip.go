// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calver

import (
	"strings"

	"github.com/bborbe/collection"
)

// DefaultSkipPatterns suppress a release when found in the commit message.
var DefaultSkipPatterns = SkipPatterns{"[skip release]", "[pre-commit.ci]", "⬆️ Update"}

// SkipPatterns is an ordered list of literal, case-sensitive substrings.
type SkipPatterns []string

// Match returns the first pattern contained in message.
func (s SkipPatterns) Match(message string) (string, bool) {
	for _, pattern := range s {
		if pattern == "" {
			continue
		}
		if strings.Contains(message, pattern) {
			return pattern, true
		}
	}
	return "", false
}

// Contains reports whether pattern is part of the list.
func (s SkipPatterns) Contains(pattern string) bool {
	return collection.Contains(s, pattern)
}

// With returns a new list with the additional patterns appended, duplicates dropped.
func (s SkipPatterns) With(patterns ...string) SkipPatterns {
	result := make(SkipPatterns, 0, len(s)+len(patterns))
	for _, pattern := range append(append([]string{}, s...), patterns...) {
		if pattern == "" || result.Contains(pattern) {
			continue
		}
		result = append(result, pattern)
	}
	return result
}
