// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calver_test

import (
	"fmt"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/calver-auto-release/pkg/calver"
)

var _ = Describe("Scanner", func() {
	var scanner calver.Scanner

	BeforeEach(func() {
		scanner = calver.NewScanner()
	})

	It("returns false for no tags", func() {
		_, ok := scanner.Scan(nil)
		Expect(ok).To(BeFalse())
	})

	It("returns false when no tag is a version", func() {
		_, ok := scanner.Scan([]string{"v1.2.3", "latest", "release-2025"})
		Expect(ok).To(BeFalse())
	})

	It("ignores malformed tags", func() {
		latest, ok := scanner.Scan([]string{"2025.1.0", "v1.2.3", "not-a-tag", "2025.1.2"})
		Expect(ok).To(BeTrue())
		Expect(latest).To(Equal(calver.Version{Year: 2025, Month: 1, Patch: 2}))
	})

	It("compares numerically instead of lexicographically", func() {
		latest, ok := scanner.Scan([]string{"2025.9.10", "2025.10.0", "2025.9.9"})
		Expect(ok).To(BeTrue())
		Expect(latest.String()).To(Equal("2025.10.0"))

		latest, ok = scanner.Scan([]string{"2025.1.9", "2025.1.10"})
		Expect(ok).To(BeTrue())
		Expect(latest.String()).To(Equal("2025.1.10"))
	})

	It("does not depend on tag order", func() {
		a, _ := scanner.Scan([]string{"2024.12.5", "2025.1.0", "2023.6.7"})
		b, _ := scanner.Scan([]string{"2023.6.7", "2025.1.0", "2024.12.5"})
		Expect(a).To(Equal(b))
		Expect(a.String()).To(Equal("2025.1.0"))
	})

	It("is not influenced by malformed tags that look larger", func() {
		clean := []string{"2025.3.1", "2025.3.4"}
		dirty := append([]string{"2025.03.9", "2026.13.0", "v2099.1.0", "2025.3.10-rc"}, clean...)

		cleanLatest, cleanOK := scanner.Scan(clean)
		dirtyLatest, dirtyOK := scanner.Scan(dirty)
		Expect(dirtyOK).To(Equal(cleanOK))
		Expect(dirtyLatest).To(Equal(cleanLatest))
	})

	It("ignores patches that cannot be incremented", func() {
		latest, ok := scanner.Scan([]string{
			"2025.1.3",
			fmt.Sprintf("2025.1.%d", math.MaxInt),
			"2025.1.99999999999999999999",
		})
		Expect(ok).To(BeTrue())
		Expect(latest.String()).To(Equal("2025.1.3"))
	})

	It("keeps the largest patch that can still be incremented", func() {
		latest, ok := scanner.Scan([]string{"2025.1.3", fmt.Sprintf("2025.1.%d", math.MaxInt-1)})
		Expect(ok).To(BeTrue())
		Expect(latest.Patch).To(Equal(math.MaxInt - 1))

		decision := calver.NewDecider(calver.DefaultSkipPatterns).Decide(
			calver.Date{Year: 2025, Month: 1},
			"fix: stuff",
			latest.Ptr(),
		)
		Expect(decision.IsRelease()).To(BeTrue())
		Expect(decision.Version.Patch).To(Equal(math.MaxInt))
		Expect(decision.Version.Patch).To(BeNumerically(">=", 0))
	})
})
