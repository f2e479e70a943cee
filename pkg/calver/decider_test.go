// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calver_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/calver-auto-release/pkg/calver"
)

var _ = Describe("Decider", func() {
	var (
		decider calver.Decider
		date    calver.Date
	)

	BeforeEach(func() {
		decider = calver.NewDecider(calver.DefaultSkipPatterns)
		date = calver.Date{Year: 2025, Month: time.January}
	})

	Context("version computation", func() {
		It("rolls over to patch 0 in a new year", func() {
			decision := decider.Decide(date, "fix: stuff", calver.Version{Year: 2024, Month: 12, Patch: 5}.Ptr())
			Expect(decision).To(Equal(calver.Release(calver.Version{Year: 2025, Month: 1, Patch: 0})))
		})

		It("increments the patch within the same month", func() {
			decision := decider.Decide(date, "fix: stuff", calver.Version{Year: 2025, Month: 1, Patch: 0}.Ptr())
			Expect(decision).To(Equal(calver.Release(calver.Version{Year: 2025, Month: 1, Patch: 1})))
		})

		It("starts at patch 0 without existing version", func() {
			decision := decider.Decide(calver.Date{Year: 2025, Month: time.June}, "feat: first", nil)
			Expect(decision.IsRelease()).To(BeTrue())
			Expect(decision.Version.String()).To(Equal("2025.6.0"))
		})

		It("rolls over to patch 0 in a new month", func() {
			decision := decider.Decide(calver.Date{Year: 2025, Month: time.March}, "fix", calver.Version{Year: 2025, Month: 2, Patch: 17}.Ptr())
			Expect(decision.Version.String()).To(Equal("2025.3.0"))
		})

		It("resets the patch when the latest version lies in a later month", func() {
			decision := decider.Decide(date, "fix", calver.Version{Year: 2025, Month: 4, Patch: 3}.Ptr())
			Expect(decision.Version.String()).To(Equal("2025.1.0"))
		})

		It("is deterministic", func() {
			latest := calver.Version{Year: 2025, Month: 1, Patch: 7}.Ptr()
			first := decider.Decide(date, "chore: x", latest)
			second := decider.Decide(date, "chore: x", latest)
			Expect(first).To(Equal(second))
		})
	})

	Context("skip patterns", func() {
		It("skips on substring match", func() {
			decision := decider.Decide(date, "fix: stuff [skip release] done", nil)
			Expect(decision.IsRelease()).To(BeFalse())
			Expect(decision.Action).To(Equal(calver.ActionSkip))
			Expect(decision.Reason).To(Equal("matched pattern: [skip release]"))
		})

		It("skips regardless of tag state", func() {
			for _, latest := range []*calver.Version{
				nil,
				calver.Version{Year: 2025, Month: 1, Patch: 3}.Ptr(),
				calver.Version{Year: 2020, Month: 5, Patch: 0}.Ptr(),
			} {
				decision := decider.Decide(date, "⬆️ Update dependencies", latest)
				Expect(decision.IsRelease()).To(BeFalse())
			}
		})

		It("skips for every default pattern", func() {
			for _, pattern := range calver.DefaultSkipPatterns {
				decision := decider.Decide(date, "Test commit "+pattern, nil)
				Expect(decision.IsRelease()).To(BeFalse(), pattern)
			}
		})

		It("is case sensitive", func() {
			decision := decider.Decide(date, "fix [SKIP RELEASE]", nil)
			Expect(decision.IsRelease()).To(BeTrue())
		})

		It("uses only the configured patterns", func() {
			decider = calver.NewDecider(calver.SkipPatterns{"[custom-skip]"})
			Expect(decider.Decide(date, "[custom-skip] Skip this release", nil).IsRelease()).To(BeFalse())
			Expect(decider.Decide(date, "[skip release] now released", nil).IsRelease()).To(BeTrue())
		})

		It("releases with no patterns configured", func() {
			decider = calver.NewDecider(nil)
			Expect(decider.Decide(date, "[skip release]", nil).IsRelease()).To(BeTrue())
		})
	})
})
